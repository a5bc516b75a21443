package core

import (
	"fmt"
	"time"
)

const firstContributionNA = "N/A"

// LongestStreak returns the longest run of consecutive calendar days in
// dates, which must be sorted ascending (ContributingDays provides that).
//
// The running counter starts at 1, so an empty input still reports a streak
// of 1. Kept deliberately; callers that need to distinguish an empty
// calendar should check HasContributions.
func LongestStreak(dates []time.Time) int {
	streak, longest := 1, 1
	for i := 1; i < len(dates); i++ {
		prev := midnight(dates[i-1])
		cur := midnight(dates[i])
		if cur.Sub(prev) == 24*time.Hour {
			streak++
			if streak > longest {
				longest = streak
			}
		} else {
			streak = 1
		}
	}
	return longest
}

// FirstContribution formats the earliest contributing day, or "N/A" when the
// calendar has none.
func FirstContribution(dates []time.Time) string {
	if len(dates) == 0 {
		return firstContributionNA
	}
	return dates[0].Format("Jan 02, 2006")
}

// FollowersPerYear estimates annual follower gain as current followers over
// apparent years active. Years active is taken from the creation date of the
// newest sampled repository, clamped to a minimum of one year; accounts with
// no repositories default to one year. There is no historical data behind
// this figure.
func FollowersPerYear(followers int, newestRepo, now time.Time) int {
	years := 1.0
	if !newestRepo.IsZero() {
		if d := now.Sub(newestRepo); d > 365*24*time.Hour {
			years = d.Hours() / 24 / 365
		}
	}
	return int(float64(followers) / years)
}

// BuildAchievements derives the achievements block from the contribution
// calendar, the profile and the extended stats.
func BuildAchievements(cal ContributionCalendar, profile UserProfile, ext ExtendedStats, now time.Time) Achievements {
	dates := cal.ContributingDays()

	mostStarred := "N/A"
	if ext.MostStarredName != "" {
		mostStarred = fmt.Sprintf("%s (%d stars)", ext.MostStarredName, ext.MostStarredStars)
	}

	return Achievements{
		LongestStreak:     LongestStreak(dates),
		FirstContribution: FirstContribution(dates),
		FollowersPerYear:  FollowersPerYear(profile.Followers, ext.NewestRepoCreatedAt, now),
		MostStarredRepo:   mostStarred,
	}
}

// HasContributions reports whether the calendar contains at least one day
// with a positive count.
func (c ContributionCalendar) HasContributions() bool {
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			if d.Count > 0 {
				return true
			}
		}
	}
	return false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
