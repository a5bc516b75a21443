package core

import (
	"sort"
	"time"
)

// UserProfile is the basic account summary from the REST user endpoint.
type UserProfile struct {
	Username    string
	Name        string
	PublicRepos int
	Followers   int
	Following   int
}

// Repository is one repository as seen by the aggregators. CreatedAt is only
// populated for repositories sampled by the extended-stats query.
type Repository struct {
	Name      string
	Stars     int
	Forks     int
	Language  string
	CreatedAt time.Time
}

// RepositorySummary holds the star total and per-language repository counts
// across an account's repository list.
type RepositorySummary struct {
	TotalStars int
	Languages  map[string]int
}

type ContributionDay struct {
	Date  time.Time
	Count int
}

type ContributionWeek struct {
	Days []ContributionDay
}

// ContributionCalendar is the per-day activity series for the trailing
// twelve months. Weeks are in ascending chronological order and days within
// a week are contiguous calendar days.
type ContributionCalendar struct {
	Total int
	Weeks []ContributionWeek
}

// Days flattens the calendar into a single day sequence, preserving order.
func (c ContributionCalendar) Days() []ContributionDay {
	var days []ContributionDay
	for _, w := range c.Weeks {
		days = append(days, w.Days...)
	}
	return days
}

// ContributingDays returns the dates with a positive contribution count,
// sorted ascending.
func (c ContributionCalendar) ContributingDays() []time.Time {
	var dates []time.Time
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			if d.Count > 0 {
				dates = append(dates, d.Date)
			}
		}
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// ExtendedStats holds the secondary aggregate figures. EarnedStars,
// LinesAdded and LinesDeleted are sampled from at most the 100
// highest-starred repositories and the most recent 100 commits per default
// branch, so large accounts will undercount.
type ExtendedStats struct {
	EarnedStars          int
	LinesAdded           int
	LinesDeleted         int
	TotalIssues          int
	TotalPullRequests    int
	StarsGiven           int
	PublicContributions  int
	PrivateContributions int
	MostStarredName      string
	MostStarredStars     int
	NewestRepoCreatedAt  time.Time
}

// Achievements are derived figures for the artifact's achievements block.
// FollowersPerYear is a heuristic (current followers over apparent years
// active), not a tracked historical series.
type Achievements struct {
	LongestStreak     int
	FirstContribution string
	FollowersPerYear  int
	MostStarredRepo   string
}
