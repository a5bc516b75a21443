package render

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"
)

//go:embed templates/stats.md.tmpl
var statsTemplate string

var statsTmpl = template.Must(template.New("stats").Parse(statsTemplate))

type markdownViewModel struct {
	Username string

	PublicRepos int
	Followers   int
	Following   int

	TotalStars  int
	EarnedStars int
	StarsGiven  int

	LinesAdded   int
	LinesDeleted int

	TotalIssues       int
	TotalPullRequests int

	TotalContributions   int
	PublicContributions  int
	PrivateContributions int
	AuthoredCount        int

	TopLanguages string
	ChartPath    string

	LongestStreak     int
	FirstContribution string
	FollowersPerYear  int
	MostStarredRepo   string
}

// RenderMarkdown writes the Markdown variant to outPath, overwriting any
// prior document. chartPath is the relative image reference to embed; leave
// it empty to skip the chart section. The output carries no timestamp, so
// identical input produces a byte-identical document.
func RenderMarkdown(stats Stats, chartPath, outPath string) error {
	vm := markdownViewModel{
		Username:             stats.Profile.Username,
		PublicRepos:          stats.Profile.PublicRepos,
		Followers:            stats.Profile.Followers,
		Following:            stats.Profile.Following,
		TotalStars:           stats.Repos.TotalStars,
		EarnedStars:          stats.Extended.EarnedStars,
		StarsGiven:           stats.Extended.StarsGiven,
		LinesAdded:           stats.Extended.LinesAdded,
		LinesDeleted:         stats.Extended.LinesDeleted,
		TotalIssues:          stats.Extended.TotalIssues,
		TotalPullRequests:    stats.Extended.TotalPullRequests,
		TotalContributions:   stats.Calendar.Total,
		PublicContributions:  stats.Extended.PublicContributions,
		PrivateContributions: stats.Extended.PrivateContributions,
		AuthoredCount:        stats.Contributions,
		TopLanguages:         topLanguagesLabel(stats.Repos.Languages),
		ChartPath:            chartPath,
		LongestStreak:        stats.Achievements.LongestStreak,
		FirstContribution:    stats.Achievements.FirstContribution,
		FollowersPerYear:     stats.Achievements.FollowersPerYear,
		MostStarredRepo:      stats.Achievements.MostStarredRepo,
	}

	return writeAtomic(outPath, func(w io.Writer) error {
		if err := statsTmpl.Execute(w, vm); err != nil {
			return fmt.Errorf("render: markdown: %w", err)
		}
		return nil
	})
}
