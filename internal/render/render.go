// Package render turns the aggregated domain summaries into the final
// artifact: either a composed PNG stats image or a Markdown document with an
// adjacent chart image.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/statsgen/ghstats/internal/core"
)

// Stats is everything the renderers need, assembled once by the entry point.
type Stats struct {
	Profile       core.UserProfile
	Repos         core.RepositorySummary
	TopRepos      []core.Repository
	Calendar      core.ContributionCalendar
	Extended      core.ExtendedStats
	Achievements  core.Achievements
	Contributions int
	GeneratedAt   time.Time
}

// topLanguagesLabel formats the language histogram as a stable,
// count-descending label, so identical input renders identical output.
func topLanguagesLabel(languages map[string]int) string {
	if len(languages) == 0 {
		return "N/A"
	}

	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s (%d)", name, languages[name]))
	}
	return strings.Join(parts, ", ")
}
