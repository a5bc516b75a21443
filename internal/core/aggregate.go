package core

import "sort"

// SummarizeRepos builds the star total and language histogram for a
// repository list. Repositories without a detected primary language still
// count toward the star total but are excluded from the histogram.
func SummarizeRepos(repos []Repository) RepositorySummary {
	summary := RepositorySummary{
		Languages: make(map[string]int),
	}
	for _, r := range repos {
		summary.TotalStars += r.Stars
		if r.Language == "" {
			continue
		}
		summary.Languages[r.Language]++
	}
	return summary
}

// TopReposByStars returns the n highest-starred repositories, most starred
// first. Ties keep the input order.
func TopReposByStars(repos []Repository, n int) []Repository {
	sorted := make([]Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
