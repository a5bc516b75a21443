package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeRepos(t *testing.T) {
	repos := []Repository{
		{Name: "a", Stars: 5, Language: "Go"},
		{Name: "b", Stars: 3, Language: ""},
		{Name: "c", Stars: 2, Language: "Go"},
	}

	summary := SummarizeRepos(repos)

	assert.Equal(t, 10, summary.TotalStars, "language-less repos still count stars")
	assert.Equal(t, map[string]int{"Go": 2}, summary.Languages)
}

func TestSummarizeReposEmpty(t *testing.T) {
	summary := SummarizeRepos(nil)
	assert.Zero(t, summary.TotalStars)
	assert.Empty(t, summary.Languages)
}

func TestTopReposByStars(t *testing.T) {
	repos := []Repository{
		{Name: "low", Stars: 1},
		{Name: "high", Stars: 9},
		{Name: "mid", Stars: 4},
		{Name: "alsoMid", Stars: 4},
	}

	top := TopReposByStars(repos, 3)

	assert.Len(t, top, 3)
	assert.Equal(t, "high", top[0].Name)
	assert.Equal(t, "mid", top[1].Name, "ties keep input order")
	assert.Equal(t, "alsoMid", top[2].Name)

	// input order must survive
	assert.Equal(t, "low", repos[0].Name)
}

func TestTopReposByStarsShortList(t *testing.T) {
	repos := []Repository{{Name: "only", Stars: 2}}
	assert.Len(t, TopReposByStars(repos, 3), 1)
}
