package github

import (
	"context"
	"fmt"
	"net/url"

	"github.com/statsgen/ghstats/internal/core"
)

type restUser struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

type restRepo struct {
	Name            string `json:"name"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Language        string `json:"language"`
}

// FetchUser fetches the basic profile for username.
func (c *Client) FetchUser(ctx context.Context, username string) (core.UserProfile, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	var u restUser
	if err := c.FetchJSON(ctx, endpoint, &u); err != nil {
		return core.UserProfile{}, fmt.Errorf("github: fetch user: %w", err)
	}

	return core.UserProfile{
		Username:    u.Login,
		Name:        u.Name,
		PublicRepos: u.PublicRepos,
		Followers:   u.Followers,
		Following:   u.Following,
	}, nil
}

// FetchRepos fetches username's public repository list. Only the first page
// is fetched; pagination is out of scope for this tool.
func (c *Client) FetchRepos(ctx context.Context, username string) ([]core.Repository, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=100", c.baseURL, url.PathEscape(username))

	var raw []restRepo
	if err := c.FetchJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("github: fetch repos: %w", err)
	}

	repos := make([]core.Repository, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, core.Repository{
			Name:     r.Name,
			Stars:    r.StargazersCount,
			Forks:    r.ForksCount,
			Language: r.Language,
		})
	}
	return repos, nil
}

// FetchAuthoredIssueCount counts issues and pull requests authored by
// username via the search API.
func (c *Client) FetchAuthoredIssueCount(ctx context.Context, username string) (int, error) {
	endpoint := fmt.Sprintf("%s/search/issues?q=author:%s", c.baseURL, url.QueryEscape(username))

	var result struct {
		TotalCount int `json:"total_count"`
	}
	if err := c.FetchJSON(ctx, endpoint, &result); err != nil {
		return 0, fmt.Errorf("github: search authored issues: %w", err)
	}
	return result.TotalCount, nil
}
