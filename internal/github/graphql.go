package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/statsgen/ghstats/internal/core"
)

// GraphQLError is a failed GraphQL exchange: transport failure, non-2xx
// status, or a 200 response carrying a non-empty errors array.
type GraphQLError struct {
	Messages []string
	Err      error
}

func (e *GraphQLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("github: graphql request failed: %v", e.Err)
	}
	return "github: graphql errors: " + strings.Join(e.Messages, "; ")
}

func (e *GraphQLError) Unwrap() error {
	return e.Err
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// postGraphQL performs one POST attempt and returns the raw data document.
func (c *Client) postGraphQL(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("github: marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("github: new graphql request: %w", err)
	}
	c.applyHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.graphql.Do(req)
	if err != nil {
		return nil, &GraphQLError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GraphQLError{Err: &TransportError{URL: c.graphqlURL, StatusCode: resp.StatusCode}}
	}

	var envelope graphqlEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &GraphQLError{Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return nil, &GraphQLError{Messages: messages}
	}

	return envelope.Data, nil
}

// queryGraphQL is the guarded, retried GraphQL POST. The retry policy is
// fixed: up to retryAttempts attempts with a constant retryDelay between
// them, no jitter. The last error wins after exhaustion.
func (c *Client) queryGraphQL(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if err := c.ValidateRateLimit(ctx); err != nil {
		return nil, err
	}

	var data json.RawMessage
	err := retry.Do(
		func() error {
			var err error
			data, err = c.postGraphQL(ctx, query, variables)
			return err
		},
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			c.log.Warnw("graphql attempt failed, retrying",
				"attempt", n+1,
				"delay", c.retryDelay,
				"error", err)
		}),
	)
	if err != nil {
		return nil, err
	}
	return data, nil
}

const contributionCalendarQuery = `
query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

type calendarData struct {
	User *struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions int `json:"totalContributions"`
				Weeks              []struct {
					ContributionDays []struct {
						Date              string `json:"date"`
						ContributionCount int    `json:"contributionCount"`
					} `json:"contributionDays"`
				} `json:"weeks"`
			} `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

// FetchContributionCalendar fetches the trailing twelve months of per-day
// contribution counts. The second return value reports whether the result is
// the documented zero-value default because the response, while successful,
// was missing the expected nested fields.
func (c *Client) FetchContributionCalendar(ctx context.Context, username string) (core.ContributionCalendar, bool, error) {
	raw, err := c.queryGraphQL(ctx, contributionCalendarQuery, map[string]any{"login": username})
	if err != nil {
		return core.ContributionCalendar{}, false, err
	}

	var data calendarData
	if err := json.Unmarshal(raw, &data); err != nil || data.User == nil {
		return core.ContributionCalendar{}, true, nil
	}

	cal := data.User.ContributionsCollection.ContributionCalendar
	result := core.ContributionCalendar{
		Total: cal.TotalContributions,
		Weeks: make([]core.ContributionWeek, 0, len(cal.Weeks)),
	}
	for _, w := range cal.Weeks {
		week := core.ContributionWeek{
			Days: make([]core.ContributionDay, 0, len(w.ContributionDays)),
		}
		for _, d := range w.ContributionDays {
			date, err := time.Parse("2006-01-02", d.Date)
			if err != nil {
				continue
			}
			week.Days = append(week.Days, core.ContributionDay{
				Date:  date,
				Count: d.ContributionCount,
			})
		}
		result.Weeks = append(result.Weeks, week)
	}
	return result, false, nil
}

const extendedStatsQuery = `
query($login: String!) {
  user(login: $login) {
    repositories(first: 100, orderBy: {field: STARGAZERS, direction: DESC}) {
      edges {
        node {
          name
          createdAt
          stargazers {
            totalCount
          }
          defaultBranchRef {
            target {
              ... on Commit {
                history(first: 100) {
                  edges {
                    node {
                      additions
                      deletions
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
    issues {
      totalCount
    }
    pullRequests {
      totalCount
    }
    starredRepositories {
      totalCount
    }
    contributionsCollection {
      contributionCalendar {
        totalContributions
      }
      restrictedContributionsCount
    }
  }
}`

type extendedData struct {
	User *struct {
		Repositories struct {
			Edges []struct {
				Node struct {
					Name       string    `json:"name"`
					CreatedAt  time.Time `json:"createdAt"`
					Stargazers struct {
						TotalCount int `json:"totalCount"`
					} `json:"stargazers"`
					DefaultBranchRef *struct {
						Target *struct {
							History struct {
								Edges []struct {
									Node struct {
										Additions int `json:"additions"`
										Deletions int `json:"deletions"`
									} `json:"node"`
								} `json:"edges"`
							} `json:"history"`
						} `json:"target"`
					} `json:"defaultBranchRef"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"repositories"`
		Issues struct {
			TotalCount int `json:"totalCount"`
		} `json:"issues"`
		PullRequests struct {
			TotalCount int `json:"totalCount"`
		} `json:"pullRequests"`
		StarredRepositories struct {
			TotalCount int `json:"totalCount"`
		} `json:"starredRepositories"`
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions int `json:"totalContributions"`
			} `json:"contributionCalendar"`
			RestrictedContributionsCount int `json:"restrictedContributionsCount"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

// FetchExtendedStats fetches the sampled secondary figures: earned stars and
// line counts across at most the 100 highest-starred repositories and their
// most recent 100 default-branch commits, plus issue/PR totals, stars given
// and the public/private contribution split. The second return value is true
// when the response was structurally invalid and the zero-value default was
// substituted.
func (c *Client) FetchExtendedStats(ctx context.Context, username string) (core.ExtendedStats, bool, error) {
	raw, err := c.queryGraphQL(ctx, extendedStatsQuery, map[string]any{"login": username})
	if err != nil {
		return core.ExtendedStats{}, false, err
	}

	var data extendedData
	if err := json.Unmarshal(raw, &data); err != nil || data.User == nil {
		return core.ExtendedStats{}, true, nil
	}

	user := data.User
	stats := core.ExtendedStats{
		TotalIssues:       user.Issues.TotalCount,
		TotalPullRequests: user.PullRequests.TotalCount,
		StarsGiven:        user.StarredRepositories.TotalCount,
	}

	total := user.ContributionsCollection.ContributionCalendar.TotalContributions
	restricted := user.ContributionsCollection.RestrictedContributionsCount
	stats.PrivateContributions = restricted
	if total > restricted {
		stats.PublicContributions = total - restricted
	}

	for i, edge := range user.Repositories.Edges {
		node := edge.Node
		stats.EarnedStars += node.Stargazers.TotalCount

		// Repositories arrive ordered by stars descending.
		if i == 0 {
			stats.MostStarredName = node.Name
			stats.MostStarredStars = node.Stargazers.TotalCount
		}
		if node.CreatedAt.After(stats.NewestRepoCreatedAt) {
			stats.NewestRepoCreatedAt = node.CreatedAt
		}

		if node.DefaultBranchRef == nil || node.DefaultBranchRef.Target == nil {
			continue
		}
		for _, commit := range node.DefaultBranchRef.Target.History.Edges {
			stats.LinesAdded += commit.Node.Additions
			stats.LinesDeleted += commit.Node.Deletions
		}
	}

	return stats, false, nil
}
