package github

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Quota is the remaining call budget and reset time for one rate-limit
// category.
type Quota struct {
	Remaining int
	Reset     time.Time
}

// RateLimit is the provider's current quota state for the three categories
// this tool draws on.
type RateLimit struct {
	Core    Quota
	Search  Quota
	GraphQL Quota
}

// RateLimitError means at least one category is exhausted. It carries the
// reset times so the operator knows when a rerun will succeed.
type RateLimitError struct {
	Limits RateLimit
}

func (e *RateLimitError) Error() string {
	var exhausted []string
	for _, c := range []struct {
		name  string
		quota Quota
	}{
		{"core", e.Limits.Core},
		{"search", e.Limits.Search},
		{"graphql", e.Limits.GraphQL},
	} {
		if c.quota.Remaining == 0 {
			exhausted = append(exhausted,
				fmt.Sprintf("%s resets at %s", c.name, c.quota.Reset.Format(time.RFC1123)))
		}
	}
	return "github: rate limit exhausted: " + strings.Join(exhausted, ", ")
}

type rateLimitResource struct {
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

type rateLimitResponse struct {
	Resources struct {
		Core    rateLimitResource `json:"core"`
		Search  rateLimitResource `json:"search"`
		GraphQL rateLimitResource `json:"graphql"`
	} `json:"resources"`
}

// CheckRateLimit queries the provider's quota-status endpoint. It is a
// single unguarded GET with no retry.
func (c *Client) CheckRateLimit(ctx context.Context) (RateLimit, error) {
	endpoint := c.baseURL + "/rate_limit"

	var resp rateLimitResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return RateLimit{}, fmt.Errorf("github: check rate limit: %w", err)
	}

	return RateLimit{
		Core:    toQuota(resp.Resources.Core),
		Search:  toQuota(resp.Resources.Search),
		GraphQL: toQuota(resp.Resources.GraphQL),
	}, nil
}

// ValidateRateLimit fails with a RateLimitError when any category has no
// calls left, and logs a warning when a category is below the low-water
// mark.
func (c *Client) ValidateRateLimit(ctx context.Context) error {
	limits, err := c.CheckRateLimit(ctx)
	if err != nil {
		return err
	}

	exhausted := false
	for _, cat := range []struct {
		name  string
		quota Quota
	}{
		{"core", limits.Core},
		{"search", limits.Search},
		{"graphql", limits.GraphQL},
	} {
		if cat.quota.Remaining == 0 {
			exhausted = true
			continue
		}
		if cat.quota.Remaining < lowWaterMark {
			c.log.Warnw("rate limit running low",
				"category", cat.name,
				"remaining", cat.quota.Remaining,
				"reset", cat.quota.Reset)
		}
	}

	if exhausted {
		return &RateLimitError{Limits: limits}
	}
	return nil
}

func toQuota(r rateLimitResource) Quota {
	return Quota{
		Remaining: r.Remaining,
		Reset:     time.Unix(r.Reset, 0).UTC(),
	}
}
