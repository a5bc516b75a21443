package github

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimit(t *testing.T) {
	mux := http.NewServeMux()
	serveRateLimit(mux, rateLimitOKBody)

	c := newTestClient(t, mux)

	limits, err := c.CheckRateLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5000, limits.Core.Remaining)
	assert.Equal(t, 30, limits.Search.Remaining)
	assert.Equal(t, 5000, limits.GraphQL.Remaining)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), limits.Core.Reset)
}

func TestCheckRateLimitTransportFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rate_limit", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	c := newTestClient(t, mux)

	_, err := c.CheckRateLimit(context.Background())
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
}

func TestValidateRateLimitAllHealthy(t *testing.T) {
	mux := http.NewServeMux()
	serveRateLimit(mux, `{
		"resources": {
			"core":    {"remaining": 1, "reset": 1700000000},
			"search":  {"remaining": 1, "reset": 1700000000},
			"graphql": {"remaining": 1, "reset": 1700000000}
		}
	}`)

	c := newTestClient(t, mux)

	assert.NoError(t, c.ValidateRateLimit(context.Background()))
}

func TestValidateRateLimitExhausted(t *testing.T) {
	mux := http.NewServeMux()
	serveRateLimit(mux, `{
		"resources": {
			"core":    {"remaining": 5000, "reset": 1700000000},
			"search":  {"remaining": 0,    "reset": 1700000000},
			"graphql": {"remaining": 5000, "reset": 1700000000}
		}
	}`)

	c := newTestClient(t, mux)

	err := c.ValidateRateLimit(context.Background())
	var limited *RateLimitError
	require.ErrorAs(t, err, &limited)
	assert.Zero(t, limited.Limits.Search.Remaining)
	assert.Contains(t, err.Error(), "search resets at")
}

func TestValidateRateLimitLowWaterDoesNotFail(t *testing.T) {
	// Below the low-water mark the guard warns but keeps going.
	mux := http.NewServeMux()
	serveRateLimit(mux, rateLimitOKBody)

	c := newTestClient(t, mux)

	assert.NoError(t, c.ValidateRateLimit(context.Background()))
}
