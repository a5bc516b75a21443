package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statsgen/ghstats/internal/core"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestLanguagePie(t *testing.T) {
	var buf bytes.Buffer
	err := LanguagePie(map[string]int{"Go": 3, "Python": 1}, 400, 400, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "output should be a PNG")
}

func TestLanguagePieEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, LanguagePie(nil, 400, 400, &buf), ErrNoChartData)
	assert.ErrorIs(t, LanguagePie(map[string]int{}, 400, 400, &buf), ErrNoChartData)
	assert.Zero(t, buf.Len())
}

func TestContributionLine(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	days := make([]core.ContributionDay, 0, 30)
	for i := 0; i < 30; i++ {
		days = append(days, core.ContributionDay{
			Date:  start.AddDate(0, 0, i),
			Count: i % 5,
		})
	}

	var buf bytes.Buffer
	err := ContributionLine(days, true, 1000, 300, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "output should be a PNG")
}

func TestContributionLineEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, ContributionLine(nil, false, 1000, 300, &buf), ErrNoChartData)
	assert.Zero(t, buf.Len())
}
