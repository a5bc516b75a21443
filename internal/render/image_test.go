package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderImage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "stats_image.png")

	require.NoError(t, RenderImage(sampleStats(), out))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, pngMagic), "artifact should be a PNG")
}

func TestRenderImageEmptyCalendar(t *testing.T) {
	// Empty charts are skipped, not fatal: the composition still succeeds.
	stats := sampleStats()
	stats.Calendar.Weeks = nil
	stats.Repos.Languages = nil

	dir := t.TempDir()
	out := filepath.Join(dir, "stats_image.png")

	require.NoError(t, RenderImage(stats, out))

	_, err := os.Stat(out)
	assert.NoError(t, err)
}
