package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/statsgen/ghstats/internal/core"
)

const (
	imageWidth  = 1000
	imageHeight = 1600

	marginX    = 40
	metricsY   = 150
	lineStep   = 40
	chartY     = 450
	pieY       = 730
	topReposY  = 1150
	achievesY  = 1350
	headerSize = 28
	textSize   = 22
)

var (
	headerFace = mustFace(headerSize)
	textFace   = mustFace(textSize)
)

func mustFace(size float64) font.Face {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		panic(err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// RenderImage composes the full stats image: header, metrics block, the two
// charts, top repositories, achievements and a footer, at fixed offsets on a
// 1000x1600 canvas. The two chart images are written to temp files and
// removed before returning, even when a drawing step fails. The final PNG is
// written atomically to outPath.
func RenderImage(stats Stats, outPath string) error {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetRGB255(35, 35, 35)
	dc.Clear()

	drawHeader(dc, stats)
	drawMetrics(dc, stats)

	if err := pasteCharts(dc, stats); err != nil {
		return err
	}

	drawTopRepos(dc, stats.TopRepos)
	drawAchievements(dc, stats.Achievements)
	drawFooter(dc)

	return writeAtomic(outPath, dc.EncodePNG)
}

func drawHeader(dc *gg.Context, stats Stats) {
	dc.SetFontFace(headerFace)
	dc.SetRGB255(100, 149, 237)
	drawText(dc, fmt.Sprintf("GitHub Statistics for @%s", stats.Profile.Username), marginX, 40, headerSize)

	dc.SetFontFace(textFace)
	dc.SetRGB255(255, 255, 255)
	drawText(dc, "Updated: "+stats.GeneratedAt.Format("Jan 02, 2006"), marginX, 90, textSize)
}

func drawMetrics(dc *gg.Context, stats Stats) {
	dc.SetFontFace(textFace)
	dc.SetRGB255(255, 255, 255)

	metrics := []string{
		fmt.Sprintf("Total Stars: %d (Earned: %d)", stats.Repos.TotalStars, stats.Extended.EarnedStars),
		fmt.Sprintf("Lines Added: +%d | Lines Deleted: -%d", stats.Extended.LinesAdded, stats.Extended.LinesDeleted),
		fmt.Sprintf("Total Contributions: %d", stats.Contributions),
		fmt.Sprintf("Issues: %d | Pull Requests: %d", stats.Extended.TotalIssues, stats.Extended.TotalPullRequests),
	}
	for i, m := range metrics {
		drawText(dc, m, marginX, metricsY+i*lineStep, textSize)
	}
}

// pasteCharts renders both auxiliary charts into temp files, pastes them at
// their fixed offsets and cleans the temp files up. A chart with nothing to
// plot is skipped rather than failing the composition.
func pasteCharts(dc *gg.Context, stats Stats) error {
	if err := pasteChart(dc, marginX, chartY, func(f *os.File) error {
		return ContributionLine(stats.Calendar.Days(), false, 900, 250, f)
	}); err != nil {
		return fmt.Errorf("render: contribution chart: %w", err)
	}

	if err := pasteChart(dc, marginX, pieY, func(f *os.File) error {
		return LanguagePie(stats.Repos.Languages, 400, 400, f)
	}); err != nil {
		return fmt.Errorf("render: language chart: %w", err)
	}

	return nil
}

func pasteChart(dc *gg.Context, x, y int, renderChart func(*os.File) error) error {
	tmp, err := os.CreateTemp("", "ghstats-chart-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := renderChart(tmp); err != nil {
		if errors.Is(err, ErrNoChartData) {
			return nil
		}
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	img, err := gg.LoadImage(tmp.Name())
	if err != nil {
		return err
	}
	dc.DrawImage(img, x, y)
	return nil
}

func drawTopRepos(dc *gg.Context, repos []core.Repository) {
	dc.SetFontFace(headerFace)
	dc.SetRGB255(100, 149, 237)
	drawText(dc, "Top Repositories", marginX, topReposY, headerSize)

	dc.SetFontFace(textFace)
	dc.SetRGB255(255, 255, 255)
	for i, r := range repos {
		line := fmt.Sprintf("%d. %s | Stars: %d | Forks: %d", i+1, r.Name, r.Stars, r.Forks)
		drawText(dc, line, marginX, topReposY+50+i*lineStep, textSize)
	}
}

func drawAchievements(dc *gg.Context, a core.Achievements) {
	dc.SetFontFace(headerFace)
	dc.SetRGB255(100, 149, 237)
	drawText(dc, "Achievements", marginX, achievesY, headerSize)

	dc.SetFontFace(textFace)
	dc.SetRGB255(255, 255, 255)
	lines := []string{
		fmt.Sprintf("Longest Streak: %d days", a.LongestStreak),
		fmt.Sprintf("Followers Gained: ~%d per year", a.FollowersPerYear),
		fmt.Sprintf("First Contribution: %s", a.FirstContribution),
		fmt.Sprintf("Most Starred Repo: %s", a.MostStarredRepo),
	}
	for i, line := range lines {
		drawText(dc, line, marginX, achievesY+50+i*lineStep, textSize)
	}
}

func drawFooter(dc *gg.Context) {
	dc.SetFontFace(textFace)
	dc.SetRGB255(255, 255, 255)
	drawText(dc, "Generated automatically by ghstats", marginX, imageHeight-60, textSize)
}

// drawText draws with top-left positioning; gg's DrawString takes the
// baseline, so the font size is added to y.
func drawText(dc *gg.Context, s string, x, y int, size float64) {
	dc.DrawString(s, float64(x), float64(y)+size)
}
