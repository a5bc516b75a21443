package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/statsgen/ghstats/internal/config"
	"github.com/statsgen/ghstats/internal/core"
	"github.com/statsgen/ghstats/internal/github"
	"github.com/statsgen/ghstats/internal/render"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if err := run(log); err != nil {
		log.Errorw("run failed", "error", err)
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	client := github.New(cfg.Token, log)

	if err := client.ValidateRateLimit(ctx); err != nil {
		return err
	}

	log.Infow("fetching github data", "user", cfg.Username)

	profile, err := client.FetchUser(ctx, cfg.Username)
	if err != nil {
		return err
	}

	repos, err := client.FetchRepos(ctx, cfg.Username)
	if err != nil {
		return err
	}

	contributions, err := client.FetchAuthoredIssueCount(ctx, cfg.Username)
	if err != nil {
		return err
	}

	calendar, defaulted, err := client.FetchContributionCalendar(ctx, cfg.Username)
	if err != nil {
		return err
	}
	if defaulted {
		log.Warnw("contribution calendar response was malformed, using empty calendar")
	}

	extended, defaulted, err := client.FetchExtendedStats(ctx, cfg.Username)
	if err != nil {
		return err
	}
	if defaulted {
		log.Warnw("extended stats response was malformed, using zero values")
	}

	if !calendar.HasContributions() {
		log.Warnw("no contributing days in the trailing year; streak reports its floor value of 1")
	}

	stats := render.Stats{
		Profile:       profile,
		Repos:         core.SummarizeRepos(repos),
		TopRepos:      core.TopReposByStars(repos, 3),
		Calendar:      calendar,
		Extended:      extended,
		Achievements:  core.BuildAchievements(calendar, profile, extended, time.Now()),
		Contributions: contributions,
		GeneratedAt:   time.Now(),
	}

	log.Infow("rendering artifact", "format", cfg.OutputFormat, "path", cfg.OutputPath())

	switch cfg.OutputFormat {
	case config.FormatMarkdown:
		return renderMarkdown(stats, log)
	default:
		return render.RenderImage(stats, config.ImagePath)
	}
}

// renderMarkdown writes the chart image next to the document first, then the
// document itself. A calendar with nothing to plot skips the chart reference
// instead of failing.
func renderMarkdown(stats render.Stats, log *zap.SugaredLogger) error {
	chartPath := config.ChartPath
	err := render.WriteChart(chartPath, func(w io.Writer) error {
		return render.ContributionLine(stats.Calendar.Days(), true, 1000, 300, w)
	})
	switch {
	case errors.Is(err, render.ErrNoChartData):
		log.Warnw("empty contribution calendar, skipping chart embed")
		chartPath = ""
	case err != nil:
		return err
	}

	return render.RenderMarkdown(stats, chartPath, config.MarkdownPath)
}
