// Package config loads the process configuration from the environment into
// an immutable value that the rest of the pipeline receives by parameter.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// FormatImage composes the full raster artifact.
	FormatImage = "image"
	// FormatMarkdown writes a Markdown document with an adjacent chart.
	FormatMarkdown = "markdown"

	// ImagePath is the fixed output path of the image variant.
	ImagePath = "stats_image.png"
	// MarkdownPath is the fixed output path of the Markdown variant.
	MarkdownPath = "README.md"
	// ChartPath is the chart image the Markdown variant references by
	// relative path.
	ChartPath = "contribution_chart.png"
)

type Config struct {
	Token        string
	Username     string
	OutputFormat string
}

// MissingEnvError reports a required environment variable that is not set.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("config: required environment variable %s is not set", e.Name)
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored if present but never required. Load fails
// before any network call can happen if GITHUB_TOKEN or USERNAME is absent,
// or if OUTPUT_FORMAT is set to an unknown value.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Token:        os.Getenv("GITHUB_TOKEN"),
		Username:     os.Getenv("USERNAME"),
		OutputFormat: os.Getenv("OUTPUT_FORMAT"),
	}

	if cfg.Token == "" {
		return Config{}, &MissingEnvError{Name: "GITHUB_TOKEN"}
	}
	if cfg.Username == "" {
		return Config{}, &MissingEnvError{Name: "USERNAME"}
	}

	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = FormatImage
	case FormatImage, FormatMarkdown:
	default:
		return Config{}, fmt.Errorf("config: unsupported OUTPUT_FORMAT %q (want %q or %q)",
			cfg.OutputFormat, FormatImage, FormatMarkdown)
	}

	return cfg, nil
}

// OutputPath returns the fixed artifact path for the selected variant.
func (c Config) OutputPath() string {
	if c.OutputFormat == FormatMarkdown {
		return MarkdownPath
	}
	return ImagePath
}
