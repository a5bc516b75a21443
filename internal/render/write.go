package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeAtomic renders into a temp file in the target directory and renames
// it over path, so a failing render never leaves a partial artifact behind.
func writeAtomic(path string, render func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ghstats-*")
	if err != nil {
		return fmt.Errorf("render: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := render(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("render: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("render: replace %s: %w", path, err)
	}
	return nil
}

// WriteChart renders a chart through writeAtomic to a fixed path.
func WriteChart(path string, render func(io.Writer) error) error {
	return writeAtomic(path, render)
}
