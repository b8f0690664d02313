package chart

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
)

// Artifact is one rendered figure. Created per render call, never mutated
// after creation; Path is filled in by Save.
type Artifact struct {
	Image image.Image
	Title string
	Path  string
}

// Save writes the artifact as a PNG, creating parent directories as needed.
func (a *Artifact) Save(path string) error {
	if a == nil || a.Image == nil {
		return fmt.Errorf("save: empty artifact")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("save: create dir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, a.Image); err != nil {
		return fmt.Errorf("save: encode %s: %w", path, err)
	}
	a.Path = path
	slog.Info("chart saved", "path", path)
	return nil
}
