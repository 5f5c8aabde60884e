// Package config provides the viewer configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"album/internal/viewport"
)

// Viewer is the viewer configuration.
type Viewer struct {
	// Dir is the image directory.
	Dir string `toml:"dir"`
	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the size of one slot and
	// of the window.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Step is the view fraction moved per animation
	// tick and Interval is the time between ticks.
	Step     float64       `toml:"step"`
	Interval time.Duration `toml:"interval"`

	// LeftZone and RightZone are the fractions of the
	// window width bounding the navigation zones.
	LeftZone  float64 `toml:"left_zone"`
	RightZone float64 `toml:"right_zone"`

	// Sort orders images by file name instead of
	// directory listing order.
	Sort bool `toml:"sort"`
	// Fit scales images down to the slot size.
	Fit bool `toml:"fit"`
}

// Default returns the default configuration.
func Default() Viewer {
	return Viewer{
		Dir:       "Images",
		Title:     "Photo Album Viewer",
		Width:     500,
		Height:    500,
		Step:      viewport.DefaultStep,
		Interval:  50 * time.Millisecond,
		LeftZone:  viewport.DefaultLeftZone,
		RightZone: viewport.DefaultRightZone,
	}
}

// Load returns the default configuration overlaid with the TOML file at
// path. Unknown keys are an error.
func Load(path string) (Viewer, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate returns an error describing every invalid field of cfg.
func (cfg Viewer) Validate() error {
	var errs []error
	if cfg.Dir == "" {
		errs = append(errs, errors.New("dir: must not be empty"))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("size: must be positive: %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.Step <= 0 || cfg.Step > viewport.NextOffset-viewport.PrevOffset {
		errs = append(errs, fmt.Errorf("step: out of range: %v", cfg.Step))
	}
	if cfg.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval: must be positive: %v", cfg.Interval))
	}
	if !(0 < cfg.LeftZone && cfg.LeftZone < 1) {
		errs = append(errs, fmt.Errorf("left_zone: out of range: %v", cfg.LeftZone))
	}
	if !(0 < cfg.RightZone && cfg.RightZone < 1) {
		errs = append(errs, fmt.Errorf("right_zone: out of range: %v", cfg.RightZone))
	}
	if cfg.LeftZone >= cfg.RightZone {
		errs = append(errs, fmt.Errorf("zones overlap: left_zone=%v right_zone=%v", cfg.LeftZone, cfg.RightZone))
	}
	return errors.Join(errs...)
}
