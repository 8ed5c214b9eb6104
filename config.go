// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/flamegraph/cluster"
	"github.com/gogpu/flamegraph/hit"
	"github.com/gogpu/flamegraph/schedule"
	"github.com/gogpu/flamegraph/viewport"
)

// ErrInvalidConfig is wrapped by every Config.Validate error.
var ErrInvalidConfig = errors.New("flamegraph: invalid config")

// Config holds the tunable parameters of a Chart. The zero value of a field
// means "use the default" when loading from YAML.
type Config struct {
	// StickDistance is the largest pixel gap across which small nodes merge.
	StickDistance float64 `yaml:"stick_distance"`

	// MinBlockSize is the pixel width under which a node may merge.
	MinBlockSize float64 `yaml:"min_block_size"`

	// MinNodeWidth is the smallest drawn width, applied to zero-length nodes.
	MinNodeWidth float64 `yaml:"min_node_width"`

	// NodeHeight is the height of one flame level in pixels.
	NodeHeight float64 `yaml:"node_height"`

	// MinLabelWidth is the narrowest cluster that gets a label.
	MinLabelWidth float64 `yaml:"min_label_width"`

	// FontSize is the label size in pixels.
	FontSize float64 `yaml:"font_size"`

	// TimelineHeight is the height of the tick label panel.
	TimelineHeight float64 `yaml:"timeline_height"`

	// DoubleClickWindow is the longest gap between the clicks of a double
	// click.
	DoubleClickWindow time.Duration `yaml:"double_click_window"`

	// RegionRebuildDelay defers hit region rebuilds after a full frame.
	RegionRebuildDelay time.Duration `yaml:"region_rebuild_delay"`

	// WheelZoomFactor is the zoom multiplier of one wheel step.
	WheelZoomFactor float64 `yaml:"wheel_zoom_factor"`

	MaxGridAccuracy int     `yaml:"max_grid_accuracy"`
	GridDensity     float64 `yaml:"grid_density"`
	TimeUnit        string  `yaml:"time_unit"`

	// FallbackColor is used for intervals without a valid color.
	FallbackColor string `yaml:"fallback_color"`
}

// Defaults.
const (
	DefaultNodeHeight      = 18.0
	DefaultMinLabelWidth   = 30.0
	DefaultTimelineHeight  = 20.0
	DefaultWheelZoomFactor = 1.25
	DefaultFallbackColor   = "#e5a34b"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		StickDistance:      cluster.DefaultStickDistance,
		MinBlockSize:       cluster.DefaultMinBlockSize,
		MinNodeWidth:       cluster.DefaultMinNodeWidth,
		NodeHeight:         DefaultNodeHeight,
		MinLabelWidth:      DefaultMinLabelWidth,
		FontSize:           11,
		TimelineHeight:     DefaultTimelineHeight,
		DoubleClickWindow:  hit.DefaultDoubleClickWindow,
		RegionRebuildDelay: schedule.DefaultDebounceDelay,
		WheelZoomFactor:    DefaultWheelZoomFactor,
		MaxGridAccuracy:    viewport.DefaultMaxGridAccuracy,
		GridDensity:        viewport.DefaultGridDensity,
		TimeUnit:           "ms",
		FallbackColor:      DefaultFallbackColor,
	}
}

// LoadConfig reads a YAML configuration. Missing fields keep their defaults;
// unknown fields are an error. The result is validated.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("flamegraph: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("flamegraph: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"min_block_size", c.MinBlockSize},
		{"min_node_width", c.MinNodeWidth},
		{"node_height", c.NodeHeight},
		{"font_size", c.FontSize},
		{"grid_density", c.GridDensity},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 1) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	switch {
	case !(c.StickDistance >= 0) || math.IsInf(c.StickDistance, 1):
		return fmt.Errorf("%w: stick_distance must be a non-negative number", ErrInvalidConfig)
	case !(c.MinLabelWidth >= 0) || math.IsInf(c.MinLabelWidth, 1):
		return fmt.Errorf("%w: min_label_width must be a non-negative number", ErrInvalidConfig)
	case !(c.TimelineHeight >= 0) || math.IsInf(c.TimelineHeight, 1):
		return fmt.Errorf("%w: timeline_height must be a non-negative number", ErrInvalidConfig)
	case c.DoubleClickWindow <= 0:
		return fmt.Errorf("%w: double_click_window must be positive", ErrInvalidConfig)
	case c.RegionRebuildDelay < 0:
		return fmt.Errorf("%w: region_rebuild_delay must not be negative", ErrInvalidConfig)
	case !(c.WheelZoomFactor > 1) || math.IsInf(c.WheelZoomFactor, 1):
		return fmt.Errorf("%w: wheel_zoom_factor must be greater than 1", ErrInvalidConfig)
	case c.MaxGridAccuracy < 1:
		return fmt.Errorf("%w: max_grid_accuracy must be at least 1", ErrInvalidConfig)
	}
	if _, ok := ParseColor(c.FallbackColor); !ok {
		return fmt.Errorf("%w: fallback_color %q is not a hex color", ErrInvalidConfig, c.FallbackColor)
	}
	return nil
}

func (c Config) clusterParams() cluster.Params {
	return cluster.Params{
		StickDistance: c.StickDistance,
		MinBlockSize:  c.MinBlockSize,
		MinNodeWidth:  c.MinNodeWidth,
	}
}

func (c Config) viewportConfig() viewport.Config {
	cfg := viewport.DefaultConfig()
	cfg.MaxGridAccuracy = c.MaxGridAccuracy
	cfg.GridDensity = c.GridDensity
	cfg.TimeUnit = c.TimeUnit
	return cfg
}

func (c Config) hitConfig() hit.Config {
	cfg := hit.DefaultConfig()
	cfg.DoubleClickWindow = c.DoubleClickWindow
	return cfg
}
