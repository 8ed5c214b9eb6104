// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if got := DefaultConfig().DoubleClickWindow; got != 300*time.Millisecond {
		t.Errorf("DoubleClickWindow = %v, want 300ms", got)
	}
}

func TestLoadConfig(t *testing.T) {
	const doc = `
stick_distance: 0.5
node_height: 24
double_click_window: 250ms
time_unit: us
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.StickDistance != 0.5 || cfg.NodeHeight != 24 || cfg.TimeUnit != "us" {
		t.Errorf("LoadConfig() = %+v", cfg)
	}
	if cfg.DoubleClickWindow != 250*time.Millisecond {
		t.Errorf("DoubleClickWindow = %v, want 250ms", cfg.DoubleClickWindow)
	}
	if cfg.MinBlockSize != DefaultConfig().MinBlockSize {
		t.Errorf("unset field lost its default: MinBlockSize = %v", cfg.MinBlockSize)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig(empty) error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig(empty) = %+v, want defaults", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"unknown field", "bogus: 1\n", false},
		{"bad yaml", "node_height: [\n", false},
		{"negative stick", "stick_distance: -1\n", true},
		{"zero node height", "node_height: 0\n", true},
		{"bad color", "fallback_color: orange\n", true},
		{"slow wheel", "wheel_zoom_factor: 1\n", true},
		{"bad duration", "double_click_window: soon\n", false},
		{"nan stick", "stick_distance: .nan\n", true},
		{"nan wheel", "wheel_zoom_factor: .nan\n", true},
		{"infinite wheel", "wheel_zoom_factor: .inf\n", true},
		{"infinite node height", "node_height: .inf\n", true},
		{"nan label width", "min_label_width: .nan\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("LoadConfig() error = nil")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err = %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(path, []byte("min_label_width: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if cfg.MinLabelWidth != 50 {
		t.Errorf("MinLabelWidth = %v, want 50", cfg.MinLabelWidth)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfigFile(missing) = %v, want os.ErrNotExist", err)
	}
}

func TestValidateRejectsNaN(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"stick distance", func(c *Config) { c.StickDistance = math.NaN() }},
		{"wheel zoom factor", func(c *Config) { c.WheelZoomFactor = math.NaN() }},
		{"timeline height", func(c *Config) { c.TimelineHeight = math.NaN() }},
		{"grid density", func(c *Config) { c.GridDensity = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
