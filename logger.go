// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"log/slog"

	"github.com/gogpu/flamegraph/internal/logging"
)

// SetLogger configures the logger for flamegraph and all its sub-packages.
// By default flamegraph produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used by flamegraph:
//   - [slog.LevelDebug]: per-frame diagnostics (cluster counts, refused zoom)
//   - [slog.LevelInfo]: data loads and configuration
//   - [slog.LevelWarn]: rejected input
//
// Example:
//
//	flamegraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger. It never returns nil.
func Logger() *slog.Logger {
	return logging.Get()
}
