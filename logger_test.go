// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLoggerReachesChart(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c := New(400, 200)
	if err := c.SetData(sampleForest()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "flamegraph: data loaded") {
		t.Errorf("log output = %q, want data load record", buf.String())
	}
}
