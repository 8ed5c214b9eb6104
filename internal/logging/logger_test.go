// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup() should return nopHandler")
	}
}

func TestSetGet(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Get().Debug("clusters", "count", 3)
	if !strings.Contains(buf.String(), "count=3") {
		t.Errorf("log output %q missing count=3", buf.String())
	}

	Set(nil)
	if Get() == nil {
		t.Fatal("Get() returned nil after Set(nil)")
	}
	if Get().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Set(nil) should restore the silent logger")
	}
}
