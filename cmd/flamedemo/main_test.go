// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/flamegraph/tree"
)

func TestLoadForest(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"f.json": `[{"name":"main","start":0,"duration":10,"children":[{"name":"child","start":1,"duration":2}]}]`,
		"f.yaml": "- name: main\n  start: 0\n  duration: 10\n  children:\n    - name: child\n      start: 1\n      duration: 2\n",
	}
	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatal(err)
			}
			forest, err := loadForest(path)
			if err != nil {
				t.Fatalf("loadForest() error = %v", err)
			}
			if got := tree.Count(forest); got != 2 {
				t.Errorf("Count() = %d, want 2", got)
			}
			if forest[0].Children[0].Name != "child" {
				t.Errorf("child = %q", forest[0].Children[0].Name)
			}
		})
	}

	if _, err := loadForest(filepath.Join(dir, "f.txt")); err == nil {
		t.Error("loadForest(.txt) succeeded")
	}
}

func TestSyntheticForestIsValid(t *testing.T) {
	forest := syntheticForest(rand.New(rand.NewPCG(1, 2)))
	if err := tree.Validate(forest); err != nil {
		t.Fatal(err)
	}
	if n := tree.Count(forest); n < 100 {
		t.Errorf("Count() = %d, want a sizeable profile", n)
	}
}

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.svg"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name)
			p := params{output: out, width: 320, height: 160, zoom: 2, at: -1}
			if err := run(p); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			switch filepath.Ext(name) {
			case ".png":
				img, err := png.Decode(bytes.NewReader(data))
				if err != nil {
					t.Fatalf("png.Decode() error = %v", err)
				}
				if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 160 {
					t.Errorf("bounds = %v, want 320x160", b)
				}
			case ".svg":
				if !bytes.Contains(data, []byte("<svg")) {
					t.Errorf("output is not SVG: %.40q", data)
				}
			}
		})
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	p := params{output: filepath.Join(t.TempDir(), "out.bmp"), width: 10, height: 10, zoom: 1}
	if err := run(p); err == nil {
		t.Error("run() succeeded for .bmp output")
	}
}

func TestRunRejectsUnknownSurface(t *testing.T) {
	p := params{output: filepath.Join(t.TempDir(), "out.png"), width: 10, height: 10, zoom: 1, surface: "plotter"}
	if err := run(p); err == nil || !strings.Contains(err.Error(), "plotter") {
		t.Errorf("run() = %v, want unknown surface error", err)
	}
}
