// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package export writes chart recordings as SVG.
//
// Importing the package registers an "svg" backend with package recording:
//
//	import _ "github.com/gogpu/flamegraph/export"
//
//	b, _ := recording.NewBackend("svg")
//
// WriteSVG is the one-call form.
package export
