// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a generic LRU cache with hit and miss statistics.
//
// It backs label measurement: the same cluster names are measured on every
// frame while the user pans, and a shaping call is far more expensive than a
// map lookup.
package cache
