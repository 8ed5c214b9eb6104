// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tree flattens a forest of nested time intervals into a leveled
// sequence suitable for clustering.
//
// The output of Flatten is ordered by (Level, Start). Clustering relies on
// this order: it groups nodes by level and expects ascending start times
// within a level.
//
//	flat := tree.Flatten(forest)
//	lo, hi := tree.Extent(flat)
package tree
