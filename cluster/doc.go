// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cluster groups flattened intervals into drawable clusters.
//
// Clustering runs in two stages:
//
//   - MetaClusterize partitions the flat sequence into runs of same-level,
//     same-category neighbours. It runs once per data load.
//   - Clusterize merges nodes inside each run that would be narrower than
//     MinBlockSize pixels and closer than StickDistance pixels at the current
//     zoom. This bounds the number of drawn primitives by the screen width
//     rather than by the data size.
//
// Reclusterize is the cheap per-frame step: it filters existing clusters to
// the visible window and only re-scans clusters narrower than
// Params.MinClusterSize.
package cluster
