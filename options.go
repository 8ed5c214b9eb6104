// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"github.com/gogpu/flamegraph/cluster"
	"github.com/gogpu/flamegraph/schedule"
	"github.com/gogpu/flamegraph/textmetrics"
)

// Option configures a Chart during creation.
//
// Example:
//
//	// Static rendering, no host
//	c := flamegraph.New(800, 600)
//
//	// Interactive, frames driven by a loop
//	loop := schedule.NewLoop(schedule.DefaultFrameInterval)
//	c := flamegraph.New(800, 600, flamegraph.WithHost(loop))
type Option func(*options)

type options struct {
	cfg      Config
	host     schedule.Host
	measurer textmetrics.Measurer
	eq       cluster.Equivalence
}

func defaultOptions() options {
	return options{cfg: DefaultConfig()}
}

// WithConfig sets the chart configuration. An invalid configuration is
// logged and replaced by DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithHost connects the chart to a frame and timer source. Without a host
// the chart only draws when Render is called.
func WithHost(h schedule.Host) Option {
	return func(o *options) {
		o.host = h
	}
}

// WithMeasurer sets the text measurer used to shorten labels. The default
// shapes with the embedded Go Regular font.
func WithMeasurer(m textmetrics.Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithEquivalence sets the rule that decides which neighbouring nodes may
// be merged into one cluster. The default groups equal type and color.
func WithEquivalence(eq cluster.Equivalence) Option {
	return func(o *options) {
		o.eq = eq
	}
}
