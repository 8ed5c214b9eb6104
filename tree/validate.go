// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the tree package.
var (
	// ErrNegativeDuration is returned when an interval has Duration < 0.
	ErrNegativeDuration = errors.New("tree: negative duration")

	// ErrNonFinite is returned when Start or Duration is NaN or infinite.
	ErrNonFinite = errors.New("tree: non-finite start or duration")

	// ErrNilInterval is returned for nil entries in the forest.
	ErrNilInterval = errors.New("tree: nil interval")
)

// ValidationError reports the first malformed interval found in a forest.
// Path holds child indices from the root slice down to the offending node.
type ValidationError struct {
	Path []int
	Name string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tree: invalid interval %q at %v: %v", e.Name, e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks every interval in the forest and returns a
// *ValidationError for the first malformed one, or nil.
func Validate(forest []*Interval) error {
	return validate(forest, nil)
}

func validate(forest []*Interval, path []int) error {
	for i, iv := range forest {
		p := append(path[:len(path):len(path)], i)
		if iv == nil {
			return &ValidationError{Path: p, Err: ErrNilInterval}
		}
		if !isFinite(iv.Start) || !isFinite(iv.Duration) {
			return &ValidationError{Path: p, Name: iv.Name, Err: ErrNonFinite}
		}
		if iv.Duration < 0 {
			return &ValidationError{Path: p, Name: iv.Name, Err: ErrNegativeDuration}
		}
		if err := validate(iv.Children, p); err != nil {
			return err
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
