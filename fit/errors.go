// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSamples is returned for mismatched sample lengths or too few points
	// for the requested model.
	ErrBadSamples = errors.New("fit: bad samples")

	// ErrBadDegree is returned for a negative polynomial degree.
	ErrBadDegree = errors.New("fit: degree must be >= 0")
)

// fitErrorf wraps err with the fitting routine name.
func fitErrorf(tag string, err error) error {
	return fmt.Errorf("fit.%s: %w", tag, err)
}
