// SPDX-License-Identifier: MIT

package householder

import (
	"errors"
	"fmt"
)

// ErrDegenerateReflection is returned by Reflector when ‖u‖ is exactly zero,
// which only happens for the zero vector. Decompose recovers from it by using
// the identity for that step; it never surfaces from Decompose.
var ErrDegenerateReflection = errors.New("householder: degenerate reflection")

// householderErrorf wraps err with an operation tag, preserving it via %w.
func householderErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
