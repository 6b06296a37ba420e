// SPDX-License-Identifier: MIT

package linsolve

import "github.com/katalvlaran/householder/matrix"

// Option configures Solve and SolveDecomposition.
type Option func(*options)

type options struct {
	transposeQ bool
	inverse    []matrix.Option // forwarded to matrix.Inverse
}

// WithTransposeQ uses Qᵀ in place of Q⁻¹. Q is orthogonal, so both agree
// within round-off; the transpose skips one inversion.
func WithTransposeQ() Option {
	return func(o *options) { o.transposeQ = true }
}

// WithConditionLimit forwards the singularity threshold to matrix.Inverse.
// Panics on limits matrix.WithConditionLimit rejects.
func WithConditionLimit(limit float64) Option {
	opt := matrix.WithConditionLimit(limit)

	return func(o *options) { o.inverse = append(o.inverse, opt) }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
