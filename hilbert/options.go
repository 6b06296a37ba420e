// SPDX-License-Identifier: MIT

package hilbert

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/householder/linsolve"
)

// Option configures Solve and Sweep.
type Option func(*options)

type options struct {
	solve  []linsolve.Option
	logger *zap.Logger
}

// WithTransposeQ solves with Qᵀ in place of Q⁻¹ (see linsolve.WithTransposeQ).
func WithTransposeQ() Option {
	return func(o *options) { o.solve = append(o.solve, linsolve.WithTransposeQ()) }
}

// WithConditionLimit sets the singularity threshold used when inverting Q and R.
// Panics on limits matrix.WithConditionLimit rejects.
func WithConditionLimit(limit float64) Option {
	opt := linsolve.WithConditionLimit(limit)

	return func(o *options) { o.solve = append(o.solve, opt) }
}

// WithLogger sets the logger Sweep reports progress to. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
