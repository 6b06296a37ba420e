// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants, single source of truth for tolerances),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Tolerances used across the module (IEEE-754 double precision):
//   - DefaultEpsilon (1e-9): structural checks (IsUpperTriangular, IsLowerTriangular).
//   - DefaultConditionLimit (1e16): Inverse reports ErrSingular when the LU
//     condition estimate exceeds it. Matches gonum's mat.ConditionTolerance.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultConditionLimit is the largest condition estimate Inverse accepts.
	// Beyond it the inverse is numerically meaningless at double precision.
	DefaultConditionLimit = 1e16

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicConditionInvalid = "matrix: WithConditionLimit: limit must be finite and >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	conditionLimit float64 // >= 1; DefaultConditionLimit
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithConditionLimit sets the largest condition estimate Inverse accepts
// before reporting ErrSingular.
//
// Notes:
//   - The default matches gonum's mat.ConditionTolerance (1e16), roughly where
//     double precision keeps no correct digit. Lowering the limit makes
//     ill-conditioned inputs (large Hilbert orders) fail earlier.
//   - A limit below 1 is meaningless (cond(A) >= 1 for every A) and panics.
func WithConditionLimit(limit float64) Option {
	if isNonFinite(limit) || limit < 1 {
		panic(panicConditionInvalid)
	}

	return func(o *Options) { o.conditionLimit = limit }
}

// WithNoValidateNaNInf disables finite-value validation in FromRows/FromElements.
// Useful only in controlled experiments; kernels never sanitize their input.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		conditionLimit: DefaultConditionLimit,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over defaults in order; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
