// SPDX-License-Identifier: MIT

package hilbert

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/householder/householder"
	"github.com/katalvlaran/householder/linsolve"
	"github.com/katalvlaran/householder/matrix"
	"github.com/katalvlaran/householder/residual"
)

// Result is the outcome of solving H_n·x = 1 for one order n.
type Result struct {
	N int
	// X is the solution; empty when Err is set.
	X matrix.Vector
	// DecompositionResidual is the smallest absolute row sum of Q·R - H.
	DecompositionResidual float64
	// SolutionResidual is ‖H·x - 1‖₂; NaN when Err is set.
	SolutionResidual float64
	// Condition is the LU 1-norm condition estimate of H.
	Condition float64
	// Decomposition holds Q, R and the reflectors; nil only if decomposing failed.
	Decomposition *householder.Decomposition
	// Err is the error Solve returned, if any (matrix.ErrSingular for large n).
	Err error
}

// Solve builds H_n and b = (1, …, 1), decomposes H_n, solves for x and
// computes both residuals.
//
// Every failure is also recorded in Result.Err. On matrix.ErrSingular the
// Result still carries N, DecompositionResidual, Condition and Decomposition.
func Solve(n int, opts ...Option) (Result, error) {
	return solve(n, gatherOptions(opts...))
}

func solve(n int, o options) (Result, error) {
	res := Result{N: n, SolutionResidual: math.NaN()}
	fail := func(err error) (Result, error) {
		res.Err = err
		return res, err
	}

	a, err := Generate(n)
	if err != nil {
		return fail(err)
	}
	d, err := householder.Decompose(a)
	if err != nil {
		return fail(fmt.Errorf("%s(%d): %w", opSolve, n, err))
	}
	res.Decomposition = d

	if res.DecompositionResidual, err = residual.Decomposition(a, d.Q, d.R); err != nil {
		return fail(fmt.Errorf("%s(%d): %w", opSolve, n, err))
	}
	if res.Condition, err = matrix.Cond(a); err != nil {
		return fail(fmt.Errorf("%s(%d): %w", opSolve, n, err))
	}

	b := matrix.Ones(n)
	x, err := linsolve.SolveDecomposition(d, b, o.solve...)
	if err != nil {
		return fail(fmt.Errorf("%s(%d): %w", opSolve, n, err))
	}
	res.X = x
	if res.SolutionResidual, err = residual.Solution(a, x, b); err != nil {
		res.X = matrix.Vector{}
		res.SolutionResidual = math.NaN()
		return fail(fmt.Errorf("%s(%d): %w", opSolve, n, err))
	}

	return res, nil
}

// Sweep runs Solve for n = from..to (inclusive) and returns one Result per size.
//
// matrix.ErrSingular is an expected outcome for large n: it is recorded in
// Result.Err, logged at warn level, and the sweep continues. Any other error
// aborts the sweep and is returned with the results collected so far.
//
// Errors:
//   - ErrInvalidRange for from < 1 or to < from.
func Sweep(from, to int, opts ...Option) ([]Result, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("%s(%d, %d): %w", opSweep, from, to, ErrInvalidRange)
	}
	o := gatherOptions(opts...)
	log := o.logger.With(zap.Int("from", from), zap.Int("to", to))

	results := make([]Result, 0, to-from+1)
	for n := from; n <= to; n++ {
		res, err := solve(n, o)
		if err != nil && !errors.Is(err, matrix.ErrSingular) {
			log.Error("solve failed", zap.Int("n", n), zap.Error(err))
			return results, fmt.Errorf("%s: %w", opSweep, err)
		}
		results = append(results, res)

		if err != nil {
			log.Warn("singular system",
				zap.Int("n", n),
				zap.Float64("condition", res.Condition),
				zap.Float64("err1", res.DecompositionResidual),
				zap.Error(err),
			)
			continue
		}
		log.Debug("solved",
			zap.Int("n", n),
			zap.Float64("condition", res.Condition),
			zap.Float64("err1", res.DecompositionResidual),
			zap.Float64("err2", res.SolutionResidual),
		)
	}
	log.Info("sweep complete", zap.Int("sizes", len(results)))

	return results, nil
}
