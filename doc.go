// Package householder is a small numerical study of Householder QR on
// Hilbert matrices: decompose, solve H·x = 1, and watch the residuals grow
// as the matrices become ill-conditioned.
//
// What is inside?
//
//	A pure-Go pipeline built from immutable values:
//		• Dense matrices and vectors with error-returning kernels
//		• Householder reflectors and the QR decomposition
//		• A QR-based linear solver (R⁻¹·Q⁻¹·b or R⁻¹·Qᵀ·b)
//		• Hilbert matrix generation and an n = 2..20 sweep
//		• Residual metrics, text/JSON/YAML reports and a residual chart
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/       - Dense, Vector, kernels, Inverse/Cond (gonum LU), sentinel errors, options
//	householder/  - Sign, Reflector, Decompose/QR, Decomposition.Verify
//	linsolve/     - Solve, SolveDecomposition
//	hilbert/      - Generate, Solve, Sweep (zap logging)
//	residual/     - Decomposition (err1), Solution (err2)
//	report/       - WriteText, WriteJSON, WriteYAML, WritePlot
//	cmd/hilbertqr - cobra CLI: solve, sweep, version
//
// Quick start:
//
//	res, err := hilbert.Solve(5)
//	if err != nil {
//		// errors.Is(err, matrix.ErrSingular) for large orders
//	}
//	fmt.Println(res.X, res.DecompositionResidual, res.SolutionResidual)
package householder
