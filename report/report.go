// SPDX-License-Identifier: MIT

// Package report renders sweep results: the classic fixed-point text layout,
// JSON, YAML and a residual chart.
package report

import (
	"math"

	"github.com/katalvlaran/householder/hilbert"
)

// Row is the serialized form of one hilbert.Result. Non-finite numbers are
// left nil so encoders omit them.
type Row struct {
	N                     int       `json:"n" yaml:"n"`
	X                     []float64 `json:"x,omitempty" yaml:"x,omitempty"`
	DecompositionResidual *float64  `json:"err1,omitempty" yaml:"err1,omitempty"`
	SolutionResidual      *float64  `json:"err2,omitempty" yaml:"err2,omitempty"`
	Condition             *float64  `json:"condition,omitempty" yaml:"condition,omitempty"`
	Error                 string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Rows converts results into their serialized form, preserving order.
func Rows(results []hilbert.Result) []Row {
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		row := Row{
			N:                     r.N,
			DecompositionResidual: finite(r.DecompositionResidual),
			SolutionResidual:      finite(r.SolutionResidual),
			Condition:             finite(r.Condition),
		}
		if r.X.Len() > 0 {
			row.X = finiteSlice(r.X.Elements())
		}
		if r.Err != nil {
			row.Error = r.Err.Error()
		}
		rows = append(rows, row)
	}

	return rows
}

// finite returns &v, or nil for NaN/±Inf.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

// finiteSlice returns xs, or nil if any entry is non-finite.
func finiteSlice(xs []float64) []float64 {
	for _, v := range xs {
		if finite(v) == nil {
			return nil
		}
	}

	return xs
}
