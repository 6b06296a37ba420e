// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/householder/hilbert"
)

const (
	entryIntPad  = "     " // after an integral entry
	entryFracFmt = "%.3f " // non-integral entry, trailing space
)

// WriteText writes results in the fixed layout:
//
//	N = <n>
//	<one line per solution entry>
//	err1 = <decomposition residual>
//	err2 = <solution residual>
//	<blank line>
//
// A failed size prints "singular: <error>" in place of the solution lines.
func WriteText(w io.Writer, results []hilbert.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(bw, "N = %d\n", r.N)
		if r.Err != nil {
			fmt.Fprintf(bw, "singular: %v\n", r.Err)
		} else {
			for _, v := range r.X.Elements() {
				bw.WriteString(FormatEntry(v))
				bw.WriteByte('\n')
			}
		}
		fmt.Fprintf(bw, "err1 = %v\n", r.DecompositionResidual)
		fmt.Fprintf(bw, "err2 = %v\n", r.SolutionResidual)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// FormatEntry renders one solution entry:
//   - a leading space when the truncated integer part is >= 0;
//   - the integer followed by five spaces when v rounded to three decimals
//     equals its truncated integer part;
//   - otherwise "%.3f " (with a trailing space).
func FormatEntry(v float64) string {
	var b strings.Builder
	t := math.Trunc(v)
	if t >= 0 { // -0 included
		b.WriteByte(' ')
	}

	frac := fmt.Sprintf(entryFracFmt, v)
	rounded, err := strconv.ParseFloat(strings.TrimSpace(frac), 64)
	if err == nil && rounded == t {
		b.WriteString(formatInt(t))
		b.WriteString(entryIntPad)
		return b.String()
	}
	b.WriteString(frac)

	return b.String()
}

// formatInt prints an integral float without a sign on zero.
func formatInt(t float64) string {
	if t == 0 {
		return "0"
	}
	if math.Abs(t) < 1<<62 {
		return strconv.FormatInt(int64(t), 10)
	}

	return strconv.FormatFloat(t, 'f', 0, 64)
}
