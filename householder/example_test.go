// SPDX-License-Identifier: MIT
package householder_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/householder/householder"
	"github.com/katalvlaran/householder/matrix"
)

func ExampleReflector() {
	v, _ := matrix.FromElements([]float64{3, 4})
	h, err := householder.Reflector(v)
	if err != nil {
		fmt.Println(err)
		return
	}
	hv, _ := matrix.MatVec(h, v)
	first, _ := hv.At(0)
	rest, _ := hv.At(1)
	fmt.Printf("%.3f %t\n", first, math.Abs(rest) < 1e-12)
	// Output:
	// -5.000 true
}

func ExampleDecompose() {
	a := matrix.MustFromRows([][]float64{{2, 1}, {0, 3}})
	d, err := householder.Decompose(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(d.Q)
	fmt.Print(d.R)
	// Output:
	// [-1, 0]
	// [0, 1]
	// [-2, -1]
	// [0, 3]
}
