// Command hilbertqr runs the Householder QR solver on Hilbert matrices and
// reports the decomposition and solution residuals.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
