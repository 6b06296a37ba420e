// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/householder/hilbert"
)

const yamlIndent = 2

// WriteJSON writes Rows(results) as an indented JSON array.
func WriteJSON(w io.Writer, results []hilbert.Result) error {
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Rows(results)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// WriteYAML writes Rows(results) as a YAML sequence.
func WriteYAML(w io.Writer, results []hilbert.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(Rows(results)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}

	return nil
}
