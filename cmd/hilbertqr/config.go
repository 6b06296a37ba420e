package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/householder/matrix"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errInvalidConfig = errors.New("invalid configuration")

// Config is the CLI configuration. A YAML file provides defaults; flags set
// on the command line win.
type Config struct {
	Format         string      `yaml:"format"`
	TransposeQ     bool        `yaml:"transpose_q"`
	ConditionLimit float64     `yaml:"condition_limit"`
	Verify         bool        `yaml:"verify"`
	Log            LogConfig   `yaml:"log"`
	Sweep          SweepConfig `yaml:"sweep"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"` // json or console
}

// SweepConfig holds the sweep bounds and the optional chart path.
type SweepConfig struct {
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
	Plot string `yaml:"plot"`
}

// DefaultConfig returns the built-in defaults (sweep n = 2..20, text output).
func DefaultConfig() Config {
	return Config{
		Format:         formatText,
		ConditionLimit: matrix.DefaultConditionLimit,
		Log:            LogConfig{Level: "warn", Encoding: "console"},
		Sweep:          SweepConfig{From: 2, To: 20},
	}
}

// LoadConfig reads a YAML file into cfg, substituting ${VAR} references from
// the environment first. Fields absent from the file keep their current value.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	content := substituteEnvVars(string(data))
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

// Validate rejects values the commands cannot act on.
func (c Config) Validate() error {
	switch c.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: format %q (want text, json or yaml)", errInvalidConfig, c.Format)
	}
	if !(c.ConditionLimit >= 1) || c.ConditionLimit > 1e300 {
		return fmt.Errorf("%w: condition_limit %g must be >= 1", errInvalidConfig, c.ConditionLimit)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log encoding %q (want json or console)", errInvalidConfig, c.Log.Encoding)
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		content = content[:start] + os.Getenv(varName) + content[end+1:]
	}

	return content
}
