// Package config loads the YAML configuration of the qasmc tool.
package config

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

const (
	defaultLogLevel  = "warn"
	defaultASTFormat = FormatText
	defaultJobs      = 4
)

// Output formats for the ast command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatQASM = "qasm"
)

// Config is the tool configuration. Missing fields take their defaults.
type Config struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Output      OutputConfig      `yaml:"output"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
	// The number of files checked concurrently.
	Jobs int `yaml:"jobs"`
}

type LoggingConfig struct {
	// One of debug, info, warn or error.
	Level string `yaml:"level"`
	// Human-readable console output instead of JSON lines.
	Development bool `yaml:"development"`
}

// WithDefaults returns a copy of the LoggingConfig with any missing fields
// set to their default values.
func (c LoggingConfig) WithDefaults() LoggingConfig {
	cpy := c
	if cpy.Level == "" {
		cpy.Level = defaultLogLevel
	}
	return cpy
}

type OutputConfig struct {
	// Tree rendering of the ast command: text, json or qasm.
	ASTFormat string `yaml:"astFormat"`
}

// WithDefaults returns a copy of the OutputConfig with any missing fields
// set to their default values.
func (c OutputConfig) WithDefaults() OutputConfig {
	cpy := c
	if cpy.ASTFormat == "" {
		cpy.ASTFormat = defaultASTFormat
	}
	return cpy
}

type DiagnosticsConfig struct {
	// Treat a non-empty diagnostic list as failure.
	Fatal bool `yaml:"fatal"`
	// The number of diagnostics reported per file; 0 means all.
	Max int `yaml:"max"`
}

// WithDefaults returns a copy of the Config with any missing fields set to
// their default values.
func (c Config) WithDefaults() Config {
	cpy := c
	cpy.Logging = cpy.Logging.WithDefaults()
	cpy.Output = cpy.Output.WithDefaults()
	if cpy.Jobs == 0 {
		cpy.Jobs = defaultJobs
	}
	return cpy
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := Config{}.WithDefaults()
	return &c
}

// Load reads the configuration file at path. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	c, err := Parse(data)
	return c, errors.Wrapf(err, "load config %s", path)
}

// Parse decodes a YAML document, applies defaults and validates the
// result. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := Config{}
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := c.Logging.level(); err != nil {
		return err
	}

	switch c.Output.ASTFormat {
	case FormatText, FormatJSON, FormatQASM:
	default:
		return errors.Errorf("invalid output.astFormat %q", c.Output.ASTFormat)
	}

	if c.Diagnostics.Max < 0 {
		return errors.Errorf("invalid diagnostics.max %d", c.Diagnostics.Max)
	}
	if c.Jobs < 1 {
		return errors.Errorf("invalid jobs %d", c.Jobs)
	}
	return nil
}

// level parses the configured level name.
func (c LoggingConfig) level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return lvl, errors.Errorf("invalid logging.level %q", c.Level)
	}
	return lvl, nil
}
