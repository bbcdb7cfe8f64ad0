package config

import (
	"fmt"
	"os"

	"github.com/funvibe/lyra/internal/checker"
	"github.com/funvibe/lyra/internal/diagnostics"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the project configuration file looked up by tooling.
const DefaultFileName = "lyra.yaml"

// Config is the project configuration consumed by the compile driver and
// the checker.
type Config struct {
	// Name is the project name. Required.
	Name        string            `yaml:"name"`
	Checker     CheckerConfig     `yaml:"checker"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

// CheckerConfig holds typechecker toggles.
type CheckerConfig struct {
	// UnusedBinderWarnings enables W001. Defaults to true when omitted.
	UnusedBinderWarnings *bool `yaml:"unused-binder-warnings"`
}

// DiagnosticsConfig holds output options.
type DiagnosticsConfig struct {
	// Color is one of "auto", "always", "never". Defaults to "auto".
	Color string `yaml:"color"`
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

func (c *Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("config: 'name' is required")
	}
	switch c.Diagnostics.Color {
	case "", string(diagnostics.ColorAuto), string(diagnostics.ColorAlways), string(diagnostics.ColorNever):
	default:
		return fmt.Errorf("config: invalid diagnostics.color %q (want auto, always or never)", c.Diagnostics.Color)
	}
	return nil
}

// WarnUnusedBinders resolves the toggle with its default.
func (c *Config) WarnUnusedBinders() bool {
	if c.Checker.UnusedBinderWarnings == nil {
		return true
	}
	return *c.Checker.UnusedBinderWarnings
}

// ColorMode resolves the color setting with its default.
func (c *Config) ColorMode() diagnostics.ColorMode {
	if c.Diagnostics.Color == "" {
		return diagnostics.ColorAuto
	}
	return diagnostics.ColorMode(c.Diagnostics.Color)
}

// CheckerOptions bridges the configuration to checker options.
func (c *Config) CheckerOptions() checker.Options {
	opts := checker.DefaultOptions()
	opts.WarnUnusedBinders = c.WarnUnusedBinders()
	return opts
}
