// Package config provides configuration loading and management.
package config

// Config represents the craftfile CLI configuration. Values come from
// the config file when present, overridden by CRAFTFILE_* environment
// variables, overridden by flags.
type Config struct {
	// Output is the default path rendered Containerfiles are written
	// to. Empty means stdout.
	// Env: CRAFTFILE_OUTPUT
	Output string `mapstructure:"output"`

	// Spec is the default build-spec file used when no path argument
	// is given.
	// Env: CRAFTFILE_SPEC, Default: "craftfile.yaml"
	Spec string `mapstructure:"spec"`

	// Verbose enables debug logging.
	// Env: CRAFTFILE_VERBOSE
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Spec: "craftfile.yaml",
	}
}

// WithDefaults fills unset fields with their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Spec == "" {
		out.Spec = "craftfile.yaml"
	}
	return &out
}
