package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for craftfile configuration.
const envPrefix = "CRAFTFILE"

// Loader handles loading and merging configuration from multiple
// sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("output", "CRAFTFILE_OUTPUT")
	_ = v.BindEnv("spec", "CRAFTFILE_SPEC")
	_ = v.BindEnv("verbose", "CRAFTFILE_VERBOSE")

	return &Loader{v: v}
}

// Load loads configuration from the given file path. An empty path
// means no config file; environment variables and defaults still
// apply. A missing file at an explicitly given path is an error, a
// missing default file is not.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}
