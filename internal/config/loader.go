package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"weather-export/internal/errors"
	"weather-export/internal/logging"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	envFile    string
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:  NewConfig(),
		envFile: DefaultEnvFile,
	}
}

// WithEnvFile sets the dotenv file to read. An empty name disables it.
func (l *Loader) WithEnvFile(name string) *Loader {
	l.envFile = name
	return l
}

// WithConfigFile sets the YAML file to read, overriding WX_CONFIG
func (l *Loader) WithConfigFile(name string) *Loader {
	l.configFile = name
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML file, if any
// 3. Override with environment variables (a .env file fills unset ones)
// 4. Override with command line flags (see LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides loads configuration and applies command line overrides.
// Validation runs once, after the overrides, so a flag can correct an
// invalid environment value.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if overrides != nil && overrides.ConfigFile != nil && *overrides.ConfigFile != "" {
		l.configFile = *overrides.ConfigFile
	}

	config, err := l.load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// load reads every source below the command line without validating
func (l *Loader) load() (*Config, error) {
	if err := l.loadEnvFile(); err != nil {
		return nil, err
	}

	configFile := l.configFile
	if configFile == "" {
		configFile = os.Getenv("WX_CONFIG")
	}
	if configFile != "" {
		if err := l.loadFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	ConfigFile *string

	StorePath  *string
	StoreTable *string
	ExportDir  *string

	Timeout *time.Duration
	Debug   *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StorePath != nil {
		config.Store.Path = *overrides.StorePath
	}
	if overrides.StoreTable != nil {
		config.Store.Table = *overrides.StoreTable
	}
	if overrides.ExportDir != nil {
		config.Export.Dir = *overrides.ExportDir
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Debug != nil {
		config.Application.Debug = *overrides.Debug
	}
}

func (l *Loader) loadEnvFile() error {
	if l.envFile == "" {
		return nil
	}
	if _, err := os.Stat(l.envFile); err != nil {
		logging.Debugf("no env file %s: %v", l.envFile, err)
		return nil
	}
	if err := godotenv.Load(l.envFile); err != nil {
		return errors.NewConfigError("env_file", fmt.Sprintf("cannot parse %s", l.envFile))
	}
	return nil
}

// fileConfig mirrors the YAML config file. Absent keys keep earlier values.
type fileConfig struct {
	StorePath  *string `yaml:"store_path"`
	StoreTable *string `yaml:"store_table"`
	ExportDir  *string `yaml:"export_dir"`
	AppTimeout *string `yaml:"app_timeout"`
	Debug      *bool   `yaml:"debug"`
}

func (l *Loader) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewConfigError("config_file", fmt.Sprintf("cannot read %s", path))
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.NewConfigError("config_file", fmt.Sprintf("cannot parse %s", path))
	}

	if fc.StorePath != nil {
		l.config.Store.Path = *fc.StorePath
	}
	if fc.StoreTable != nil {
		l.config.Store.Table = *fc.StoreTable
	}
	if fc.ExportDir != nil {
		l.config.Export.Dir = *fc.ExportDir
	}
	if fc.AppTimeout != nil {
		d, err := time.ParseDuration(*fc.AppTimeout)
		if err != nil {
			return errors.NewConfigError("application.timeout", "must be a duration such as 30s")
		}
		l.config.Application.Timeout = d
	}
	if fc.Debug != nil {
		l.config.Application.Debug = *fc.Debug
	}
	return nil
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
