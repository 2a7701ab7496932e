package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"weather-export/internal/errors"
)

// Config holds all configuration options for the weather export tool
type Config struct {
	Store       StoreConfig
	Export      ExportConfig
	Application ApplicationConfig
}

// StoreConfig describes the read-only weather readings store
type StoreConfig struct {
	Path  string `env:"WX_STORE_PATH" yaml:"store_path"`
	Table string `env:"WX_STORE_TABLE" yaml:"store_table"`
}

// ExportConfig describes where CSV files are written
type ExportConfig struct {
	Dir            string `env:"WX_EXPORT_DIR" yaml:"export_dir"`
	DirPermissions uint32 `env:"WX_EXPORT_DIR_PERMISSIONS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"WX_APP_TIMEOUT" yaml:"app_timeout"`
	Debug   bool          `env:"WX_DEBUG" yaml:"debug"`
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NewConfig creates a new configuration with the collector's default layout
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	stationDir := filepath.Join(homeDir, "GitRepos", "RPi_Compact-Weather-Station")

	return &Config{
		Store: StoreConfig{
			Path:  filepath.Join(stationDir, "weather.db"),
			Table: "weather",
		},
		Export: ExportConfig{
			Dir:            filepath.Join(stationDir, "exports"),
			DirPermissions: 0755,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Debug:   false,
		},
	}
}

// GetStorePath returns the location of the store file
func (c *Config) GetStorePath() string {
	return c.Store.Path
}

// GetExportDir returns the destination directory for generated CSV files
func (c *Config) GetExportDir() string {
	return c.Export.Dir
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if path := os.Getenv("WX_STORE_PATH"); path != "" {
		c.Store.Path = path
	}
	if table := os.Getenv("WX_STORE_TABLE"); table != "" {
		c.Store.Table = table
	}

	if dir := os.Getenv("WX_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
	if perms := os.Getenv("WX_EXPORT_DIR_PERMISSIONS"); perms != "" {
		p, err := strconv.ParseUint(perms, 8, 32)
		if err != nil {
			return errors.NewConfigError("export.dir_permissions", "must be an octal file mode")
		}
		c.Export.DirPermissions = uint32(p)
	}

	if timeout := os.Getenv("WX_APP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return errors.NewConfigError("application.timeout", "must be a duration such as 30s")
		}
		c.Application.Timeout = d
	}
	if debug := os.Getenv("WX_DEBUG"); debug != "" {
		// any non-empty value other than an explicit false enables debug
		c.Application.Debug = ParseBoolWithFallback(debug, true)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return errors.NewConfigError("store.path", "store path cannot be empty")
	}
	if !tableNamePattern.MatchString(c.Store.Table) {
		return errors.NewConfigError("store.table", "store table must be a plain SQL identifier")
	}
	if c.Export.Dir == "" {
		return errors.NewConfigError("export.dir", "export directory cannot be empty")
	}
	if c.Export.DirPermissions == 0 || c.Export.DirPermissions > 0777 {
		return errors.NewConfigError("export.dir_permissions", "export directory permissions must be between 0001 and 0777")
	}
	if c.Application.Timeout <= 0 {
		return errors.NewConfigError("application.timeout", "application timeout must be positive")
	}
	return nil
}
