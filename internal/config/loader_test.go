package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-export/internal/errors"
)

// unsetEnv removes key for the duration of the test so a .env file may set it
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().WithEnvFile("").Load()
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoader_Load_MissingEnvFileIgnored(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().WithEnvFile(filepath.Join(t.TempDir(), ".env")).Load()
	require.NoError(t, err)
	assert.Equal(t, "weather", cfg.Store.Table)
}

func TestLoader_Load_EnvFile(t *testing.T) {
	clearEnv(t)
	unsetEnv(t, "WX_STORE_PATH")
	unsetEnv(t, "WX_APP_TIMEOUT")
	t.Setenv("WX_STORE_TABLE", "from_env")

	envFile := writeFile(t, ".env",
		"WX_STORE_PATH=/from/dotenv/weather.db\nWX_APP_TIMEOUT=45s\nWX_STORE_TABLE=from_dotenv\n")

	cfg, err := NewLoader().WithEnvFile(envFile).Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/dotenv/weather.db", cfg.Store.Path)
	assert.Equal(t, 45*time.Second, cfg.Application.Timeout)
	// a variable already set in the environment wins over the .env file
	assert.Equal(t, "from_env", cfg.Store.Table)
}

func TestLoader_Load_ConfigFile(t *testing.T) {
	clearEnv(t)
	configFile := writeFile(t, "wxexport.yaml", `
store_path: /yaml/weather.db
store_table: readings
export_dir: /yaml/exports
app_timeout: 2m
debug: true
`)

	cfg, err := NewLoader().WithEnvFile("").WithConfigFile(configFile).Load()
	require.NoError(t, err)

	assert.Equal(t, "/yaml/weather.db", cfg.Store.Path)
	assert.Equal(t, "readings", cfg.Store.Table)
	assert.Equal(t, "/yaml/exports", cfg.Export.Dir)
	assert.Equal(t, 2*time.Minute, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Debug)
}

func TestLoader_Load_ConfigFileFromEnvironment(t *testing.T) {
	clearEnv(t)
	configFile := writeFile(t, "wxexport.yaml", "store_table: via_wx_config\n")
	t.Setenv("WX_CONFIG", configFile)

	cfg, err := NewLoader().WithEnvFile("").Load()
	require.NoError(t, err)
	assert.Equal(t, "via_wx_config", cfg.Store.Table)
}

func TestLoader_Load_EnvironmentOverridesConfigFile(t *testing.T) {
	clearEnv(t)
	configFile := writeFile(t, "wxexport.yaml", "store_path: /yaml/weather.db\nexport_dir: /yaml/exports\n")
	t.Setenv("WX_STORE_PATH", "/env/weather.db")

	cfg, err := NewLoader().WithEnvFile("").WithConfigFile(configFile).Load()
	require.NoError(t, err)

	assert.Equal(t, "/env/weather.db", cfg.Store.Path)
	assert.Equal(t, "/yaml/exports", cfg.Export.Dir)
}

func TestLoader_Load_ConfigFileErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") }},
		{"malformed yaml", func(t *testing.T) string { return writeFile(t, "bad.yaml", "store_path: [unterminated\n") }},
		{"bad timeout", func(t *testing.T) string { return writeFile(t, "bad.yaml", "app_timeout: soon\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			_, err := NewLoader().WithEnvFile("").WithConfigFile(tt.path(t)).Load()
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfig))
		})
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WX_STORE_PATH", "/env/weather.db")
	t.Setenv("WX_APP_TIMEOUT", "10s")

	storePath := "/flag/weather.db"
	table := "flag_table"
	timeout := 3 * time.Second
	debug := true

	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{
		StorePath:  &storePath,
		StoreTable: &table,
		Timeout:    &timeout,
		Debug:      &debug,
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/weather.db", cfg.Store.Path)
	assert.Equal(t, "flag_table", cfg.Store.Table)
	assert.Equal(t, 3*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Debug)
}

func TestLoader_LoadWithOverrides_ConfigFileFlag(t *testing.T) {
	clearEnv(t)
	configFile := writeFile(t, "wxexport.yaml", "export_dir: /yaml/exports\n")

	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{ConfigFile: &configFile})
	require.NoError(t, err)
	assert.Equal(t, "/yaml/exports", cfg.Export.Dir)
}

func TestLoader_LoadWithOverrides_Invalid(t *testing.T) {
	clearEnv(t)
	timeout := time.Duration(0)

	_, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{Timeout: &timeout})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfig))
}

func TestLoader_LoadWithOverrides_Nil(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(nil)
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoader_LoadWithOverrides_FlagCorrectsInvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WX_APP_TIMEOUT", "0s")
	t.Setenv("WX_STORE_TABLE", "bad table")

	timeout := 30 * time.Second
	table := "weather"

	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{
		Timeout:    &timeout,
		StoreTable: &table,
	})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
	assert.Equal(t, "weather", cfg.Store.Table)
}

func TestLoader_Load_InvalidEnvironmentWithoutOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("WX_APP_TIMEOUT", "0s")

	_, err := NewLoader().WithEnvFile("").Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfig))
}
