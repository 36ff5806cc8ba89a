package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"sorting/cmd"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "HTTP_PORT", "LOG_LEVEL", "SWAGGER_ENABLED")

	config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
	assert.True(t, config.SwaggerEnabled)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SWAGGER_ENABLED", "false")

	config, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
	assert.False(t, config.SwaggerEnabled)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	unsetEnv(t, "HTTP_PORT", "LOG_LEVEL", "SWAGGER_ENABLED")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, godotenv.Write(map[string]string{
		"HTTP_PORT": "8181",
		"LOG_LEVEL": "warn",
	}, file))
	t.Cleanup(func() {
		_ = os.Unsetenv("HTTP_PORT")
		_ = os.Unsetenv("LOG_LEVEL")
	})

	config, err := cmd.LoadConfig(file)

	require.NoError(t, err)
	assert.Equal(t, "8181", config.HTTPPort)
	assert.Equal(t, slog.LevelWarn, config.LogLevel)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric port", "HTTP_PORT", "http"},
		{"port out of range", "HTTP_PORT", "70000"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"non boolean swagger flag", "SWAGGER_ENABLED", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, "HTTP_PORT", "LOG_LEVEL", "SWAGGER_ENABLED")
			t.Setenv(tt.key, tt.value)

			_, err := cmd.LoadConfig()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
