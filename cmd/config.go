package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort       = "8080"
	defaultLogLevel       = slog.LevelInfo
	defaultSwaggerEnabled = true
)

type Config struct {
	HTTPPort       string
	LogLevel       slog.Level
	SwaggerEnabled bool
}

// LoadConfig reads the process environment after merging the given .env files into it.
// Missing files are skipped; variables already present in the environment win.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	config := Config{
		HTTPPort:       defaultHTTPPort,
		LogLevel:       defaultLogLevel,
		SwaggerEnabled: defaultSwaggerEnabled,
	}

	if port := os.Getenv("HTTP_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return Config{}, fmt.Errorf("invalid HTTP_PORT %q: expecting a port number", port)
		}
		config.HTTPPort = port
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := config.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	if enabled := os.Getenv("SWAGGER_ENABLED"); enabled != "" {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SWAGGER_ENABLED %q: %w", enabled, err)
		}
		config.SwaggerEnabled = v
	}

	return config, nil
}
