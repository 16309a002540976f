package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv     string
	LogLevel   string
	BufferSize int
}

// Load loads configuration from environment variables, with an optional
// .env file for local development.
func Load() (*Config, error) {

	// 1. Load .env file into the process environment.
	// A missing file is fine; any other error should surface.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// 2. Explicitly bind viper keys to env var names
	if err := viper.BindEnv("app.env", "CAESAR_ENV"); err != nil {
		return nil, fmt.Errorf("could not bind app.env: %w", err)
	}
	if err := viper.BindEnv("log.level", "CAESAR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("could not bind log.level: %w", err)
	}
	if err := viper.BindEnv("buffer.size", "CAESAR_BUFFER_SIZE"); err != nil {
		return nil, fmt.Errorf("could not bind buffer.size: %w", err)
	}

	// 3. Set defaults
	viper.SetDefault("app.env", "dev")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("buffer.size", 32*1024)

	// 4. Get values directly from viper
	cfg := Config{
		AppEnv:     viper.GetString("app.env"),
		LogLevel:   viper.GetString("log.level"),
		BufferSize: viper.GetInt("buffer.size"),
	}

	// 5. Validation
	if cfg.AppEnv != "dev" && cfg.AppEnv != "prod" {
		return nil, fmt.Errorf("CAESAR_ENV must be 'dev' or 'prod', but got %q", cfg.AppEnv)
	}
	if cfg.BufferSize <= 0 {
		return nil, fmt.Errorf("CAESAR_BUFFER_SIZE must be a positive integer, but got %d", cfg.BufferSize)
	}

	return &cfg, nil
}
