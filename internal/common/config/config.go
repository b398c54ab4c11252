package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	LogLevel  string
	LogFormat string

	DefaultTheme   string
	ThemesFile     string
	ThemesDBPath   string
	MigrationsPath string
	EnvironmentURL string

	GenerationURL   string
	VisualizerURL   string
	UpstreamTimeout int
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		DefaultTheme:   getEnv("DEFAULT_THEME", "Modern"),
		ThemesFile:     getEnv("THEMES_FILE", ""),
		ThemesDBPath:   getEnv("THEMES_DB_PATH", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations/001_init_themes.sql"),
		EnvironmentURL: getEnv("ENVIRONMENT_URL", ""),

		GenerationURL:   getEnv("GENERATION_URL", "http://localhost:8000"),
		VisualizerURL:   getEnv("VISUALIZER_URL", "http://localhost:3001"),
		UpstreamTimeout: getEnvAsInt("UPSTREAM_TIMEOUT", 30),
	}
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
