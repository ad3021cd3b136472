package config

import (
	"os"
)

// Config application configuration for the planner
type Config struct {
	Storage struct {
		DataDir     string // root directory for project data, default "data"
		ProjectsDir string // subdirectory holding project files
		IndexFile   string // path of the project index file
	}

	Export struct {
		OutputDir string // target directory for Excel exports
		Currency  string // display currency of the cost estimate
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load loads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Storage.DataDir = getEnv("PLANNER_DATA_DIR", "data")
	cfg.Storage.ProjectsDir = cfg.Storage.DataDir + "/projects"
	cfg.Storage.IndexFile = cfg.Storage.DataDir + "/projects_index.json"

	cfg.Export.OutputDir = getEnv("PLANNER_EXPORT_DIR", "export")
	cfg.Export.Currency = getEnv("PLANNER_CURRENCY", "EUR")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
