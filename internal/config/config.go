package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Server   ServerConfig   `yaml:"server"`
	Predict  PredictConfig  `yaml:"predict"`
}

// DatabaseConfig configures SQLite storage for the game catalog.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// CatalogConfig points at the build-time JSON data files.
type CatalogConfig struct {
	CPUPath   string `yaml:"cpu_path"`
	GPUPath   string `yaml:"gpu_path"`
	GamesPath string `yaml:"games_path"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// PredictConfig holds default prediction parameters used when a caller
// leaves them unset. The model's calibration constants are code, not config.
type PredictConfig struct {
	DefaultResolution string `yaml:"default_resolution"`
	DefaultQuality    string `yaml:"default_quality"`
	DefaultRAMGB      int    `yaml:"default_ram_gb"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "./rigcheck.db"},
		Catalog: CatalogConfig{
			CPUPath:   "./data/cpus.json",
			GPUPath:   "./data/gpus.json",
			GamesPath: "./data/games.json",
		},
		Server: ServerConfig{Port: 8080},
		Predict: PredictConfig{
			DefaultResolution: "1080p",
			DefaultQuality:    "high",
			DefaultRAMGB:      16,
		},
	}
}

// Load reads configuration from a YAML file and applies env var overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides overrides config values with environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RIGCHECK_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("RIGCHECK_DATA_DIR"); v != "" {
		cfg.Catalog.CPUPath = filepath.Join(v, "cpus.json")
		cfg.Catalog.GPUPath = filepath.Join(v, "gpus.json")
		cfg.Catalog.GamesPath = filepath.Join(v, "games.json")
	}
	if v := os.Getenv("RIGCHECK_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}
