package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "./rigcheck.db", cfg.Database.Path)
	assert.Equal(t, "./data/cpus.json", cfg.Catalog.CPUPath)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "1080p", cfg.Predict.DefaultResolution)
	assert.Equal(t, "high", cfg.Predict.DefaultQuality)
	assert.Equal(t, 16, cfg.Predict.DefaultRAMGB)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  path: /tmp/custom.db
server:
  port: 9999
predict:
  default_quality: ultra
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Database.Path)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "ultra", cfg.Predict.DefaultQuality)
	// Untouched sections keep their defaults.
	assert.Equal(t, "1080p", cfg.Predict.DefaultResolution)
	assert.Equal(t, "./data/gpus.json", cfg.Catalog.GPUPath)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RIGCHECK_DB_PATH", "/var/lib/rigcheck/catalog.db")
	t.Setenv("RIGCHECK_DATA_DIR", "/opt/rigcheck/data")
	t.Setenv("RIGCHECK_PORT", "3000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/rigcheck/catalog.db", cfg.Database.Path)
	assert.Equal(t, filepath.Join("/opt/rigcheck/data", "cpus.json"), cfg.Catalog.CPUPath)
	assert.Equal(t, filepath.Join("/opt/rigcheck/data", "games.json"), cfg.Catalog.GamesPath)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestEnvOverrideBadPortIgnored(t *testing.T) {
	t.Setenv("RIGCHECK_PORT", "not-a-port")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
