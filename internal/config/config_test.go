package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LAYOFFS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.Equal(t, "reports/cleaned_layoffs.csv", cfg.Paths.DatasetFile)
	assert.Equal(t, "reports/summary_insights.csv", cfg.Paths.SummaryFile)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Security.RateLimit.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LAYOFFS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("LAYOFFS_SERVER_PORT", "9090")
	t.Setenv("LAYOFFS_PATHS_DATASET_FILE", "data/other.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "data/other.csv", cfg.Paths.DatasetFile)
}

func TestLoadFileOverridesEnvironment(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: 7000\n"), 0o644))

	t.Setenv("LAYOFFS_CONFIG", configPath)
	t.Setenv("LAYOFFS_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("LAYOFFS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("LAYOFFS_SERVER_PORT", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}

func TestValidateInputFiles(t *testing.T) {
	dir := t.TempDir()
	datasetPath := filepath.Join(dir, "cleaned_layoffs.csv")
	summaryPath := filepath.Join(dir, "summary_insights.csv")

	cfg := &Config{}
	cfg.Paths.DatasetFile = datasetPath
	cfg.Paths.SummaryFile = summaryPath

	require.Error(t, cfg.ValidateInputFiles(), "both files missing")

	require.NoError(t, os.WriteFile(datasetPath, []byte("company,year\n"), 0o644))
	require.Error(t, cfg.ValidateInputFiles(), "summary still missing")

	require.NoError(t, os.WriteFile(summaryPath, []byte("Total_Layoffs\n"), 0o644))
	assert.NoError(t, cfg.ValidateInputFiles())
}
