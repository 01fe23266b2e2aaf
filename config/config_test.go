package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, 1860, cfg.Web.Port)
	assert.Equal(t, 90, cfg.Import.LogRetentionDays)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stockbridge.yml")
	data := []byte("web:\n  port: 9090\ndatabase:\n  name: testdb\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("STOCKBRIDGE_DB_HOST", "db.internal")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "testdb", cfg.Database.Name)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	// untouched sections keep defaults
	assert.Equal(t, "Africa/Lagos", cfg.System.Location)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/no/such/file.yml")
	assert.Error(t, err)
}
