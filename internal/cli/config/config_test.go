package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	t.Setenv(envConfigPath, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{Server: DefaultServer, Output: DefaultOutput}, cfg, "defaults without a file")

	cfg.Server = "http://radar.internal:9000"
	cfg.Output = "yaml"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
