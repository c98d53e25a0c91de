package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LINODE_API_KEY", "")
	t.Setenv("LINODE_API_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, "", cfg.Server)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("LINODE_API_KEY", "")
	t.Setenv("LINODE_API_URL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api-key: filekey
server: https://api.example.com/
timeout: 10s
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "filekey", cfg.APIKey)
	assert.Equal(t, "https://api.example.com/", cfg.Server)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api-key: filekey\n"), 0600))

	t.Setenv("LINODE_API_KEY", "envkey")
	t.Setenv("LINODE_API_URL", "https://override.example.com/")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "envkey", cfg.APIKey)
	assert.Equal(t, "https://override.example.com/", cfg.Server)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("LINODE_API_KEY", "")
	t.Setenv("LINODE_API_URL", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &Config{
		APIKey:  "roundtrip",
		Server:  "https://api.example.com/",
		Timeout: 45 * time.Second,
		Debug:   true,
	}
	require.NoError(t, Save(in, path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
