package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://app.acecms.in", c.BaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "calcms.db", filepath.Base(c.DatabasePath))
	assert.Equal(t, "device.key", filepath.Base(c.KeyFilePath))
	assert.Equal(t, filepath.Dir(c.DatabasePath), filepath.Dir(c.KeyFilePath))
	assert.False(t, c.RestoreSession)
	assert.True(t, c.ClearTokenOnLogout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"calcms"}
	t.Chdir(t.TempDir())

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://app.acecms.in", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"base_url":        "http://json.example",
		"db_path":         "/json/calcms.db",
		"request_timeout": "5s",
	})
	t.Setenv("CALCMS_DB_PATH", "/env/calcms.db")
	t.Setenv("CALCMS_REQUEST_TIMEOUT", "7s")
	t.Chdir(dir)

	os.Args = []string{"calcms", "-c", path, "-t", "9"}
	cfg := LoadConfig()

	assert.Equal(t, "http://json.example", cfg.BaseURL)
	assert.Equal(t, "/env/calcms.db", cfg.DatabasePath)
	assert.Equal(t, 9*time.Second, cfg.RequestTimeout)
}
