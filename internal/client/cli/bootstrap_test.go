package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/calcms/internal/client/config"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

func TestBootstrap_SessionSurvivesRestart(t *testing.T) {
	stubTerminal(t, false, nil)
	captureOutput(t)

	b := &cliBackend{}
	srv := httptest.NewServer(b.router())
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := &config.Config{
		BaseURL:            srv.URL,
		DatabasePath:       filepath.Join(dir, "state", "calcms.db"),
		KeyFilePath:        filepath.Join(dir, "keys", "device.key"),
		RequestTimeout:     2 * time.Second,
		ClearTokenOnLogout: true,
	}
	ctx := context.Background()

	var first bytes.Buffer
	app, closeFn, err := Bootstrap(ctx, cfg, logging.NewNop(), strings.NewReader("login\nalice\ns3cret\nexit\n"), &first)
	require.NoError(t, err)
	app.Run(ctx)
	require.NoError(t, closeFn())
	assert.Contains(t, first.String(), "Signed in.")

	info, err := os.Stat(cfg.KeyFilePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	raw, err := os.ReadFile(cfg.DatabasePath)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "tok-123", "token must be sealed at rest")

	cfg.RestoreSession = true
	var second bytes.Buffer
	app, closeFn, err = Bootstrap(ctx, cfg, logging.NewNop(), strings.NewReader("overdue\nexit\n"), &second)
	require.NoError(t, err)
	app.Run(ctx)
	require.NoError(t, closeFn())

	assert.Contains(t, second.String(), "Signed in.")
	assert.Contains(t, second.String(), "Overdue: 2 of 2")
	require.NotEmpty(t, b.authHeaders)
	assert.Equal(t, "Bearer tok-123", b.authHeaders[len(b.authHeaders)-1])
}

func TestBootstrap_CorruptKeyFile(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "device.key")
	require.NoError(t, os.WriteFile(key, []byte("not hex"), 0o600))

	cfg := &config.Config{
		BaseURL:      "http://127.0.0.1:1",
		DatabasePath: filepath.Join(dir, "calcms.db"),
		KeyFilePath:  key,
	}

	_, _, err := Bootstrap(context.Background(), cfg, logging.NewNop(), strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device key")
}
