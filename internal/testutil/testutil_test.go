package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/vocabreview/internal/config"
)

func TestSetupTestConfig(t *testing.T) {
	t.Setenv("AUTH_SECRET", "from-env")
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, "auth:\n  secret: from-file\n")

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)
	assert.Empty(t, os.Getenv("AUTH_SECRET"))

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Auth.Secret)
}

func TestSetupClientConfig(t *testing.T) {
	got := SetupClientConfig(t, t.TempDir(), "http://127.0.0.1:9999", "test-token")

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Client.ServerURL)
	assert.Equal(t, "test-token", cfg.Client.Token)
}

func TestSetupBrokenConfig(t *testing.T) {
	got := SetupBrokenConfig(t, t.TempDir())

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	_, err = loader.Load()
	assert.Error(t, err)
}
