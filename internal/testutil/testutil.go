// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigEnvVars are the environment variables that take precedence over the config file.
var ConfigEnvVars = []string{"DB_PASSWORD", "DATABASE_DSN", "AUTH_SECRET", "VOCABREVIEW_TOKEN"}

// ClearConfigEnv empties every variable of ConfigEnvVars for the duration of the test.
func ClearConfigEnv(t *testing.T) {
	t.Helper()
	for _, env := range ConfigEnvVars {
		t.Setenv(env, "")
	}
}

// SetupTestConfig writes content to config.yml in tmpDir and clears ConfigEnvVars.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, content string) string {
	t.Helper()
	ClearConfigEnv(t)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

// SetupClientConfig creates a config file pointing the CLI at serverURL with token.
func SetupClientConfig(t *testing.T, tmpDir, serverURL, token string) string {
	t.Helper()
	return SetupTestConfig(t, tmpDir, fmt.Sprintf(`client:
  server_url: %s
  token: %s
`, serverURL, token))
}

// SetupBrokenConfig creates a config file with invalid YAML that causes Load() to fail.
func SetupBrokenConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return SetupTestConfig(t, tmpDir, "{{invalid yaml content")
}
