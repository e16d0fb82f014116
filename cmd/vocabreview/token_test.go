package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/vocabreview/internal/auth"
)

func TestTokenCommand(t *testing.T) {
	t.Run("issues a token the server accepts", func(t *testing.T) {
		cfgPath := setupConfigFile(t, "auth:\n  secret: test-secret\n")

		out, err := executeCommand(t, "", "--config", cfgPath, "token", "--user-id", "42")
		require.NoError(t, err)

		verifier, err := auth.NewVerifier("test-secret")
		require.NoError(t, err)
		userID, err := verifier.Verify(strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("secret from environment", func(t *testing.T) {
		cfgPath := setupConfigFile(t, "server:\n  port: 8080\n")
		t.Setenv("AUTH_SECRET", "env-secret")

		out, err := executeCommand(t, "", "--config", cfgPath, "token", "--user-id", "7")
		require.NoError(t, err)

		verifier, err := auth.NewVerifier("env-secret")
		require.NoError(t, err)
		userID, err := verifier.Verify(strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("missing secret", func(t *testing.T) {
		cfgPath := setupConfigFile(t, "server:\n  port: 8080\n")

		_, err := executeCommand(t, "", "--config", cfgPath, "token", "--user-id", "42")
		assert.ErrorContains(t, err, "create token issuer")
	})

	t.Run("non-positive user id", func(t *testing.T) {
		cfgPath := setupConfigFile(t, "auth:\n  secret: test-secret\n")

		_, err := executeCommand(t, "", "--config", cfgPath, "token", "--user-id", "0")
		assert.ErrorContains(t, err, "--user-id must be a positive integer")
	})

	t.Run("user id is required", func(t *testing.T) {
		cfgPath := setupConfigFile(t, "auth:\n  secret: test-secret\n")

		_, err := executeCommand(t, "", "--config", cfgPath, "token")
		assert.ErrorContains(t, err, `required flag(s) "user-id" not set`)
	})
}
