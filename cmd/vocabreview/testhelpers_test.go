package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/at-ishikawa/vocabreview/internal/testutil"
)

// setupConfigFile writes a config file and clears the environment variables that override it.
func setupConfigFile(t *testing.T, content string) string {
	t.Helper()
	return testutil.SetupTestConfig(t, t.TempDir(), content)
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	return testutil.SetupBrokenConfig(t, t.TempDir())
}

// executeCommand runs the root command with args and returns what it printed.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	oldConfigFile, oldOutputFormat := configFile, outputFormat
	t.Cleanup(func() {
		configFile, outputFormat = oldConfigFile, oldOutputFormat
	})

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
