package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/vocabreview/internal/cli"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "vocabreview", cmd.Use)
	for _, name := range []string{"migrate", "enroll", "review", "due", "overview", "history", "token", "validate"} {
		sub, _, err := cmd.Find([]string{name})
		assert.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.Equal(t, "text", cmd.PersistentFlags().Lookup("output").DefValue)
}

func TestOutputValue(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "default", args: nil, want: "text"},
		{name: "json", args: []string{"--output", "json"}, want: "json"},
		{name: "yaml shorthand", args: []string{"-o", "yaml"}, want: "yaml"},
		{name: "unsupported", args: []string{"--output", "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := outputValue(cli.OutputText)
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.VarP(&value, "output", "o", "")

			err := flags.Parse(tt.args)
			if tt.wantErr {
				assert.ErrorContains(t, err, "must be one of text, json, yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, value.String())
			assert.Equal(t, "format", value.Type())
		})
	}
}

func TestNewMigrateCommand(t *testing.T) {
	cmd := newMigrateCommand()

	assert.Equal(t, "migrate", cmd.Use)
	assert.Equal(t, "Database schema commands", cmd.Short)
	assert.True(t, cmd.HasSubCommands())
	for _, name := range []string{"up", "down", "version"} {
		sub, _, err := cmd.Find([]string{name})
		assert.NoError(t, err, name)
		assert.NotNil(t, sub.RunE, name)
	}
}

func TestMigrateCommands_ConfigError(t *testing.T) {
	for _, sub := range []string{"up", "down", "version"} {
		t.Run(sub, func(t *testing.T) {
			cfgPath := setupBrokenConfigFile(t)
			_, err := executeCommand(t, "", "--config", cfgPath, "migrate", sub)
			assert.ErrorContains(t, err, "could not be read")
		})
	}
}
