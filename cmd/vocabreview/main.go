package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/vocabreview/internal/cli"
)

var (
	configFile   string
	outputFormat = outputValue(cli.OutputText)
)

// outputValue is a flag value restricted to the formats of cli.Printer.
type outputValue string

var _ pflag.Value = (*outputValue)(nil)

func (o *outputValue) String() string {
	return string(*o)
}

func (o *outputValue) Set(s string) error {
	switch s {
	case cli.OutputText, cli.OutputJSON, cli.OutputYAML:
		*o = outputValue(s)
		return nil
	default:
		return fmt.Errorf("must be one of %s, %s, %s", cli.OutputText, cli.OutputJSON, cli.OutputYAML)
	}
}

func (o *outputValue) Type() string {
	return "format"
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCommand := &cobra.Command{
		Use:           "vocabreview",
		Short:         "Review vocabulary with spaced repetition",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	outputFormat = outputValue(cli.OutputText)
	rootCommand.PersistentFlags().VarP(&outputFormat, "output", "o", "Output format: text, json or yaml")

	rootCommand.AddCommand(
		newMigrateCommand(),
		newEnrollCommand(),
		newReviewCommand(),
		newDueCommand(),
		newOverviewCommand(),
		newHistoryCommand(),
		newTokenCommand(),
		newValidateCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
