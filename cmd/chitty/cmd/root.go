// Package cmd provides the CLI commands for chitty.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cerr "github.com/chittyos/chitty-cli/internal/errors"
	"github.com/chittyos/chitty-cli/internal/logging"
	"github.com/chittyos/chitty-cli/pkg/version"
)

// Debug logging flag
var (
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the chitty CLI.
func NewRootCmd() *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "chitty [name]",
		Short: "Scaffold ChittyOS projects",
		Long: `chitty creates new ChittyOS projects: it detects your package manager,
asks a few questions, and scaffolds a working app with the ChittyOS suite
wired in.

Run 'chitty new' for the interactive installer, or pass a project name
directly: 'chitty my-chittyapp'.`,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			opts.name = args[0]
			return runNew(cmd, opts)
		},
	}

	cmd.SetVersionTemplate("chitty version {{.Version}}\n")

	// Debug logging flag
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.chitty/logs/")

	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRunE = stopLogging

	cmd.AddCommand(newNewCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newRegisterCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startLogging enables debug file logging when --debug is set.
func startLogging(_ *cobra.Command, _ []string) error {
	if !debugMode {
		return nil
	}

	logger, cleanup, err := logging.Setup(logging.DebugConfig())
	if err != nil {
		return fmt.Errorf("failed to setup debug logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	slog.Info("Debug logging enabled",
		slog.String("log_file", logging.DefaultLogPath()),
		slog.String("version", version.Version))
	return nil
}

// stopLogging closes the debug log file.
func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// Execute runs the root command and prints any actionable hint attached
// to the failure.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		var ce *cerr.ChittyError
		if errors.As(err, &ce) && ce.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", ce.Suggestion)
		}
	}
	return err
}
