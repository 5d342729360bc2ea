package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
	"github.com/vlabsio/dynamite-nsm/pkg/logging"
)

// Exit codes for CLI commands.
// These follow common conventions for scripting and automation.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, mutation could not be persisted).
	ExitCodeError = 1
	// ExitCodeUsage indicates the invocation itself was invalid (unknown action, bad flags).
	ExitCodeUsage = 2
)

var verboseLogging bool

// rootCmd represents the base command for the dynamite application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dynamite",
	Short: "Inspect and configure the Dynamite monitoring stack",
	Long: `dynamite maintains the configurations of the network monitoring
services it manages (Suricata, Zeek, Filebeat). Each service exposes its
analyzers and configuration manager as command-line interfaces derived
from the service's own manifest.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if verboseLogging {
			level = logging.LevelDebug
		}
		logging.Init(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "dynamite version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	var usage *cmdline.UsageError
	if errors.As(err, &usage) {
		return ExitCodeUsage
	}
	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseLogging, "verbose", false, "Include detailed debug messages")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSuricataCmd())
	rootCmd.AddCommand(newZeekCmd())
	rootCmd.AddCommand(newFilebeatCmd())
}
