// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dockbridge/internal/config"
	"dockbridge/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables full error chains and debug logging
	verbose bool
	// engineFlag overrides the configured container engine for one invocation
	engineFlag string
	// timeoutFlag overrides the configured per-call timeout, in seconds
	timeoutFlag int

	// cfg is the loaded configuration, populated by initRootConfig.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "dockbridge",
		Short: "A thin command layer over Docker and Podman",
		Long: TitleStyle.Render("dockbridge") + SubtitleStyle.Render(" - A thin command layer over Docker and Podman") + `

dockbridge drives a locally installed container engine CLI (Docker or
Podman) through a small set of typed operations: launch, stop, list,
and diagnose. Engine failures are classified into a fixed set of kinds,
each with a remediation guide.

` + SubtitleStyle.Render("Examples:") + `
  dockbridge ps                              List running containers
  dockbridge launch nginx:alpine --name web -p 8080:80
  dockbridge stop web                        Stop and remove a container
  dockbridge status                          Engine availability at a glance
  dockbridge explain timeout                 Remediation guide for a failure kind`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&engineFlag, "engine", "", "container engine to use (docker, podman, or auto)")
	rootCmd.PersistentFlags().IntVar(&timeoutFlag, "timeout", 0, "per-call engine timeout in seconds (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(psCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sysinfoCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the config file and applies it to unset flags.
func initRootConfig() {
	loaded, _, err := config.Load()
	if err != nil {
		// Surface config loading errors but keep going on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
