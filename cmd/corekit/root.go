// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for corekit.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"corekit/internal/config"
	"corekit/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// outputFormat overrides the configured output format (text or json)
	outputFormat string

	// logger is the CLI diagnostic logger. Library packages stay silent;
	// only the command layer logs.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "corekit",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "corekit",
		Short: "Typed building blocks for paths, numbers, and config",
		Long: TitleStyle.Render("corekit") + SubtitleStyle.Render(" - Typed building blocks for paths, numbers, and config") + `

corekit exposes the corekit library from the command line: decode
filesystem locations into their anchor/class shape, combine and
relativize them, glob-match them, and check numbers against refined
brands such as percent or port.

` + SubtitleStyle.Render("Examples:") + `
  corekit path inspect ./src/main.go     Decode a location
  corekit path join /src/ ../lib/u.ts    Join a directory with a relative location
  corekit path match '/src/**/*.go' ...  Glob-match locations
  corekit num percent 42.5               Check a value against a brand
  corekit config show                    Show current configuration
  corekit explain 1                      Explain an error by catalog id`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/corekit/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format: text or json (default from config)")

	// Add subcommands
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(numCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(explainCmd)
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
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			renderServiceError(os.Stderr, svcErr)
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// resolveOutputFormat returns the effective output format: the --format
// flag when set, otherwise the configured default.
func resolveOutputFormat() (config.OutputFormat, error) {
	if outputFormat != "" {
		f := config.OutputFormat(outputFormat)
		if valid, errs := f.IsValid(); !valid {
			return "", errs[0]
		}
		return f, nil
	}
	return config.Get().UI.OutputFormat, nil
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
