// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for cabledoc.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cabledoc/internal/config"
	"cabledoc/internal/discovery"
	"cabledoc/internal/docgen"
	"cabledoc/internal/issue"
	"cabledoc/pkg/channel"

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

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cabledoc",
		Short: "Generate Markdown reference docs for community cable channels",
		Long: TitleStyle.Render("cabledoc") + SubtitleStyle.Render(" - Community channel documentation generator") + `

cabledoc turns TOML channel definitions under the cable directory into
one Markdown reference page per OS family (unix, windows). Each page
lists every channel with its description, requirements, preview image
and an embedded copy of the definition.

` + SubtitleStyle.Render("Examples:") + `
  cabledoc generate         Regenerate the docs for both OS families
  cabledoc validate         Check every channel definition
  cabledoc list             List channels per OS family
  cabledoc preview unix     Render the unix page in the terminal
  cabledoc watch            Regenerate on every definition change`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation regenerates everything.
			return runGenerate(cmd, args)
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cabledoc/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
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

// initRootConfig applies the --config flag before any command loads
// configuration.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
}

// loadConfig loads the effective configuration and folds the config-level
// verbose setting into the --verbose flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	return cfg, nil
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueIdFor maps an error chain to its remediation catalog entry. The
// second return is false when no entry covers the error.
func issueIdFor(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, channel.ErrMissingField) || errors.Is(err, channel.ErrWrongFieldType):
		return issue.ChannelParseErrorId, true
	case errors.Is(err, discovery.ErrNotADirectory):
		return issue.CableDirInvalidId, true
	case errors.Is(err, docgen.ErrWriteDocs):
		return issue.DocsWriteFailedId, true
	}
	return 0, false
}

// printIssueFor renders the remediation catalog entry matching err, if any,
// after the error line itself has been printed.
func printIssueFor(err error) {
	id, ok := issueIdFor(err)
	if !ok {
		return
	}
	if rendered, renderErr := issue.Get(id).Render("dark"); renderErr == nil {
		fmt.Fprint(os.Stderr, rendered)
	}
}
