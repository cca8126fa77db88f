// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"cabledoc/internal/config"
	"cabledoc/internal/issue"

	"github.com/spf13/cobra"
)

var (
	configInitForce bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage cabledoc configuration",
		Long: `Manage cabledoc configuration.

Configuration is stored in:
  - Linux: ~/.config/cabledoc/config.toml
  - macOS: ~/Library/Application Support/cabledoc/config.toml
  - Windows: %APPDATA%\cabledoc\config.toml

A project-local .cabledoc.toml in the working directory takes
precedence over the user configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initUserConfig(configInitForce)
		},
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	}
)

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing configuration file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func showConfig() error {
	cfg, path, err := config.LoadWithPath()
	if err != nil {
		rendered, renderErr := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		if renderErr == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if path != "" {
		fmt.Printf("%s: %s\n", PathStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", PathStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Print(config.GenerateTOML(cfg))
	return nil
}

func initUserConfig(force bool) error {
	path, err := config.CreateDefaultConfig(force)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}
	fmt.Printf("%s Created configuration file at %s\n",
		SuccessStyle.Render("✓"),
		PathStyle.Render(path))
	return nil
}

func showConfigPath() error {
	path, err := config.DefaultConfigPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}
	fmt.Println(path)
	return nil
}
