// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"cabledoc/internal/discovery"
	"cabledoc/pkg/channel"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [family]",
	Short: "Validate every channel definition",
	Long: `Parse every TOML channel definition and report per-file results.

Unlike generate, validation does not stop at the first malformed file:
every definition is checked and reported. The command exits non-zero if
any definition fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	families := channel.Families()
	if len(args) == 1 {
		family, parseErr := channel.ParseOSFamily(args[0])
		if parseErr != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+parseErr.Error())
			return &ExitError{Code: 2, Err: parseErr}
		}
		families = []channel.OSFamily{family}
	}

	disc := discovery.New(cfg.CableDir)

	var failures int
	for _, family := range families {
		files, loadErr := disc.LoadAll(family)
		if loadErr != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(loadErr, verbose))
			return &ExitError{Code: 1, Err: loadErr}
		}

		fmt.Println(TitleStyle.Render(fmt.Sprintf("%s (%d definitions)", family, len(files))))
		for _, f := range files {
			if f.Error != nil {
				failures++
				fmt.Printf("  %s %s: %s\n",
					ErrorStyle.Render("✗"),
					PathStyle.Render(f.Path),
					f.Error.Error())
				continue
			}
			fmt.Printf("  %s %s\n",
				SuccessStyle.Render("✓"),
				PathStyle.Render(f.Path))
		}
	}

	if failures > 0 {
		msg := fmt.Sprintf("%d definition(s) failed validation", failures)
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(msg))
		return &ExitError{Code: 1, Err: fmt.Errorf("%s", msg)}
	}
	return nil
}
