// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"cabledoc/internal/discovery"
	"cabledoc/pkg/channel"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [family]",
	Short: "List channels per OS family",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
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

	for _, family := range families {
		files, loadErr := disc.LoadAll(family)
		if loadErr != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(loadErr, verbose))
			return &ExitError{Code: 1, Err: loadErr}
		}

		fmt.Println(TitleStyle.Render(string(family)))
		if len(files) == 0 {
			fmt.Println(SubtitleStyle.Render("  (no channels)"))
			continue
		}
		for _, f := range files {
			if f.Error != nil {
				fmt.Printf("  %s %s\n",
					WarningStyle.Render("!"),
					SubtitleStyle.Render(f.Path+" (unparseable)"))
				continue
			}
			line := fmt.Sprintf("  %s", PathStyle.Render(f.Channel.Metadata.Name.String()))
			if len(f.Channel.Metadata.Requirements) > 0 {
				line += SubtitleStyle.Render(
					fmt.Sprintf("  requires: %s", strings.Join(f.Channel.Metadata.Requirements, ", ")))
			}
			fmt.Println(line)
		}
	}
	return nil
}
