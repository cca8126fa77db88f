// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"cabledoc/internal/docgen"
	"cabledoc/internal/logging"
	"cabledoc/pkg/channel"

	"github.com/spf13/cobra"
)

var (
	generateCheck bool

	generateCmd = &cobra.Command{
		Use:   "generate [family]",
		Short: "Generate the channel reference documents",
		Long: `Generate one Markdown reference document per OS family from the
TOML channel definitions under the cable directory.

Without arguments both families (unix, windows) are generated. Pass a
family name to regenerate a single document.

With --check nothing is written: the command exits non-zero if the
documents on disk differ from what generation would produce. Useful as
a CI guard against stale docs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}
)

func init() {
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "verify docs are up to date without writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	logger := logging.New(os.Stderr, verbose)
	gen := docgen.New(cfg)

	if generateCheck {
		return runGenerateCheck(gen, args)
	}

	var results []*docgen.Result
	if len(args) == 1 {
		family, parseErr := channel.ParseOSFamily(args[0])
		if parseErr != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+parseErr.Error())
			return &ExitError{Code: 2, Err: parseErr}
		}
		res, genErr := gen.GenerateFamily(family)
		if genErr != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(genErr, verbose))
			printIssueFor(genErr)
			return &ExitError{Code: 1, Err: genErr}
		}
		results = append(results, res)
	} else {
		var genErr error
		results, genErr = gen.GenerateAll()
		for _, res := range results {
			logger.Debug("generated document", "family", res.Family, "channels", res.Channels)
		}
		if genErr != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(genErr, verbose))
			printIssueFor(genErr)
			// Documents for healthy families were still written; report
			// them before exiting non-zero.
			printGenerateResults(results)
			return &ExitError{Code: 1, Err: genErr}
		}
	}

	printGenerateResults(results)
	return nil
}

// runGenerateCheck compares the on-disk documents against a fresh in-memory
// render without writing anything.
func runGenerateCheck(gen *docgen.Generator, args []string) error {
	var checkErr error
	if len(args) == 1 {
		family, parseErr := channel.ParseOSFamily(args[0])
		if parseErr != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+parseErr.Error())
			return &ExitError{Code: 2, Err: parseErr}
		}
		checkErr = gen.CheckFamily(family)
	} else {
		checkErr = gen.CheckAll()
	}

	if checkErr != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(checkErr, verbose))
		printIssueFor(checkErr)
		fmt.Fprintln(os.Stderr, SubtitleStyle.Render("Run 'cabledoc generate' to refresh the documents."))
		return &ExitError{Code: 1, Err: checkErr}
	}
	fmt.Printf("%s Documentation is up to date\n", SuccessStyle.Render("✓"))
	return nil
}

// printGenerateResults prints one confirmation line per generated document.
func printGenerateResults(results []*docgen.Result) {
	for _, res := range results {
		fmt.Printf("%s Generated documentation for %s channels at %s\n",
			SuccessStyle.Render("✓"),
			res.Family,
			PathStyle.Render(res.OutputPath))
	}
}
