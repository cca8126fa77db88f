// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"cabledoc/internal/docgen"
	"cabledoc/internal/logging"
	"cabledoc/internal/watch"
	"cabledoc/pkg/channel"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate documents whenever a definition changes",
	Long: `Watch the cable directory and regenerate the reference documents
whenever a TOML channel definition is created, modified or removed.
Rapid edit bursts are coalesced so each burst triggers one regeneration.

Press Ctrl+C to stop watching.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	logger := logging.New(os.Stderr, verbose)
	gen := docgen.New(cfg)

	// Generate once up front so the docs are fresh before the first change.
	if results, genErr := gen.GenerateAll(); genErr != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(genErr, verbose))
		printIssueFor(genErr)
		printGenerateResults(results)
	} else {
		printGenerateResults(results)
	}

	w, err := watch.New(watch.Config{
		BaseDir:  cfg.CableDir,
		Patterns: []string{"**/*" + channel.DefinitionExt},
		Debounce: time.Duration(cfg.Watch.DebounceMs) * time.Millisecond,
		Stderr:   os.Stderr,
		OnChange: func(ctx context.Context, changed []string) error {
			logger.Info("definitions changed", "files", len(changed))
			results, genErr := gen.GenerateAll()
			if genErr != nil {
				fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(genErr, verbose))
				printIssueFor(genErr)
			}
			printGenerateResults(results)
			return nil
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Println(SubtitleStyle.Render(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)...", cfg.CableDir)))
	if runErr := w.Run(cmd.Context()); runErr != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+runErr.Error())
		return &ExitError{Code: 1, Err: runErr}
	}
	return nil
}
