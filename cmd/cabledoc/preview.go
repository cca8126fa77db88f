// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"cabledoc/internal/config"
	"cabledoc/internal/docgen"
	"cabledoc/internal/issue"
	"cabledoc/pkg/channel"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [family]",
	Short: "Render a channel reference document in the terminal",
	Long: `Render the reference document for one OS family directly in the
terminal, without writing anything to the docs directory. The document
is built from the current channel definitions, so unsaved docs on disk
are never shown stale. Without arguments both families are rendered in
order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
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

	for _, family := range families {
		doc, buildErr := buildPreviewDocument(cfg, family)
		if buildErr != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(buildErr, verbose))
			return &ExitError{Code: 1, Err: buildErr}
		}

		rendered, renderErr := renderMarkdown(doc, cfg.UI.ColorScheme)
		if renderErr != nil {
			wrapped := issue.WrapWithContext(renderErr, "render preview", string(family))
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(wrapped, verbose))
			return &ExitError{Code: 1, Err: wrapped}
		}

		fmt.Print(rendered)
	}
	return nil
}

// buildPreviewDocument renders the in-memory document for one family.
func buildPreviewDocument(cfg *config.Config, family channel.OSFamily) (string, error) {
	gen := docgen.New(cfg)
	files, err := gen.LoadFamily(family)
	if err != nil {
		return "", err
	}
	doc, _, err := gen.RenderDocument(family, files)
	return doc, err
}

// renderMarkdown renders markdown for the terminal, honoring the configured
// color scheme.
func renderMarkdown(doc string, scheme config.ColorScheme) (string, error) {
	var opts []glamour.TermRendererOption
	switch scheme {
	case config.ColorSchemeDark:
		opts = append(opts, glamour.WithStandardStyle("dark"))
	case config.ColorSchemeLight:
		opts = append(opts, glamour.WithStandardStyle("light"))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}
	opts = append(opts, glamour.WithWordWrap(100))

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return renderer.Render(doc)
}
