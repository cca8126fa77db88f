// SPDX-License-Identifier: MPL-2.0

// Package docgen renders Markdown reference documentation for cable channels.
//
// One document is produced per OS family: a top-level heading followed by a
// fragment per channel in discovery order. Rendering is deterministic: the
// same definitions and asset directory contents always produce byte-identical
// documents.
package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cabledoc/internal/config"
	"cabledoc/pkg/channel"
)

// docFileFormat names the generated document for one OS family.
const docFileFormat = "10-community-channels-%s.md"

// Generator renders and writes channel documentation.
type Generator struct {
	cfg *config.Config
}

// New creates a Generator using the given configuration's directory roots.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// OutputPath returns the document path for one OS family.
func (g *Generator) OutputPath(family channel.OSFamily) string {
	return filepath.Join(g.cfg.DocsDir, fmt.Sprintf(docFileFormat, family))
}

// AssetPath returns where a channel's image is expected: <assets-dir>/<name>.png,
// or <assets-dir>/<family>/<name>.png when the per-family layout is configured.
func (g *Generator) AssetPath(family channel.OSFamily, name channel.ChannelName) string {
	if g.cfg.Assets.PerFamily {
		return filepath.Join(g.cfg.Assets.Dir, family.String(), name.String()+".png")
	}
	return filepath.Join(g.cfg.Assets.Dir, name.String()+".png")
}

// DocumentHeader returns the heading line that opens a family's document.
func DocumentHeader(family channel.OSFamily) string {
	return fmt.Sprintf("\n# Community Channels (%s)\n", family)
}

// RenderFragment renders the Markdown block for a single channel: subheading,
// description, optional image reference, requirements line, and a fenced TOML
// block holding the canonical serialized record. The only filesystem access
// is an existence check for the image; its absence just omits the image line.
func (g *Generator) RenderFragment(ch *channel.Channel, family channel.OSFamily) (string, error) {
	canonical, err := ch.Canonical()
	if err != nil {
		return "", err
	}

	name := ch.Metadata.Name
	var b strings.Builder

	fmt.Fprintf(&b, "\n### *%s*\n\n%s\n\n", name, ch.Metadata.Description)

	assetPath := g.AssetPath(family, name)
	if _, statErr := os.Stat(assetPath); statErr == nil {
		fmt.Fprintf(&b, "![%s channel](%s)\n", name, filepath.ToSlash(assetPath))
	}

	fmt.Fprintf(&b, "**Requirements:** %s\n\n", requirementsLine(ch.Metadata.Requirements))
	fmt.Fprintf(&b, "**Code:** *%s.toml*\n\n", name)
	fmt.Fprintf(&b, "```toml\n%s```\n\n", canonical)
	b.WriteString("\n---\n")

	return b.String(), nil
}

// requirementsLine formats the requirements as comma-separated inline code,
// or the "*None*" marker when the channel declares none.
func requirementsLine(reqs []string) string {
	if len(reqs) == 0 {
		return "*None*"
	}
	quoted := make([]string, len(reqs))
	for i, req := range reqs {
		quoted[i] = "`" + req + "`"
	}
	return strings.Join(quoted, ", ")
}
