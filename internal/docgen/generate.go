// SPDX-License-Identifier: MPL-2.0

package docgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cabledoc/internal/discovery"
	"cabledoc/internal/issue"
	"cabledoc/pkg/channel"
)

// Result describes one successfully generated document.
type Result struct {
	// Family is the OS family the document covers.
	Family channel.OSFamily
	// OutputPath is where the document was written.
	OutputPath string
	// Channels is the number of channel fragments in the document.
	Channels int
}

// ErrWriteDocs is the sentinel error wrapped by document write failures so
// callers can detect them with errors.Is.
var ErrWriteDocs = errors.New("write documentation failed")

// RenderDocument builds the full document for one family from already-loaded
// definition files and reports how many channel fragments it contains. Any
// per-file parse error aborts before rendering so a partial document can
// never be produced.
func (g *Generator) RenderDocument(family channel.OSFamily, files []*discovery.DiscoveredFile) (string, int, error) {
	if err := discovery.FirstError(files); err != nil {
		return "", 0, issue.NewErrorContext().
			WithOperation("parse channel definitions").
			WithResource(string(family)).
			WithSuggestion("Run 'cabledoc validate' to check every definition").
			Wrap(err).
			BuildError()
	}

	var doc strings.Builder
	doc.WriteString(DocumentHeader(family))

	fragments := 0
	for _, file := range files {
		fragment, err := g.RenderFragment(file.Channel, family)
		if err != nil {
			return "", 0, fmt.Errorf("render channel %q: %w", file.Channel.Metadata.Name, err)
		}
		doc.WriteString(fragment)
		fragments++
	}

	return doc.String(), fragments, nil
}

// LoadFamily discovers and parses every definition for one OS family.
func (g *Generator) LoadFamily(family channel.OSFamily) ([]*discovery.DiscoveredFile, error) {
	return discovery.New(g.cfg.CableDir).LoadAll(family)
}

// GenerateFamily runs the full pipeline for one OS family: discover, parse,
// render, write. The output file is fully replaced (create-or-truncate); on
// any error nothing is written, so a previous valid document survives.
func (g *Generator) GenerateFamily(family channel.OSFamily) (*Result, error) {
	files, err := g.LoadFamily(family)
	if err != nil {
		return nil, err
	}

	doc, fragments, err := g.RenderDocument(family, files)
	if err != nil {
		return nil, err
	}

	outPath := g.OutputPath(family)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("create docs directory").
			WithResource(filepath.Dir(outPath)).
			WithSuggestion("Check permissions on the docs directory").
			Wrap(fmt.Errorf("%w: %w", ErrWriteDocs, err)).
			BuildError()
	}
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("write documentation").
			WithResource(outPath).
			WithSuggestion("Check that the docs directory is writable").
			Wrap(fmt.Errorf("%w: %w", ErrWriteDocs, err)).
			BuildError()
	}

	return &Result{Family: family, OutputPath: outPath, Channels: fragments}, nil
}

// GenerateAll processes every OS family in the fixed unix-then-windows order.
// Families are independent: a malformed definition in one family does not
// block generation for the other. The returned results cover the families
// that succeeded; the returned error joins the failures, if any.
func (g *Generator) GenerateAll() ([]*Result, error) {
	var (
		results []*Result
		errs    []error
	)

	for _, family := range channel.Families() {
		res, err := g.GenerateFamily(family)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", family, err))
			continue
		}
		results = append(results, res)
	}

	return results, errors.Join(errs...)
}
