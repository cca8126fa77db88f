// SPDX-License-Identifier: MPL-2.0

package docgen

import (
	"errors"
	"fmt"
	"os"

	"cabledoc/pkg/channel"
)

// ErrDocsOutOfSync is the sentinel error wrapped by OutOfSyncError.
var ErrDocsOutOfSync = errors.New("documentation out of sync")

// OutOfSyncError reports a document that does not match what generation
// would currently produce.
type OutOfSyncError struct {
	Family channel.OSFamily
	Path   string
	// Missing is true when the document does not exist at all.
	Missing bool
}

// Error implements the error interface.
func (e *OutOfSyncError) Error() string {
	if e.Missing {
		return fmt.Sprintf("documentation for %s is missing at %s", e.Family, e.Path)
	}
	return fmt.Sprintf("documentation for %s at %s is stale", e.Family, e.Path)
}

// Unwrap returns ErrDocsOutOfSync so callers can use errors.Is.
func (e *OutOfSyncError) Unwrap() error { return ErrDocsOutOfSync }

// CheckFamily renders the document for one family in memory and compares it
// byte for byte with the file on disk. Nothing is written. It returns an
// OutOfSyncError when the on-disk document is missing or stale.
func (g *Generator) CheckFamily(family channel.OSFamily) error {
	files, err := g.LoadFamily(family)
	if err != nil {
		return err
	}

	want, _, err := g.RenderDocument(family, files)
	if err != nil {
		return err
	}

	outPath := g.OutputPath(family)
	got, err := os.ReadFile(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &OutOfSyncError{Family: family, Path: outPath, Missing: true}
		}
		return fmt.Errorf("read document %s: %w", outPath, err)
	}

	if string(got) != want {
		return &OutOfSyncError{Family: family, Path: outPath}
	}
	return nil
}

// CheckAll verifies every family, joining the failures. A nil return means
// the committed documents exactly match the current definitions.
func (g *Generator) CheckAll() error {
	var errs []error
	for _, family := range channel.Families() {
		if err := g.CheckFamily(family); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
