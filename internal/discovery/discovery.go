// SPDX-License-Identifier: MPL-2.0

// Package discovery handles finding and loading channel definition files from
// the cable directory tree.
//
// Each OS family owns one subdirectory of the cable root. Discovery is
// non-recursive and deterministic: definition files are returned sorted
// lexicographically by filename, which is also the order channels appear in
// generated documentation.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cabledoc/pkg/channel"
)

// ErrNotADirectory is the sentinel error wrapped by NotADirectoryError.
var ErrNotADirectory = errors.New("not a directory")

type (
	// DiscoveredFile represents a found channel definition with its parse state.
	DiscoveredFile struct {
		// Path is the path to the definition file.
		Path string
		// Family is the OS family subdirectory the file was found in.
		Family channel.OSFamily
		// Channel is the parsed content (nil until LoadAll parses it).
		Channel *channel.Channel
		// Error contains any error that occurred during parsing.
		Error error
	}

	// NotADirectoryError is returned when a family's resolved cable path
	// exists but is not a directory.
	NotADirectoryError struct {
		Path string
	}

	// Discovery finds channel definition files under a cable root.
	Discovery struct {
		cableDir string
	}
)

// Error implements the error interface.
func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("cable path %q exists but is not a directory", e.Path)
}

// Unwrap returns ErrNotADirectory so callers can use errors.Is for
// programmatic detection.
func (e *NotADirectoryError) Unwrap() error { return ErrNotADirectory }

// New creates a Discovery rooted at cableDir.
func New(cableDir string) *Discovery {
	return &Discovery{cableDir: cableDir}
}

// FamilyDir returns the definitions directory for one OS family.
func (d *Discovery) FamilyDir(family channel.OSFamily) string {
	return filepath.Join(d.cableDir, family.String())
}

// Discover returns the definition files for one OS family, sorted
// lexicographically by filename. The family directory is created (with any
// missing parents) when absent, so a family with no authored channels yields
// an empty (never nil) result rather than an error. Fatal failures are a
// path that exists but is not a directory, and directory creation errors.
func (d *Discovery) Discover(family channel.OSFamily) ([]*DiscoveredFile, error) {
	if err := family.Validate(); err != nil {
		return nil, err
	}

	dir := d.FamilyDir(family)

	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return nil, &NotADirectoryError{Path: dir}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cable directory %q: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read cable directory %q: %w", dir, err)
	}

	files := make([]*DiscoveredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), channel.DefinitionExt) {
			continue
		}
		files = append(files, &DiscoveredFile{
			Path:   filepath.Join(dir, entry.Name()),
			Family: family,
		})
	}

	// os.ReadDir already sorts by filename; keep the invariant explicit so
	// document ordering never silently depends on it.
	slices.SortFunc(files, func(a, b *DiscoveredFile) int {
		return strings.Compare(a.Path, b.Path)
	})

	return files, nil
}

// LoadAll discovers and parses all definition files for one OS family.
// Parse failures are recorded per file in DiscoveredFile.Error rather than
// aborting, so callers choose: docgen treats any error as fatal for the
// family, while validate reports every broken file in one pass.
func (d *Discovery) LoadAll(family channel.OSFamily) ([]*DiscoveredFile, error) {
	files, err := d.Discover(family)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		ch, parseErr := channel.Parse(file.Path)
		if parseErr != nil {
			file.Error = parseErr
		} else {
			file.Channel = ch
		}
	}

	return files, nil
}

// FirstError returns the first parse error in discovery order, or nil when
// every file parsed cleanly.
func FirstError(files []*DiscoveredFile) error {
	for _, file := range files {
		if file.Error != nil {
			return file.Error
		}
	}
	return nil
}
