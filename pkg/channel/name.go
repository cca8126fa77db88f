// SPDX-License-Identifier: MPL-2.0

package channel

import (
	"errors"
	"fmt"
	"strings"

	"cabledoc/internal/platform"
)

// ErrInvalidChannelName is the sentinel error wrapped by InvalidChannelNameError.
var ErrInvalidChannelName = errors.New("invalid channel name")

type (
	// ChannelName identifies a channel within an OS family. Uniqueness is
	// enforced by the filesystem (one definition file per name), not here.
	// A valid name is non-empty, not whitespace-only, and contains no path
	// separators since it is spliced into asset and output paths.
	ChannelName string

	// InvalidChannelNameError is returned when a ChannelName is empty,
	// whitespace-only, contains a path separator, or collides with a
	// Windows reserved filename.
	InvalidChannelNameError struct {
		Value  ChannelName
		Reason string
	}
)

// String returns the string representation of the ChannelName.
func (n ChannelName) String() string { return string(n) }

// Validate returns an error if the ChannelName is empty, whitespace-only, or
// contains a path separator.
func (n ChannelName) Validate() error {
	if n == "" {
		return &InvalidChannelNameError{Value: n, Reason: "must not be empty"}
	}
	if strings.TrimSpace(string(n)) == "" {
		return &InvalidChannelNameError{Value: n, Reason: "must not be whitespace-only"}
	}
	if strings.ContainsAny(string(n), `/\`) {
		return &InvalidChannelNameError{Value: n, Reason: "must not contain path separators"}
	}
	// The name is spliced into definition and asset filenames, so it must
	// be creatable on Windows checkouts too.
	if platform.IsWindowsReservedName(string(n)) {
		return &InvalidChannelNameError{Value: n, Reason: "is a reserved filename on Windows"}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidChannelNameError) Error() string {
	return fmt.Sprintf("invalid channel name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidChannelName so callers can use errors.Is for
// programmatic detection.
func (e *InvalidChannelNameError) Unwrap() error { return ErrInvalidChannelName }
