// SPDX-License-Identifier: MPL-2.0

package channel

import (
	"errors"
	"fmt"
)

// ErrInvalidOSFamily is the sentinel error wrapped by InvalidOSFamilyError.
var ErrInvalidOSFamily = errors.New("invalid os family")

type (
	// OSFamily partitions channel definitions by operating system. It selects
	// both the cable subdirectory a definition is read from and the
	// documentation file it is rendered into. The set is closed: only the
	// values returned by Families are recognized.
	OSFamily string

	// InvalidOSFamilyError is returned when an OSFamily value is not one of
	// the recognized families.
	InvalidOSFamilyError struct {
		Value OSFamily
	}
)

const (
	// FamilyUnix covers Linux, macOS, and the BSDs.
	FamilyUnix OSFamily = "unix"
	// FamilyWindows covers Windows.
	FamilyWindows OSFamily = "windows"
)

// Families returns the recognized OS families in the fixed order documents
// are generated.
func Families() []OSFamily {
	return []OSFamily{FamilyUnix, FamilyWindows}
}

// ParseOSFamily converts a raw string into an OSFamily, validating it against
// the closed set.
func ParseOSFamily(s string) (OSFamily, error) {
	f := OSFamily(s)
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// String returns the string representation of the OSFamily.
func (f OSFamily) String() string { return string(f) }

// Validate returns an error if the OSFamily is not one of the recognized
// values.
func (f OSFamily) Validate() error {
	switch f {
	case FamilyUnix, FamilyWindows:
		return nil
	default:
		return &InvalidOSFamilyError{Value: f}
	}
}

// Error implements the error interface.
func (e *InvalidOSFamilyError) Error() string {
	return fmt.Sprintf("invalid os family %q (must be %q or %q)", e.Value, FamilyUnix, FamilyWindows)
}

// Unwrap returns ErrInvalidOSFamily so callers can use errors.Is for
// programmatic detection.
func (e *InvalidOSFamilyError) Unwrap() error { return ErrInvalidOSFamily }
