// SPDX-License-Identifier: MPL-2.0

// Package channel defines the schema and parsing for cable channel TOML
// definition files.
//
// A definition file holds one channel: a [metadata] table with the fields
// inspected by cabledoc (name, description, optional requirements) plus any
// number of additional tables that configure the channel for the upstream
// application. Those extra tables are never interpreted here; they are
// preserved verbatim so rendered documentation stays a faithful mirror of the
// source file.
package channel

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefinitionExt is the file extension of channel definition files.
const DefinitionExt = ".toml"

// Sentinel errors for programmatic detection of malformed definitions.
var (
	// ErrMissingField is the sentinel error wrapped by MissingFieldError.
	ErrMissingField = errors.New("missing required field")
	// ErrWrongFieldType is the sentinel error wrapped by WrongFieldTypeError.
	ErrWrongFieldType = errors.New("wrong field type")
)

type (
	// Metadata holds the fields of the [metadata] table that cabledoc
	// inspects. Name and Description are required in the source file;
	// Requirements defaults to empty when absent.
	Metadata struct {
		// Name identifies the channel. Required, non-empty.
		Name ChannelName
		// Description is free text shown under the channel heading.
		// Required in the file, but may be an empty string.
		Description string
		// Requirements names external prerequisites (binaries, services)
		// the channel needs at runtime. Optional; never nil after parsing.
		Requirements []string
	}

	// Channel is one parsed definition file. It is read-only after Parse.
	Channel struct {
		// Path is the definition file this channel was parsed from.
		Path string
		// Metadata holds the extracted [metadata] fields.
		Metadata Metadata
		// Raw is the complete parsed record, including tables and fields
		// not otherwise inspected. Serialize(Raw) reproduces the channel
		// in canonical form.
		Raw map[string]any
	}

	// MissingFieldError is returned when a definition file lacks a required
	// metadata field.
	MissingFieldError struct {
		Path  string
		Field string
	}

	// WrongFieldTypeError is returned when a metadata field is present but
	// has the wrong TOML type.
	WrongFieldTypeError struct {
		Path  string
		Field string
		Want  string
	}
)

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Path, e.Field)
}

// Unwrap returns ErrMissingField so callers can use errors.Is for
// programmatic detection.
func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// Error implements the error interface.
func (e *WrongFieldTypeError) Error() string {
	return fmt.Sprintf("%s: field %q must be a %s", e.Path, e.Field, e.Want)
}

// Unwrap returns ErrWrongFieldType so callers can use errors.Is for
// programmatic detection.
func (e *WrongFieldTypeError) Unwrap() error { return ErrWrongFieldType }

// Parse reads and parses a channel definition file. Any failure (unreadable
// file, TOML syntax error, missing or mistyped required field) is an error
// naming the offending file; callers treat it as fatal for the current run.
func Parse(path string) (*Channel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read channel definition: %w", err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses a channel definition from memory. The path is used only
// for error reporting and the resulting Channel's Path field.
func ParseBytes(data []byte, path string) (*Channel, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	meta, err := extractMetadata(raw, path)
	if err != nil {
		return nil, err
	}

	return &Channel{Path: path, Metadata: meta, Raw: raw}, nil
}

// Serialize renders a parsed record back to canonical TOML text. go-toml
// emits map keys in sorted order, so the output is deterministic and
// Parse/Serialize round-trip to structurally equal records.
func Serialize(raw map[string]any) (string, error) {
	out, err := toml.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("serialize channel definition: %w", err)
	}
	return string(out), nil
}

// Canonical returns the canonical TOML text of the full channel record.
func (c *Channel) Canonical() (string, error) {
	return Serialize(c.Raw)
}

// extractMetadata pulls the required [metadata] fields out of the raw record.
func extractMetadata(raw map[string]any, path string) (Metadata, error) {
	metaAny, ok := raw["metadata"]
	if !ok {
		return Metadata{}, &MissingFieldError{Path: path, Field: "metadata"}
	}
	meta, ok := metaAny.(map[string]any)
	if !ok {
		return Metadata{}, &WrongFieldTypeError{Path: path, Field: "metadata", Want: "table"}
	}

	nameAny, ok := meta["name"]
	if !ok {
		return Metadata{}, &MissingFieldError{Path: path, Field: "metadata.name"}
	}
	name, ok := nameAny.(string)
	if !ok {
		return Metadata{}, &WrongFieldTypeError{Path: path, Field: "metadata.name", Want: "string"}
	}
	if err := ChannelName(name).Validate(); err != nil {
		return Metadata{}, fmt.Errorf("%s: %w", path, err)
	}

	descAny, ok := meta["description"]
	if !ok {
		return Metadata{}, &MissingFieldError{Path: path, Field: "metadata.description"}
	}
	desc, ok := descAny.(string)
	if !ok {
		return Metadata{}, &WrongFieldTypeError{Path: path, Field: "metadata.description", Want: "string"}
	}

	reqs, err := extractRequirements(meta, path)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{
		Name:         ChannelName(name),
		Description:  desc,
		Requirements: reqs,
	}, nil
}

// extractRequirements reads the optional metadata.requirements array. Absence
// yields an empty slice, never nil, so callers can range without nil checks.
func extractRequirements(meta map[string]any, path string) ([]string, error) {
	reqsAny, ok := meta["requirements"]
	if !ok {
		return []string{}, nil
	}
	list, ok := reqsAny.([]any)
	if !ok {
		return nil, &WrongFieldTypeError{Path: path, Field: "metadata.requirements", Want: "array of strings"}
	}
	reqs := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, &WrongFieldTypeError{Path: path, Field: "metadata.requirements", Want: "array of strings"}
		}
		reqs = append(reqs, s)
	}
	return reqs, nil
}
