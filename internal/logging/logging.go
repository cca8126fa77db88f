// SPDX-License-Identifier: MPL-2.0

// Package logging constructs the structured logger used across cabledoc.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w with the cabledoc prefix. Verbose mode
// lowers the level to Debug; otherwise only Info and above are emitted.
func New(w io.Writer, verbose bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "cabledoc",
		Level:  level,
	})
}
