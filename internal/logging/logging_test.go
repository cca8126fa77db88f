// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	t.Run("default suppresses debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := New(&buf, false)
		logger.Debug("hidden")
		logger.Info("shown")
		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("debug message leaked at default level: %q", out)
		}
		if !strings.Contains(out, "shown") {
			t.Errorf("info message missing: %q", out)
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := New(&buf, true)
		logger.Debug("visible")
		if !strings.Contains(buf.String(), "visible") {
			t.Errorf("debug message missing in verbose mode: %q", buf.String())
		}
	})
}
