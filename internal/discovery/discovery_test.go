// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"cabledoc/pkg/channel"
)

func writeDefinition(t *testing.T, dir, name, channelName string) {
	t.Helper()
	content := "[metadata]\nname = \"" + channelName + "\"\ndescription = \"d\"\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write definition %s: %v", name, err)
	}
}

func TestDiscover_SortedByFilename(t *testing.T) {
	t.Parallel()

	cable := t.TempDir()
	unixDir := filepath.Join(cable, "unix")
	if err := os.MkdirAll(unixDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Write in non-sorted order on purpose.
	writeDefinition(t, unixDir, "zebra.toml", "Zebra")
	writeDefinition(t, unixDir, "alpha.toml", "Alpha")
	writeDefinition(t, unixDir, "iptv.toml", "IPTV")

	files, err := New(cable).Discover(channel.FamilyUnix)
	if err != nil {
		t.Fatalf("Discover() returned unexpected error: %v", err)
	}

	want := []string{"alpha.toml", "iptv.toml", "zebra.toml"}
	if len(files) != len(want) {
		t.Fatalf("Discover() returned %d files, want %d", len(files), len(want))
	}
	for i, file := range files {
		if filepath.Base(file.Path) != want[i] {
			t.Errorf("files[%d] = %s, want %s", i, filepath.Base(file.Path), want[i])
		}
		if file.Family != channel.FamilyUnix {
			t.Errorf("files[%d].Family = %s, want unix", i, file.Family)
		}
	}
}

func TestDiscover_IgnoresNonDefinitions(t *testing.T) {
	t.Parallel()

	cable := t.TempDir()
	unixDir := filepath.Join(cable, "unix")
	if err := os.MkdirAll(filepath.Join(unixDir, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeDefinition(t, unixDir, "plex.toml", "Plex")
	if err := os.WriteFile(filepath.Join(unixDir, "README.md"), []byte("# hi"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// Definitions in subdirectories must not be picked up (non-recursive).
	writeDefinition(t, filepath.Join(unixDir, "nested"), "hidden.toml", "Hidden")

	files, err := New(cable).Discover(channel.FamilyUnix)
	if err != nil {
		t.Fatalf("Discover() returned unexpected error: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0].Path) != "plex.toml" {
		t.Errorf("Discover() = %v, want only plex.toml", files)
	}
}

func TestDiscover_CreatesMissingFamilyDir(t *testing.T) {
	t.Parallel()

	cable := filepath.Join(t.TempDir(), "not", "yet", "created")

	files, err := New(cable).Discover(channel.FamilyWindows)
	if err != nil {
		t.Fatalf("Discover() returned unexpected error: %v", err)
	}
	if files == nil {
		t.Fatal("Discover() returned nil slice, want empty")
	}
	if len(files) != 0 {
		t.Errorf("Discover() = %v, want empty", files)
	}

	info, err := os.Stat(filepath.Join(cable, "windows"))
	if err != nil || !info.IsDir() {
		t.Error("Discover() should have created the family directory")
	}
}

func TestDiscover_FamilyPathIsAFile(t *testing.T) {
	t.Parallel()

	cable := t.TempDir()
	if err := os.WriteFile(filepath.Join(cable, "unix"), []byte("oops"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := New(cable).Discover(channel.FamilyUnix)
	if err == nil {
		t.Fatal("Discover() should fail when the family path is a file")
	}
	if !errors.Is(err, ErrNotADirectory) {
		t.Errorf("error should wrap ErrNotADirectory, got: %v", err)
	}
	var nde *NotADirectoryError
	if !errors.As(err, &nde) {
		t.Errorf("error should be *NotADirectoryError, got: %T", err)
	}
}

func TestDiscover_RejectsUnknownFamily(t *testing.T) {
	t.Parallel()

	_, err := New(t.TempDir()).Discover(channel.OSFamily("beos"))
	if !errors.Is(err, channel.ErrInvalidOSFamily) {
		t.Errorf("error should wrap ErrInvalidOSFamily, got: %v", err)
	}
}

func TestLoadAll_ParsesEveryFile(t *testing.T) {
	t.Parallel()

	cable := t.TempDir()
	unixDir := filepath.Join(cable, "unix")
	if err := os.MkdirAll(unixDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeDefinition(t, unixDir, "iptv.toml", "IPTV")
	writeDefinition(t, unixDir, "plex.toml", "Plex")

	files, err := New(cable).LoadAll(channel.FamilyUnix)
	if err != nil {
		t.Fatalf("LoadAll() returned unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("LoadAll() returned %d files, want 2", len(files))
	}
	if files[0].Channel == nil || files[0].Channel.Metadata.Name != "IPTV" {
		t.Errorf("files[0] not parsed as IPTV: %+v", files[0])
	}
	if files[1].Channel == nil || files[1].Channel.Metadata.Name != "Plex" {
		t.Errorf("files[1] not parsed as Plex: %+v", files[1])
	}
	if err := FirstError(files); err != nil {
		t.Errorf("FirstError() = %v, want nil", err)
	}
}

func TestLoadAll_RecordsParseErrorsPerFile(t *testing.T) {
	t.Parallel()

	cable := t.TempDir()
	unixDir := filepath.Join(cable, "unix")
	if err := os.MkdirAll(unixDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeDefinition(t, unixDir, "good.toml", "Good")
	if err := os.WriteFile(filepath.Join(unixDir, "bad.toml"), []byte("[metadata]\ndescription = \"no name\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	files, err := New(cable).LoadAll(channel.FamilyUnix)
	if err != nil {
		t.Fatalf("LoadAll() returned unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("LoadAll() returned %d files, want 2", len(files))
	}

	// bad.toml sorts first and must carry its own error.
	if files[0].Error == nil {
		t.Error("expected parse error recorded for bad.toml")
	}
	if !errors.Is(files[0].Error, channel.ErrMissingField) {
		t.Errorf("bad.toml error should wrap ErrMissingField, got: %v", files[0].Error)
	}
	if files[1].Error != nil || files[1].Channel == nil {
		t.Errorf("good.toml should have parsed cleanly: %+v", files[1])
	}

	if err := FirstError(files); err == nil {
		t.Error("FirstError() = nil, want the bad.toml error")
	}
}

func TestDiscover_UnwritableCableRootSurfacesMkdirFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission-based tests are unreliable on Windows")
	}
	t.Parallel()

	cable := filepath.Join(t.TempDir(), "cable")
	if err := os.Mkdir(cable, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Drop write permission so the family subdirectory cannot be created.
	if err := os.Chmod(cable, 0o500); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	// Restore permissions so t.TempDir() cleanup can remove the directory
	t.Cleanup(func() {
		_ = os.Chmod(cable, 0o755) //nolint:errcheck // best-effort cleanup
	})

	_, err := New(cable).Discover(channel.FamilyUnix)
	if err == nil {
		t.Fatal("Discover() should fail when the family directory cannot be created")
	}
	if !strings.Contains(err.Error(), filepath.Join(cable, "unix")) {
		t.Errorf("error should name the directory it could not create, got: %v", err)
	}
}
