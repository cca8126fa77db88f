// SPDX-License-Identifier: MPL-2.0

package docgen

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cabledoc/internal/config"
	"cabledoc/pkg/channel"
)

// testConfig returns a config rooted in fresh temp directories.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.CableDir = filepath.Join(t.TempDir(), "cable")
	cfg.DocsDir = filepath.Join(t.TempDir(), "docs")
	cfg.Assets.Dir = filepath.Join(t.TempDir(), "assets")
	return cfg
}

func mustChannel(t *testing.T, def string) *channel.Channel {
	t.Helper()
	ch, err := channel.ParseBytes([]byte(def), "test.toml")
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return ch
}

func TestRenderFragment_Layout(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ch := mustChannel(t, "[metadata]\nname = \"IPTV\"\ndescription = \"Live TV feeds\"\nrequirements = [\"ffmpeg\"]\n")

	got, err := New(cfg).RenderFragment(ch, channel.FamilyUnix)
	if err != nil {
		t.Fatalf("RenderFragment() returned unexpected error: %v", err)
	}

	for _, want := range []string{
		"\n### *IPTV*\n\nLive TV feeds\n\n",
		"**Requirements:** `ffmpeg`\n\n",
		"**Code:** *IPTV.toml*\n\n",
		"```toml\n",
		"\n---\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("fragment missing %q:\n%s", want, got)
		}
	}

	// Sections must appear in the documented order.
	order := []string{"### *IPTV*", "**Requirements:**", "**Code:**", "```toml", "---"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(got, marker)
		if idx <= last {
			t.Errorf("marker %q out of order in fragment:\n%s", marker, got)
		}
		last = idx
	}
}

func TestRenderFragment_RequirementsLine(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	gen := New(cfg)

	none := mustChannel(t, "[metadata]\nname = \"Plex\"\ndescription = \"Streams media\"\n")
	got, err := gen.RenderFragment(none, channel.FamilyUnix)
	if err != nil {
		t.Fatalf("RenderFragment() returned unexpected error: %v", err)
	}
	if !strings.Contains(got, "**Requirements:** *None*\n") {
		t.Errorf("fragment without requirements should render the *None* marker:\n%s", got)
	}

	two := mustChannel(t, "[metadata]\nname = \"Files\"\ndescription = \"d\"\nrequirements = [\"curl\", \"jq\"]\n")
	got, err = gen.RenderFragment(two, channel.FamilyUnix)
	if err != nil {
		t.Fatalf("RenderFragment() returned unexpected error: %v", err)
	}
	if !strings.Contains(got, "**Requirements:** `curl`, `jq`\n") {
		t.Errorf("fragment should render comma-separated inline-code requirements:\n%s", got)
	}
}

func TestRenderFragment_ImageOnlyWhenAssetExists(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	gen := New(cfg)
	ch := mustChannel(t, "[metadata]\nname = \"Plex\"\ndescription = \"d\"\n")

	// No image on disk: no image reference at all.
	got, err := gen.RenderFragment(ch, channel.FamilyUnix)
	if err != nil {
		t.Fatalf("RenderFragment() returned unexpected error: %v", err)
	}
	if strings.Contains(got, "![") {
		t.Errorf("fragment should contain no image reference when the asset is absent:\n%s", got)
	}

	// Image present: exactly one reference pointing at the flat asset path.
	if err := os.MkdirAll(cfg.Assets.Dir, 0o755); err != nil {
		t.Fatalf("mkdir assets: %v", err)
	}
	assetPath := filepath.Join(cfg.Assets.Dir, "Plex.png")
	if err := os.WriteFile(assetPath, []byte("png"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	got, err = gen.RenderFragment(ch, channel.FamilyUnix)
	if err != nil {
		t.Fatalf("RenderFragment() returned unexpected error: %v", err)
	}
	wantRef := "![Plex channel](" + filepath.ToSlash(assetPath) + ")\n"
	if strings.Count(got, "![") != 1 || !strings.Contains(got, wantRef) {
		t.Errorf("fragment should contain exactly one image reference %q:\n%s", wantRef, got)
	}
}

func TestAssetPath_PerFamilyLayout(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Assets.PerFamily = true
	gen := New(cfg)

	got := gen.AssetPath(channel.FamilyWindows, "Plex")
	want := filepath.Join(cfg.Assets.Dir, "windows", "Plex.png")
	if got != want {
		t.Errorf("AssetPath() = %q, want %q", got, want)
	}
}

func TestRenderFragment_CodeBlockRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	def := "[metadata]\nname = \"IPTV\"\ndescription = \"Live TV\"\nrequirements = [\"ffmpeg\"]\n\n[source]\ncommand = \"iptv list\"\n"
	ch := mustChannel(t, def)

	got, err := New(cfg).RenderFragment(ch, channel.FamilyUnix)
	if err != nil {
		t.Fatalf("RenderFragment() returned unexpected error: %v", err)
	}

	// Extract the fenced block and reparse it.
	start := strings.Index(got, "```toml\n")
	end := strings.Index(got[start+8:], "```")
	if start < 0 || end < 0 {
		t.Fatalf("fragment has no fenced toml block:\n%s", got)
	}
	block := got[start+8 : start+8+end]

	reparsed, err := channel.ParseBytes([]byte(block), "block.toml")
	if err != nil {
		t.Fatalf("code block is not valid TOML: %v\n%s", err, block)
	}
	if !reflect.DeepEqual(reparsed.Metadata, ch.Metadata) {
		t.Errorf("code block metadata = %+v, want %+v", reparsed.Metadata, ch.Metadata)
	}
	if !reflect.DeepEqual(reparsed.Raw, ch.Raw) {
		t.Errorf("code block record differs from the source record")
	}
}

func TestDocumentHeader(t *testing.T) {
	t.Parallel()

	if got := DocumentHeader(channel.FamilyUnix); got != "\n# Community Channels (unix)\n" {
		t.Errorf("DocumentHeader() = %q", got)
	}
}
