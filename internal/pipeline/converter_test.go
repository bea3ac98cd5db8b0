package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogo-boot/image-2-c-array/internal/header"
	"github.com/gogo-boot/image-2-c-array/internal/rgb565"
)

// writePNG writes a small solid-color PNG, creating parent dirs.
func writePNG(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runConverter(t *testing.T, src, out string) Tally {
	t.Helper()
	c, err := New(Config{SourceDir: src, OutputDir: out})
	if err != nil {
		t.Fatalf("new converter: %v", err)
	}
	tally, err := c.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return tally
}

func TestRun_MirrorsTree(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	red := color.NRGBA{R: 255, A: 255}
	writePNG(t, filepath.Join(src, "icons", "home.png"), 4, 4, red)
	writePNG(t, filepath.Join(src, "icons", "deep", "back-arrow.png"), 2, 2, red)
	writePNG(t, filepath.Join(src, "splash.png"), 8, 8, red)
	// Non-image files are ignored.
	if err := os.WriteFile(filepath.Join(src, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tally := runConverter(t, src, out)
	if tally.Converted != 3 || tally.Errors != 0 {
		t.Fatalf("tally: got (%d,%d), want (3,0)", tally.Converted, tally.Errors)
	}

	for _, rel := range []string{
		filepath.Join("icons", "home.h"),
		filepath.Join("icons", "deep", "back-arrow.h"),
		"splash.h",
	} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing artifact %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "notes.h")); err == nil {
		t.Error("non-image file was converted")
	}
}

func TestRun_ArtifactContent(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "quad.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	runConverter(t, src, out)

	data, err := os.ReadFile(filepath.Join(out, "quad.h"))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "#define QUAD_WIDTH  2") {
		t.Error("width constant missing or wrong")
	}
	if !strings.Contains(text, "#define QUAD_HEIGHT 2") {
		t.Error("height constant missing or wrong")
	}
	// Row-major, values matching independently packed pixels.
	wantRows := "    0xF800, 0x07E0,\n    0x001F, 0xFFFF\n};"
	if !strings.Contains(text, wantRows) {
		t.Errorf("pixel rows wrong:\n%s", text)
	}
	m, err := header.ParseMeta(data)
	if err != nil {
		t.Fatalf("parse generated artifact: %v", err)
	}
	if m.Ident != "quad" || m.Pixels() != 4 {
		t.Errorf("meta: %+v", m)
	}
	if got := rgb565.Pack(255, 255, 255); got != 0xFFFF {
		t.Errorf("independent packing check: 0x%04X", got)
	}
}

func TestRun_CorruptFileDoesNotAbort(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	red := color.NRGBA{R: 255, A: 255}
	writePNG(t, filepath.Join(src, "a.png"), 2, 2, red)
	writePNG(t, filepath.Join(src, "b.png"), 2, 2, red)
	if err := os.WriteFile(filepath.Join(src, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	tally := runConverter(t, src, out)
	if tally.Converted != 2 || tally.Errors != 1 {
		t.Fatalf("tally: got (%d,%d), want (2,1)", tally.Converted, tally.Errors)
	}
	if _, err := os.Stat(filepath.Join(out, "broken.h")); err == nil {
		t.Error("artifact written for corrupt file")
	}
}

func TestRun_WriteFailureDoesNotAbort(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	red := color.NRGBA{R: 255, A: 255}
	writePNG(t, filepath.Join(src, "a.png"), 2, 2, red)
	writePNG(t, filepath.Join(src, "blocked", "img.png"), 2, 2, red)
	writePNG(t, filepath.Join(src, "z.png"), 2, 2, red)

	// Occupy the mirrored subdirectory path with a regular file so the
	// artifact under it cannot be created.
	if err := os.WriteFile(filepath.Join(out, "blocked"), []byte("in the way"), 0o644); err != nil {
		t.Fatal(err)
	}

	tally := runConverter(t, src, out)
	if tally.Converted != 2 || tally.Errors != 1 {
		t.Fatalf("tally: got (%d,%d), want (2,1)", tally.Converted, tally.Errors)
	}
	// Traversal continued past the failing file: z.png sorts after
	// blocked/ and must still have been converted.
	for _, rel := range []string{"a.h", "z.h"} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing artifact %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "blocked", "img.h")); err == nil {
		t.Error("artifact written under blocked path")
	}
}

func TestRun_SkipsExtensionOnlyNames(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	red := color.NRGBA{R: 255, A: 255}
	writePNG(t, filepath.Join(src, "real.png"), 1, 1, red)
	// A dotfile named exactly ".png" has no stem and is not eligible.
	writePNG(t, filepath.Join(src, ".png"), 1, 1, red)

	tally := runConverter(t, src, out)
	if tally.Converted != 1 || tally.Errors != 0 {
		t.Fatalf("tally: got (%d,%d), want (1,0)", tally.Converted, tally.Errors)
	}
	if _, err := os.Stat(filepath.Join(out, ".h")); err == nil {
		t.Error("extension-only name was converted")
	}
}

func TestRun_EmptyTree(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "readme.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tally := runConverter(t, src, out)
	if tally.Converted != 0 || tally.Errors != 0 {
		t.Fatalf("tally: got (%d,%d), want (0,0)", tally.Converted, tally.Errors)
	}
}

func TestRun_Idempotent(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writePNG(t, filepath.Join(src, "logo.png"), 3, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	runConverter(t, src, out)
	first, err := os.ReadFile(filepath.Join(out, "logo.h"))
	if err != nil {
		t.Fatal(err)
	}

	runConverter(t, src, out)
	second, err := os.ReadFile(filepath.Join(out, "logo.h"))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("re-run produced different artifact bytes")
	}
}

func TestRun_CaseInsensitiveExtensions(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writePNG(t, filepath.Join(src, "SHOUT.PNG"), 1, 1, color.NRGBA{A: 255})

	tally := runConverter(t, src, out)
	if tally.Converted != 1 {
		t.Fatalf("uppercase extension not converted: %+v", tally)
	}
	if _, err := os.Stat(filepath.Join(out, "SHOUT.h")); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
}

func TestRun_TraversesHiddenDirs(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writePNG(t, filepath.Join(src, ".assets", "dot.png"), 1, 1, color.NRGBA{A: 255})

	tally := runConverter(t, src, out)
	if tally.Converted != 1 {
		t.Fatalf("hidden directory skipped: %+v", tally)
	}
}

func TestNew_MissingSource(t *testing.T) {
	if _, err := New(Config{
		SourceDir: filepath.Join(t.TempDir(), "nope"),
		OutputDir: t.TempDir(),
	}); err == nil {
		t.Fatal("expected error for missing source root")
	}
}

func TestNew_CreatesOutputRoot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deep", "nested", "out")
	if _, err := New(Config{SourceDir: t.TempDir(), OutputDir: out}); err != nil {
		t.Fatalf("new: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil || !info.IsDir() {
		t.Fatalf("output root not created: %v", err)
	}
}

func TestManifest_RecordsArtifacts(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writePNG(t, filepath.Join(src, "ui", "btn-ok.png"), 2, 1, color.NRGBA{G: 255, A: 255})

	c, err := New(Config{SourceDir: src, OutputDir: out})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Run(); err != nil {
		t.Fatal(err)
	}

	m := c.Manifest()
	a, ok := m.Artifacts["ui/btn-ok.png"]
	if !ok {
		t.Fatalf("manifest missing entry, have %v", m.Artifacts)
	}
	if a.Path != "ui/btn-ok.h" || a.Ident != "btn_ok" {
		t.Errorf("entry: %+v", a)
	}
	if a.Width != 2 || a.Height != 1 || a.Hash == "" {
		t.Errorf("entry metadata: %+v", a)
	}
	if m.Stats.TotalArtifacts != 1 || m.Stats.TotalPixels != 2 {
		t.Errorf("stats: %+v", m.Stats)
	}
}

func TestSource_ArtifactRel(t *testing.T) {
	s := Source{RelPath: filepath.Join("a", "b", "pic.jpeg")}
	if got := s.ArtifactRel(); got != filepath.Join("a", "b", "pic.h") {
		t.Errorf("ArtifactRel: got %q", got)
	}
}
