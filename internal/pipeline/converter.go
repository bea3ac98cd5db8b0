// Package pipeline mirrors a source tree of raster images into a tree
// of generated C headers carrying RGB565 pixel arrays.
package pipeline

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/gogo-boot/image-2-c-array/internal/hasher"
	"github.com/gogo-boot/image-2-c-array/internal/header"
	"github.com/gogo-boot/image-2-c-array/internal/manifest"
	"github.com/gogo-boot/image-2-c-array/internal/rgb565"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Config holds all parameters for a conversion run.
type Config struct {
	SourceDir string
	OutputDir string
	Verbose   bool
}

// Tally counts per-file outcomes across one run.
type Tally struct {
	Converted int
	Errors    int
}

// Converter orchestrates discovery, decoding, generation, and
// persistence across an entire directory tree. Files are processed
// one at a time; each conversion is independent of the others, so a
// per-file failure never aborts the run.
type Converter struct {
	cfg Config
	man *manifest.Manifest
}

// New validates both roots before any traversal: a missing source
// root is fatal, a missing output root is created (idempotent).
func New(cfg Config) (*Converter, error) {
	info, err := os.Stat(cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("source directory not found: %s", cfg.SourceDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source is not a directory: %s", cfg.SourceDir)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Converter{cfg: cfg, man: manifest.New(cfg.SourceDir)}, nil
}

// Run converts every eligible file under the source root and returns
// the tally. Decode and write failures are reported on stderr,
// counted, and skipped; only scan failures abort the run.
func (c *Converter) Run() (Tally, error) {
	sources, err := ScanImages(c.cfg.SourceDir)
	if err != nil {
		return Tally{}, fmt.Errorf("scan %s: %w", c.cfg.SourceDir, err)
	}

	var tally Tally
	for _, src := range sources {
		if err := c.convert(src); err != nil {
			fmt.Fprintf(os.Stderr, "[img2c] error: %s: %v\n", src.RelPath, err)
			tally.Errors++
			continue
		}
		tally.Converted++
	}

	c.man.Stats.Errors = tally.Errors
	return tally, nil
}

// Manifest returns the record of the artifacts written by Run.
func (c *Converter) Manifest() *manifest.Manifest {
	c.man.ComputeStats()
	return c.man
}

// Rendered is the in-memory result of converting one source file.
type Rendered struct {
	Ident  string
	Width  int
	Height int
	Data   []byte
}

// Render decodes src and assembles its artifact text without touching
// the output tree. Used by the converter and by staleness checks.
func Render(src Source) (Rendered, error) {
	f, err := os.Open(src.AbsPath)
	if err != nil {
		return Rendered{}, fmt.Errorf("open: %w", err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return Rendered{}, fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	r := Rendered{
		Ident:  header.DeriveIdent(src.Stem),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	pixels := rgb565.FromImage(img)
	r.Data = header.Generate(r.Ident, filepath.Base(src.RelPath), r.Width, r.Height, pixels)
	return r, nil
}

// convert runs one file end to end: decode, pack, generate, write.
func (c *Converter) convert(src Source) error {
	r, err := Render(src)
	if err != nil {
		return err
	}

	outRel := src.ArtifactRel()
	outPath := filepath.Join(c.cfg.OutputDir, outRel)
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output subdir: %w", err)
		}
	}
	if err := os.WriteFile(outPath, r.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outRel, err)
	}

	hash := hasher.ContentHash(r.Data, hasher.HexLen)
	c.man.Artifacts[filepath.ToSlash(src.RelPath)] = manifest.Artifact{
		Path:   filepath.ToSlash(outRel),
		Ident:  r.Ident,
		Width:  r.Width,
		Height: r.Height,
		Size:   int64(len(r.Data)),
		Hash:   hash,
	}

	if c.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[img2c] %s -> %s (%dx%d, %s)\n",
			src.RelPath, outRel, r.Width, r.Height, hash[:8])
	}
	return nil
}
