package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gogo-boot/image-2-c-array/internal/header"
)

// Source represents a discovered image file.
type Source struct {
	// AbsPath is the path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the source root.
	RelPath string
	// Stem is the file name without directory or extension.
	Stem string
	// Size is the file size in bytes.
	Size int64
}

// ArtifactRel returns the mirrored output path for this source: the
// same source-relative path with the image extension replaced.
func (s Source) ArtifactRel() string {
	ext := filepath.Ext(s.RelPath)
	return s.RelPath[:len(s.RelPath)-len(ext)] + header.Extension
}

// imageExtensions is the immutable set of convertible extensions,
// matched case-insensitively.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
}

// ScanImages walks the source root and returns every eligible image
// file at any depth. Hidden directories are not special-cased: the
// traversal is exhaustive.
func ScanImages(sourceDir string) ([]Source, error) {
	var sources []Source

	err := filepath.Walk(sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}

		name := info.Name()
		// A name that is nothing but an extension (".png") has no stem
		// to derive an identifier from; skip it.
		if len(name) == len(ext) {
			return nil
		}

		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		sources = append(sources, Source{
			AbsPath: path,
			RelPath: relPath,
			Stem:    name[:len(name)-len(filepath.Ext(name))],
			Size:    info.Size(),
		})

		return nil
	})

	return sources, err
}
