package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogo-boot/image-2-c-array/internal/hasher"
	"github.com/gogo-boot/image-2-c-array/internal/header"
	"github.com/gogo-boot/image-2-c-array/internal/pipeline"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <source_dir> <output_dir>",
	Short: "Verify that an output tree matches its source tree",
	Long: `Checks every eligible image under the source directory against the
output directory: reports artifacts that are missing, stale (content
differs from a fresh conversion), or orphaned (no surviving source).
Exits non-zero if anything is out of sync.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	sourceDir, outputDir := args[0], args[1]

	if info, err := os.Stat(sourceDir); err != nil || !info.IsDir() {
		return fmt.Errorf("source directory not found: %s", sourceDir)
	}

	sources, err := pipeline.ScanImages(sourceDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", sourceDir, err)
	}

	var findings []string
	expected := make(map[string]bool, len(sources))

	for _, src := range sources {
		outRel := src.ArtifactRel()
		expected[filepath.ToSlash(outRel)] = true

		f, err := os.Open(filepath.Join(outputDir, outRel))
		if err != nil {
			findings = append(findings, fmt.Sprintf("missing artifact for %s", src.RelPath))
			continue
		}
		diskHash, err := hasher.ContentHashReader(f, hasher.HexLen)
		f.Close()
		if err != nil {
			findings = append(findings, fmt.Sprintf("unreadable artifact %s: %v", outRel, err))
			continue
		}

		r, err := pipeline.Render(src)
		if err != nil {
			findings = append(findings, fmt.Sprintf("source no longer converts: %s: %v", src.RelPath, err))
			continue
		}
		if hasher.ContentHash(r.Data, hasher.HexLen) != diskHash {
			findings = append(findings, fmt.Sprintf("stale artifact %s (source %s changed)", outRel, src.RelPath))
		}
		logVerbose("ok: %s", outRel)
	}

	orphans, err := findOrphans(outputDir, expected)
	if err != nil {
		return fmt.Errorf("scan output tree: %w", err)
	}
	findings = append(findings, orphans...)

	if len(findings) == 0 {
		fmt.Printf("  ✓ %d artifacts in sync with %d source images\n", len(expected), len(sources))
		return nil
	}

	fmt.Printf("  ✗ output tree has %d problem(s):\n", len(findings))
	for _, f := range findings {
		fmt.Printf("    • %s\n", f)
	}
	return fmt.Errorf("check failed with %d problems", len(findings))
}

// findOrphans walks the output tree for generated headers that no
// source image maps to anymore.
func findOrphans(outputDir string, expected map[string]bool) ([]string, error) {
	var orphans []string
	err := filepath.Walk(outputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == outputDir {
				return filepath.SkipAll
			}
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, header.Extension) {
			return nil
		}
		rel, err := filepath.Rel(outputDir, path)
		if err != nil {
			return err
		}
		if !expected[filepath.ToSlash(rel)] {
			orphans = append(orphans, fmt.Sprintf("orphan artifact %s", rel))
		}
		return nil
	})
	return orphans, err
}
