package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gogo-boot/image-2-c-array/internal/header"
	"github.com/gogo-boot/image-2-c-array/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a converted output tree",
	Long: `Summarizes a tree of generated headers: artifact count, bytes,
packed pixels, the largest artifacts, and duplicate identifiers.
Reads the run manifest when one is present, otherwise parses the
headers themselves.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// artifactInfo is one generated header's metadata, whichever way it
// was obtained.
type artifactInfo struct {
	Rel    string
	Ident  string
	Width  int
	Height int
	Size   int64
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	var artifacts []artifactInfo
	if info.IsDir() {
		manifestPath := filepath.Join(path, manifest.FileName)
		if _, err := os.Stat(manifestPath); err == nil {
			artifacts, err = artifactsFromManifest(manifestPath)
			if err != nil {
				return err
			}
			logVerbose("using manifest %s", manifestPath)
		} else {
			artifacts, err = artifactsFromTree(path)
			if err != nil {
				return err
			}
			logVerbose("no manifest, parsed %d headers", len(artifacts))
		}
	} else {
		artifacts, err = artifactsFromManifest(path)
		if err != nil {
			return err
		}
	}

	printArtifactStats(artifacts)
	return nil
}

func artifactsFromManifest(path string) ([]artifactInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Version != manifest.SupportedManifestVersion {
		return nil, fmt.Errorf("unsupported manifest version: %d", m.Version)
	}

	var artifacts []artifactInfo
	for _, a := range m.Artifacts {
		artifacts = append(artifacts, artifactInfo{
			Rel:    a.Path,
			Ident:  a.Ident,
			Width:  a.Width,
			Height: a.Height,
			Size:   a.Size,
		})
	}
	return artifacts, nil
}

func artifactsFromTree(dir string) ([]artifactInfo, error) {
	var artifacts []artifactInfo
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, header.Extension) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		m, err := header.ParseMeta(data)
		if err != nil {
			// Not one of ours; a converted tree may hold other headers.
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, artifactInfo{
			Rel:    filepath.ToSlash(rel),
			Ident:  m.Ident,
			Width:  m.Width,
			Height: m.Height,
			Size:   info.Size(),
		})
		return nil
	})
	return artifacts, err
}

func printArtifactStats(artifacts []artifactInfo) {
	var totalBytes, totalPixels int64
	for _, a := range artifacts {
		totalBytes += a.Size
		totalPixels += int64(a.Width) * int64(a.Height)
	}

	fmt.Println()
	fmt.Printf("  Artifacts:     %d\n", len(artifacts))
	fmt.Printf("  Total size:    %s\n", formatBytes(totalBytes))
	fmt.Printf("  Packed pixels: %d (%s of RGB565 data)\n", totalPixels, formatBytes(totalPixels*2))
	fmt.Println()

	if len(artifacts) > 0 {
		sorted := make([]artifactInfo, len(artifacts))
		copy(sorted, artifacts)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })
		n := len(sorted)
		if n > 10 {
			n = 10
		}
		fmt.Printf("  Top %d largest:\n", n)
		for _, a := range sorted[:n] {
			fmt.Printf("    %-40s %4dx%-4d %8s\n", a.Rel, a.Width, a.Height, formatBytes(a.Size))
		}
		fmt.Println()
	}

	// Two stems that normalize to the same identifier produce headers
	// whose symbols collide if ever included together.
	byIdent := map[string][]string{}
	for _, a := range artifacts {
		byIdent[a.Ident] = append(byIdent[a.Ident], a.Rel)
	}
	var warnings []string
	for ident, rels := range byIdent {
		if len(rels) > 1 {
			sort.Strings(rels)
			warnings = append(warnings, fmt.Sprintf("identifier %q shared by: %s", ident, strings.Join(rels, ", ")))
		}
	}
	if len(warnings) > 0 {
		sort.Strings(warnings)
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
		fmt.Println()
	}
}
