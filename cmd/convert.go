package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gogo-boot/image-2-c-array/internal/manifest"
	"github.com/gogo-boot/image-2-c-array/internal/pipeline"
	"github.com/spf13/cobra"
)

var convertManifest bool

var convertCmd = &cobra.Command{
	Use:   "convert <source_dir> <output_dir>",
	Short: "Convert every image under a directory tree to C headers",
	Long: `Recursively scans the source directory for supported images
(png, jpg, jpeg, bmp, gif, tiff), converts each to an RGB565 C header,
and writes it to the mirrored path under the output directory with the
extension replaced by .h.

A file that fails to decode or write is reported and skipped; the run
continues and exits non-zero at the end.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertManifest, "manifest", false,
		"write "+manifest.FileName+" to the output directory")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(_ *cobra.Command, args []string) error {
	sourceDir, outputDir := args[0], args[1]
	start := time.Now()

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("resolve source path: %w", err)
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	logVerbose("source: %s", absSource)
	logVerbose("output: %s", absOutput)

	conv, err := pipeline.New(pipeline.Config{
		SourceDir: absSource,
		OutputDir: absOutput,
		Verbose:   verbose,
	})
	if err != nil {
		return err
	}

	tally, err := conv.Run()
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if convertManifest {
		m := conv.Manifest()
		if err := manifest.WriteJSON(m, filepath.Join(absOutput, manifest.FileName)); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}

	printConvertReport(conv.Manifest(), tally, time.Since(start))

	if tally.Errors > 0 {
		return fmt.Errorf("%d of %d images failed to convert", tally.Errors, tally.Converted+tally.Errors)
	}
	return nil
}

func printConvertReport(m *manifest.Manifest, tally pipeline.Tally, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("Conversion complete!")
	fmt.Printf("  Images converted: %d\n", tally.Converted)
	fmt.Printf("  Errors:           %d\n", tally.Errors)
	fmt.Printf("  Output size:      %s\n", formatBytes(m.Stats.TotalBytes))
	fmt.Printf("  Pixels packed:    %d\n", m.Stats.TotalPixels)
	fmt.Printf("  Time:             %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
