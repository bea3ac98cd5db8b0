package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "img2c",
	Short: "Convert image trees into RGB565 C arrays for firmware builds",
	Long: `img2c — turns a directory of images (png, jpg, jpeg, bmp, gif, tiff)
into C header files with RGB565 pixel arrays, ready for inclusion in
ESP32-class firmware, preserving the directory structure.

Each header carries width/height constants, the packed pixel array,
and a descriptor struct named after the source file.`,
	Version:      version,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"img2c %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[img2c] "+format+"\n", args...)
	}
}
