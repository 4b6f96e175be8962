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
	Use:   "dreamcrop",
	Short: "Batch square-crop preparation for fine-tuning datasets",
	Long: `dreamcrop — turns a directory of photos into uniform 512×512 JPEG
training images for Dreambooth-style fine-tuning.

Each image is resized along its shorter axis, center-cropped to an
exact square, and re-encoded as compressed JPEG. Undersized inputs are
rejected; a run report records every file's outcome.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"dreamcrop %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[dreamcrop] "+format+"\n", args...)
	}
}
