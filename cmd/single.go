package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AnyUserName/dreamcrop/internal/encoder"
	"github.com/AnyUserName/dreamcrop/internal/pipeline"
	"github.com/AnyUserName/dreamcrop/internal/preset"
	"github.com/spf13/cobra"
)

var (
	singleOut     string
	singlePreset  string
	singleSide    int
	singleQuality int
	singleJPGExt  bool
)

var singleCmd = &cobra.Command{
	Use:   "single <input_file>",
	Short: "Resize and center-crop one image to a square",
	Long: `Processes a single image through the same pipeline as prepare:
shorter-axis resize, centered square crop, compressed JPEG output.

Without --out the result is written to
./processed-images/<stem>-<side><ext>.`,
	Args: cobra.ExactArgs(1),
	RunE: runSingle,
}

func init() {
	singleCmd.Flags().StringVarP(&singleOut, "out", "o", "", "output file path")
	singleCmd.Flags().StringVarP(&singlePreset, "preset", "p", "dreambooth", "processing preset")
	singleCmd.Flags().IntVarP(&singleSide, "size", "s", 0, "square side in px (0 = preset default)")
	singleCmd.Flags().IntVarP(&singleQuality, "quality", "q", 0, "JPEG quality 1-100 (0 = preset default)")
	singleCmd.Flags().BoolVar(&singleJPGExt, "jpg-ext", false, "name the output .jpg instead of copying the source extension")
	rootCmd.AddCommand(singleCmd)
}

func runSingle(cmd *cobra.Command, args []string) error {
	inPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	pr := preset.Get(singlePreset)
	if singleSide > 0 {
		pr = pr.WithSide(singleSide)
	}
	if singleQuality > 0 {
		pr.Quality = singleQuality
	}

	outPath := singleOut
	if outPath == "" {
		name := pipeline.OutputName(filepath.Base(inPath), pr.Side, singleJPGExt)
		outPath = filepath.Join("processed-images", name)
	}

	registry := encoder.NewRegistry()
	enc := registry.Best()
	logVerbose("%s", registry.String())
	logVerbose("preset: %s (side=%d, min=%d, quality=%d)", pr.Name, pr.Side, pr.MinSide, pr.Quality)

	entry, err := pipeline.ProcessFile(inPath, outPath, pr, enc)
	if err != nil {
		return err
	}

	fmt.Printf("  ✓ %s (%dx%d %s) → %s (%s)\n",
		filepath.Base(inPath), entry.Width, entry.Height, entry.Orientation,
		outPath, formatBytes(entry.OutputSize))
	return nil
}
