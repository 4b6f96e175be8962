package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AnyUserName/dreamcrop/internal/pipeline"
	"github.com/AnyUserName/dreamcrop/internal/preset"
	"github.com/AnyUserName/dreamcrop/internal/report"
	"github.com/spf13/cobra"
)

var (
	prepareOutDir  string
	preparePreset  string
	prepareSide    int
	prepareQuality int
	prepareWorkers int
	prepareJPGExt  bool
	prepareReport  bool
)

var prepareCmd = &cobra.Command{
	Use:   "prepare <input_dir>",
	Short: "Resize and center-crop all images in a directory to squares",
	Long: `Scans the input directory for images (png, jpg, jpeg, webp, gif,
bmp, tiff), resizes each along its shorter axis to the target side,
center-crops to an exact square, and writes compressed JPEGs.

Output filenames insert the side before the extension:
portrait.jpg → portrait-512.jpg. Inputs smaller than the minimum
resolution on either axis are rejected and recorded in the report.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().StringVarP(&prepareOutDir, "out", "o", "./processed-images", "output directory")
	prepareCmd.Flags().StringVarP(&preparePreset, "preset", "p", "dreambooth", "processing preset")
	prepareCmd.Flags().IntVarP(&prepareSide, "size", "s", 0, "square side in px (0 = preset default)")
	prepareCmd.Flags().IntVarP(&prepareQuality, "quality", "q", 0, "JPEG quality 1-100 (0 = preset default)")
	prepareCmd.Flags().IntVarP(&prepareWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	prepareCmd.Flags().BoolVar(&prepareJPGExt, "jpg-ext", false, "name outputs .jpg instead of copying the source extension")
	prepareCmd.Flags().BoolVar(&prepareReport, "report", true, "write dreamcrop.report.json to the output directory")
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	// Resolve absolute paths.
	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(prepareOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	// Load preset.
	pr := preset.Get(preparePreset)
	if prepareSide > 0 {
		pr = pr.WithSide(prepareSide)
	}
	if prepareQuality > 0 {
		pr.Quality = prepareQuality
	}

	logVerbose("input:  %s", absInput)
	logVerbose("output: %s", absOutput)
	logVerbose("preset: %s (side=%d, min=%d, quality=%d)", pr.Name, pr.Side, pr.MinSide, pr.Quality)

	// Create output dir.
	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Run pipeline.
	p := pipeline.New(pipeline.Config{
		InputDir:    absInput,
		OutputDir:   absOutput,
		Preset:      pr,
		Workers:     prepareWorkers,
		Verbose:     verbose,
		ForceJPGExt: prepareJPGExt,
	})

	r, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	// Write report.
	if prepareReport {
		reportPath := filepath.Join(absOutput, report.FileName)
		if err := report.WriteJSON(r, reportPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	printPrepareReport(r, time.Since(start))

	return nil
}

func printPrepareReport(r *report.Report, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║             dreamcrop prepare complete           ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	s := r.Stats
	fmt.Printf("  Preset:      %s (%d×%d, q%d, %s)\n", r.Preset, r.Side, r.Side, r.Quality, r.Encoder)
	fmt.Printf("  Images:      %d\n", s.Total)
	fmt.Printf("  Succeeded:   %d\n", s.Succeeded)
	if s.Failed > 0 {
		fmt.Printf("  Failed:      %d\n", s.Failed)
	}
	fmt.Printf("  Input size:  %s\n", formatBytes(s.InputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(s.OutputBytes))
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()

	if s.Failed > 0 {
		fmt.Printf("  Failures:\n")
		for _, e := range r.Entries {
			if e.Status != report.StatusOK {
				fmt.Printf("    ✗ %-40s %s\n", truncPath(e.Source, 40), e.Error)
			}
		}
		fmt.Println()
	}
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

func truncPath(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
