package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/dreamcrop/internal/hasher"
	"github.com/AnyUserName/dreamcrop/internal/imagemeta"
	"github.com/AnyUserName/dreamcrop/internal/report"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report_path>",
	Short: "Validate a run report and check the outputs on disk",
	Long: `Checks a dreamcrop report for internal consistency and verifies
every successful entry against disk: file present, size and content
hash matching, decoded dimensions exactly square.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	reportPath := args[0]

	data, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	baseDir := filepath.Dir(reportPath)
	errors := validateReport(&r, baseDir)

	if len(errors) == 0 {
		fmt.Println("  ✓ Report is valid")
		fmt.Printf("  ✓ %d entries, %d outputs — all files present and %d×%d\n",
			r.Stats.Total, r.Stats.Succeeded, r.Side, r.Side)
		return nil
	}

	fmt.Printf("  ✗ Report has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateReport(r *report.Report, baseDir string) []string {
	var errs []string

	if r.Version != report.SupportedReportVersion {
		errs = append(errs, fmt.Sprintf("unsupported report version: %d", r.Version))
	}
	if r.Side <= 0 {
		errs = append(errs, fmt.Sprintf("invalid output side: %d", r.Side))
	}

	seenOutputs := map[string]bool{}
	var succeeded, failed int
	for i, e := range r.Entries {
		switch e.Status {
		case report.StatusOK:
			succeeded++
			errs = append(errs, validateEntry(i, e, r.Side, baseDir, seenOutputs)...)
		case report.StatusFailed:
			failed++
			if e.Error == "" {
				errs = append(errs, fmt.Sprintf("entry[%d] %q: failed without an error message", i, e.Source))
			}
		default:
			errs = append(errs, fmt.Sprintf("entry[%d] %q: unknown status %q", i, e.Source, e.Status))
		}
	}

	// Verify stats consistency.
	if r.Stats.Total != len(r.Entries) {
		errs = append(errs, fmt.Sprintf("stats.total mismatch: %d != %d", r.Stats.Total, len(r.Entries)))
	}
	if r.Stats.Succeeded != succeeded {
		errs = append(errs, fmt.Sprintf("stats.succeeded mismatch: %d != %d", r.Stats.Succeeded, succeeded))
	}
	if r.Stats.Failed != failed {
		errs = append(errs, fmt.Sprintf("stats.failed mismatch: %d != %d", r.Stats.Failed, failed))
	}

	return errs
}

func validateEntry(i int, e report.Entry, side int, baseDir string, seenOutputs map[string]bool) []string {
	var errs []string

	if e.Width <= 0 || e.Height <= 0 {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: invalid source dimensions %dx%d",
			i, e.Source, e.Width, e.Height))
	}
	if e.Orientation != "landscape" && e.Orientation != "portrait" {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: invalid orientation %q", i, e.Source, e.Orientation))
	}
	if e.Hash == "" {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: missing hash", i, e.Source))
	}
	if e.Output == "" {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: missing output path", i, e.Source))
		return errs
	}

	if seenOutputs[e.Output] {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: duplicate output %q", i, e.Source, e.Output))
	}
	seenOutputs[e.Output] = true

	fullPath := filepath.Join(baseDir, filepath.FromSlash(e.Output))
	info, err := os.Stat(fullPath)
	if err != nil {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: output not found: %s", i, e.Source, e.Output))
		return errs
	}
	if e.OutputSize > 0 && info.Size() != e.OutputSize {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: size mismatch: report=%d, disk=%d",
			i, e.Source, e.OutputSize, info.Size()))
	}

	f, err := os.Open(fullPath)
	if err != nil {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: open output: %v", i, e.Source, err))
		return errs
	}
	defer f.Close()

	if e.Hash != "" {
		diskHash, err := hasher.ContentHashReader(f, len(e.Hash))
		if err != nil {
			errs = append(errs, fmt.Sprintf("entry[%d] %q: hash output: %v", i, e.Source, err))
		} else if diskHash != e.Hash {
			errs = append(errs, fmt.Sprintf("entry[%d] %q: hash mismatch: report=%s, disk=%s",
				i, e.Source, e.Hash, diskHash))
		}
	}

	if _, err := f.Seek(0, 0); err != nil {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: rewind output: %v", i, e.Source, err))
		return errs
	}
	dims, err := imagemeta.Read(f)
	if err != nil {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: decode output: %v", i, e.Source, err))
	} else if dims.Width != side || dims.Height != side {
		errs = append(errs, fmt.Sprintf("entry[%d] %q: output is %dx%d, want %dx%d",
			i, e.Source, dims.Width, dims.Height, side, side))
	}

	return errs
}
