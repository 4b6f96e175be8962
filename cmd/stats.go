package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/dreamcrop/internal/report"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_report>",
	Short: "Display statistics for a prepared dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for the report inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, report.FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	printStats(&r)
	return nil
}

func printStats(r *report.Report) {
	fmt.Println()
	fmt.Printf("  Report version: %d\n", r.Version)
	fmt.Printf("  Generated:      %s\n", r.GeneratedAt)
	fmt.Printf("  Preset:         %s\n", r.Preset)
	fmt.Printf("  Output square:  %d×%d\n", r.Side, r.Side)
	fmt.Printf("  Quality:        %d (%s)\n", r.Quality, r.Encoder)
	fmt.Println()

	s := r.Stats
	fmt.Printf("  Images:         %d\n", s.Total)
	fmt.Printf("  Succeeded:      %d\n", s.Succeeded)
	fmt.Printf("  Failed:         %d\n", s.Failed)
	fmt.Printf("  Input size:     %s\n", formatBytes(s.InputBytes))
	fmt.Printf("  Output size:    %s\n", formatBytes(s.OutputBytes))

	if s.InputBytes > 0 {
		ratio := float64(s.OutputBytes) / float64(s.InputBytes) * 100
		fmt.Printf("  Compression:    %.1f%% of original\n", ratio)
	}
	fmt.Println()

	// Orientation breakdown of the sources that decoded.
	orientStats := map[string]int{}
	for _, e := range r.Entries {
		if e.Orientation != "" {
			orientStats[e.Orientation]++
		}
	}
	fmt.Println("  Orientation breakdown:")
	for _, o := range []string{"landscape", "portrait"} {
		if n, ok := orientStats[o]; ok {
			fmt.Printf("    %-10s  %4d files\n", o, n)
		}
	}
	fmt.Println()

	// Per-format breakdown.
	formatStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, e := range r.Entries {
		fs := formatStats[e.Format]
		fs.count++
		fs.bytes += e.InputSize
		formatStats[e.Format] = fs
	}
	var formats []string
	for f := range formatStats {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	fmt.Println("  Source format breakdown:")
	for _, f := range formats {
		fs := formatStats[f]
		fmt.Printf("    %-6s  %4d files  %s\n", f, fs.count, formatBytes(fs.bytes))
	}
	fmt.Println()

	if s.Failed > 0 {
		fmt.Println("  Failures:")
		for _, e := range r.Entries {
			if e.Status != report.StatusOK {
				fmt.Printf("    ✗ %-40s %s\n", truncPath(e.Source, 40), e.Error)
			}
		}
		fmt.Println()
	}
}
