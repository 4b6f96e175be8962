package report

import (
	"encoding/json"
	"os"
	"sort"
	"time"
)

// FileName is the report filename written into the output directory.
const FileName = "dreamcrop.report.json"

// New creates an empty report with defaults.
func New(presetName string, side, quality int, encoderName string) *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Preset:      presetName,
		Side:        side,
		Quality:     quality,
		Encoder:     encoderName,
	}
}

// ComputeStats recalculates aggregate statistics from entries.
func (r *Report) ComputeStats() {
	var s Stats
	s.Total = len(r.Entries)
	for _, e := range r.Entries {
		s.InputBytes += e.InputSize
		if e.Status == StatusOK {
			s.Succeeded++
			s.OutputBytes += e.OutputSize
		} else {
			s.Failed++
		}
	}
	r.Stats = s
}

// WriteJSON serializes the report to a JSON file with stable ordering.
func WriteJSON(r *Report, path string) error {
	sort.Slice(r.Entries, func(i, j int) bool {
		return r.Entries[i].Source < r.Entries[j].Source
	})
	r.ComputeStats()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
