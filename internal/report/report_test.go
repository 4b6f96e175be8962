package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestReportRoundtrip(t *testing.T) {
	r := New("dreambooth", 512, 80, "jpeg")
	r.Entries = []Entry{
		{
			Source: "cats/portrait.jpg", Format: "jpeg",
			Width: 1024, Height: 768, Orientation: "landscape",
			Status: StatusOK, Output: "cats/portrait-512.jpg",
			InputSize: 100000, OutputSize: 40000, Hash: "abcd1234abcd1234",
		},
		{
			Source: "tiny.png", Format: "png",
			Width: 400, Height: 600, Orientation: "portrait",
			Status: StatusFailed, InputSize: 2000,
			Error: "resolution too low: image must be at least 512x512px, got 400x600",
		},
	}

	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := WriteJSON(r, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var r2 Report
	if err := json.Unmarshal(data, &r2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if r2.Version != SupportedReportVersion {
		t.Errorf("version: got %d, want %d", r2.Version, SupportedReportVersion)
	}
	if r2.Preset != "dreambooth" {
		t.Errorf("preset: got %q", r2.Preset)
	}
	if r2.Side != 512 || r2.Quality != 80 {
		t.Errorf("params: got side=%d quality=%d", r2.Side, r2.Quality)
	}
	if r2.Encoder != "jpeg" {
		t.Errorf("encoder: got %q", r2.Encoder)
	}
	if len(r2.Entries) != 2 {
		t.Fatalf("entries: got %d", len(r2.Entries))
	}

	// WriteJSON sorts entries by source.
	if r2.Entries[0].Source != "cats/portrait.jpg" {
		t.Errorf("entry order: got %q first", r2.Entries[0].Source)
	}

	if r2.Stats.Total != 2 || r2.Stats.Succeeded != 1 || r2.Stats.Failed != 1 {
		t.Errorf("stats: %+v", r2.Stats)
	}
	if r2.Stats.InputBytes != 102000 {
		t.Errorf("input bytes: got %d", r2.Stats.InputBytes)
	}
	if r2.Stats.OutputBytes != 40000 {
		t.Errorf("output bytes: got %d", r2.Stats.OutputBytes)
	}
}

func TestComputeStats(t *testing.T) {
	r := New("x", 512, 80, "jpeg")
	r.ComputeStats()
	if r.Stats.Total != 0 || r.Stats.Succeeded != 0 || r.Stats.Failed != 0 {
		t.Errorf("empty stats: %+v", r.Stats)
	}

	r.Entries = append(r.Entries,
		Entry{Status: StatusOK, InputSize: 10, OutputSize: 5},
		Entry{Status: StatusFailed, InputSize: 7},
	)
	r.ComputeStats()
	if r.Stats.Failed != 1 || r.Stats.Succeeded != 1 {
		t.Errorf("stats: %+v", r.Stats)
	}
	if r.Stats.InputBytes != 17 || r.Stats.OutputBytes != 5 {
		t.Errorf("bytes: %+v", r.Stats)
	}
}

func TestReportIgnoresUnknownFields(t *testing.T) {
	// Simulate a future report with extra fields.
	raw := `{
		"version": 1,
		"generated_at": "2025-01-01T00:00:00Z",
		"preset": "dreambooth",
		"side": 512,
		"quality": 80,
		"encoder": "mozjpeg",
		"future_field": "should be ignored",
		"entries": [
			{ "source": "a.jpg", "format": "jpeg", "status": "ok", "input_size": 1, "new_flag": true }
		],
		"stats": { "total": 1, "succeeded": 1, "failed": 0, "input_bytes": 1, "output_bytes": 0, "new_stat": 42 }
	}`

	var r Report
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if r.Version != 1 {
		t.Errorf("version: got %d", r.Version)
	}
	if len(r.Entries) != 1 || r.Entries[0].Source != "a.jpg" {
		t.Error("entries not parsed correctly")
	}
}
