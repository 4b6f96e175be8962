package report

// Report is the machine-readable record of one dreamcrop run.
type Report struct {
	Version     int     `json:"version"`
	GeneratedAt string  `json:"generated_at"`
	Preset      string  `json:"preset"`
	Side        int     `json:"side"`
	Quality     int     `json:"quality"`
	Encoder     string  `json:"encoder"`
	Entries     []Entry `json:"entries"`
	Stats       Stats   `json:"stats"`
}

// Entry status values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Entry captures the settled outcome for a single source image.
// One file's failure is recorded here instead of aborting the batch.
type Entry struct {
	Source      string `json:"source"`                // path relative to the input dir
	Format      string `json:"format"`                // source format (jpeg, png, webp, ...)
	Width       int    `json:"width,omitempty"`       // source width in px (0 when decode failed)
	Height      int    `json:"height,omitempty"`      // source height in px
	Orientation string `json:"orientation,omitempty"` // "landscape" or "portrait"
	Status      string `json:"status"`                // "ok" or "failed"
	Error       string `json:"error,omitempty"`
	Output      string `json:"output,omitempty"`      // path relative to the output dir
	InputSize   int64  `json:"input_size"`            // source bytes on disk
	OutputSize  int64  `json:"output_size,omitempty"` // encoded JPEG bytes
	Hash        string `json:"hash,omitempty"`        // first 16 hex chars of xxhash64
}

// Stats aggregates run metrics.
type Stats struct {
	Total       int   `json:"total"`
	Succeeded   int   `json:"succeeded"`
	Failed      int   `json:"failed"`
	InputBytes  int64 `json:"input_bytes"`
	OutputBytes int64 `json:"output_bytes"`
}

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1
