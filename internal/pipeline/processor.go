package pipeline

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/dreamcrop/internal/encoder"
	"github.com/AnyUserName/dreamcrop/internal/hasher"
	"github.com/AnyUserName/dreamcrop/internal/imagemeta"
	"github.com/AnyUserName/dreamcrop/internal/preset"
	"github.com/AnyUserName/dreamcrop/internal/report"
)

// OutputName derives the output filename from a source filename:
// the square side is inserted before the extension, splitting on the
// last dot ("a.b.jpg" → "a.b-512.jpg"). When forceJPG is set the
// source extension is replaced with ".jpg" to match the encoded bytes.
func OutputName(name string, side int, forceJPG bool) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if forceJPG {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s-%d%s", stem, side, ext)
}

// transform runs the in-memory stages on a decoded image: minimum
// resolution check, shorter-axis resize, centered square crop, JPEG
// encode. dims must describe img.
func transform(img image.Image, dims imagemeta.Dimensions, pr preset.Preset, enc encoder.Encoder) ([]byte, error) {
	if err := CheckResolution(dims, pr.MinSide); err != nil {
		return nil, err
	}
	resized := Resize(img, dims, pr.Side)
	square := CropSquare(resized, pr.Side)
	return enc.Encode(square, pr.Quality)
}

// processImage handles a single source image end to end and returns a
// settled report entry. Failures are captured in the entry, never
// propagated, so one bad file cannot take down the batch.
func processImage(src Source, cfg Config, enc encoder.Encoder) report.Entry {
	entry := report.Entry{
		Source:    src.RelPath,
		Format:    src.Format,
		InputSize: src.Size,
		Status:    report.StatusFailed,
	}

	img, err := imagemeta.Load(src.AbsPath)
	if err != nil {
		entry.Error = fmt.Sprintf("decode %s: %v", src.RelPath, err)
		return entry
	}

	dims := imagemeta.FromImage(img)
	entry.Width = dims.Width
	entry.Height = dims.Height
	entry.Orientation = dims.Orientation().String()

	data, err := transform(img, dims, cfg.Preset, enc)
	if err != nil {
		entry.Error = fmt.Sprintf("%s: %v", src.RelPath, err)
		return entry
	}

	// Mirror the input's subdirectory structure into the output dir.
	outName := OutputName(src.Name, cfg.Preset.Side, cfg.ForceJPGExt)
	relOut := filepath.ToSlash(filepath.Join(filepath.Dir(src.RelPath), outName))

	outPath := filepath.Join(cfg.OutputDir, filepath.FromSlash(relOut))
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			entry.Error = fmt.Sprintf("create dir for %s: %v", relOut, err)
			return entry
		}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		entry.Error = fmt.Sprintf("write %s: %v", relOut, err)
		return entry
	}

	entry.Status = report.StatusOK
	entry.Output = relOut
	entry.OutputSize = int64(len(data))
	entry.Hash = hasher.ContentHash(data, 16)
	return entry
}

// ProcessFile runs the full pipeline for one image and writes the
// result to outPath. Used by single-file mode; the returned entry
// carries dimensions and hash for reporting even on success.
func ProcessFile(inPath, outPath string, pr preset.Preset, enc encoder.Encoder) (report.Entry, error) {
	entry := report.Entry{
		Source: inPath,
		Status: report.StatusFailed,
	}

	info, err := os.Stat(inPath)
	if err != nil {
		entry.Error = err.Error()
		return entry, err
	}
	entry.InputSize = info.Size()

	img, err := imagemeta.Load(inPath)
	if err != nil {
		err = fmt.Errorf("decode %s: %w", inPath, err)
		entry.Error = err.Error()
		return entry, err
	}

	dims := imagemeta.FromImage(img)
	entry.Width = dims.Width
	entry.Height = dims.Height
	entry.Orientation = dims.Orientation().String()

	data, err := transform(img, dims, pr, enc)
	if err != nil {
		entry.Error = err.Error()
		return entry, err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			entry.Error = err.Error()
			return entry, err
		}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		entry.Error = err.Error()
		return entry, err
	}

	entry.Status = report.StatusOK
	entry.Output = outPath
	entry.OutputSize = int64(len(data))
	entry.Hash = hasher.ContentHash(data, 16)
	return entry, nil
}
