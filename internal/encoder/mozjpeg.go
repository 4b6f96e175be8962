package encoder

import (
	"fmt"
	"image"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"golang.org/x/image/bmp"
)

// Atomic counter for unique temp file names across goroutines.
var tempCounter atomic.Int64

// MozJPEGEncoder encodes images by shelling out to mozjpeg's cjpeg.
// This approach avoids CGO while still producing smaller, progressive,
// Huffman-optimized JPEGs than the standard library.
// Install: brew install mozjpeg / apt install mozjpeg
type MozJPEGEncoder struct {
	once      sync.Once
	available bool
	cjpegPath string
}

func (e *MozJPEGEncoder) Name() string      { return "mozjpeg" }
func (e *MozJPEGEncoder) Extension() string { return "jpg" }

func (e *MozJPEGEncoder) Available() bool {
	e.once.Do(func() {
		path, err := exec.LookPath("cjpeg")
		if err == nil {
			e.available = true
			e.cjpegPath = path
		}
	})
	return e.available
}

func (e *MozJPEGEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if !e.Available() {
		return nil, fmt.Errorf("cjpeg not found in PATH; install with: brew install mozjpeg")
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}

	// Write source as BMP to a temp file (cjpeg reads PPM/BMP/Targa).
	// Use atomic counter to ensure unique filenames across goroutines.
	id := tempCounter.Add(1)
	srcFile, err := os.CreateTemp("", fmt.Sprintf("dreamcrop_src_%d_*.bmp", id))
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	srcPath := srcFile.Name()
	dstFile, err := os.CreateTemp("", fmt.Sprintf("dreamcrop_dst_%d_*.jpg", id))
	if err != nil {
		srcFile.Close()
		os.Remove(srcPath)
		return nil, fmt.Errorf("create temp: %w", err)
	}
	dstPath := dstFile.Name()
	dstFile.Close()
	defer os.Remove(srcPath)
	defer os.Remove(dstPath)

	if err := bmp.Encode(srcFile, img); err != nil {
		srcFile.Close()
		return nil, fmt.Errorf("encode temp bmp: %w", err)
	}
	srcFile.Close()

	cmd := exec.Command(e.cjpegPath,
		"-quality", fmt.Sprintf("%d", quality),
		"-optimize",
		"-progressive",
		"-outfile", dstPath,
		srcPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("cjpeg: %w: %s", err, string(out))
	}

	return os.ReadFile(dstPath)
}
