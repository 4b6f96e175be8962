package encoder

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x % 256), G: uint8(y % 256), B: 200, A: 255,
			})
		}
	}
	return img
}

func TestJPEGEncoder(t *testing.T) {
	enc := &JPEGEncoder{}
	if !enc.Available() {
		t.Fatal("stdlib encoder must always be available")
	}
	if enc.Extension() != "jpg" {
		t.Errorf("extension: got %q", enc.Extension())
	}

	data, err := enc.Encode(testImage(64, 64), 80)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty output")
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 64 {
		t.Errorf("output dims: got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestJPEGEncoder_QualityClamp(t *testing.T) {
	enc := &JPEGEncoder{}
	// Out-of-range quality falls back to the default instead of failing.
	for _, q := range []int{0, -5, 101} {
		if _, err := enc.Encode(testImage(8, 8), q); err != nil {
			t.Errorf("quality %d: %v", q, err)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	best := r.Best()
	if best == nil {
		t.Fatal("no encoder selected")
	}

	// The stdlib fallback is always in the list, whatever is installed.
	var hasStdlib bool
	for _, name := range r.Available() {
		if name == "jpeg" {
			hasStdlib = true
		}
	}
	if !hasStdlib {
		t.Errorf("stdlib jpeg missing from %v", r.Available())
	}

	if r.String() == "no encoders available" {
		t.Error("registry reports no encoders")
	}
}
