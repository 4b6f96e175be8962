package pipeline

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/AnyUserName/dreamcrop/internal/imagemeta"
)

func gradientImg(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func TestCheckResolution(t *testing.T) {
	cases := []struct {
		w, h    int
		minSide int
		wantErr bool
	}{
		{512, 512, 512, false},
		{1024, 768, 512, false},
		{400, 600, 512, true},  // width too small
		{600, 400, 512, true},  // height too small
		{511, 511, 512, true},
		{64, 64, 64, false},
		{63, 64, 64, true},
	}

	for _, c := range cases {
		err := CheckResolution(imagemeta.Dimensions{Width: c.w, Height: c.h}, c.minSide)
		if c.wantErr && err == nil {
			t.Errorf("%dx%d min %d: expected error", c.w, c.h, c.minSide)
		}
		if !c.wantErr && err != nil {
			t.Errorf("%dx%d min %d: unexpected error: %v", c.w, c.h, c.minSide, err)
		}
		if c.wantErr && !errors.Is(err, ErrResolutionTooLow) {
			t.Errorf("%dx%d min %d: error not ErrResolutionTooLow: %v", c.w, c.h, c.minSide, err)
		}
	}
}

func TestResize_Landscape(t *testing.T) {
	// 1024x768 constrained by height: width scales to 683.
	img := gradientImg(1024, 768)
	resized := Resize(img, imagemeta.FromImage(img), 512)

	d := imagemeta.FromImage(resized)
	if d.Height != 512 {
		t.Errorf("height: got %d, want 512", d.Height)
	}
	if d.Width != 683 {
		t.Errorf("width: got %d, want 683", d.Width)
	}
}

func TestResize_Portrait(t *testing.T) {
	img := gradientImg(768, 1024)
	resized := Resize(img, imagemeta.FromImage(img), 512)

	d := imagemeta.FromImage(resized)
	if d.Width != 512 {
		t.Errorf("width: got %d, want 512", d.Width)
	}
	if d.Height != 683 {
		t.Errorf("height: got %d, want 683", d.Height)
	}
}

func TestResize_Square(t *testing.T) {
	img := gradientImg(128, 128)
	resized := Resize(img, imagemeta.FromImage(img), 64)

	d := imagemeta.FromImage(resized)
	if d.Width != 64 || d.Height != 64 {
		t.Errorf("got %dx%d, want 64x64", d.Width, d.Height)
	}
}
