// Package imagemeta reads image dimensions and derives orientation.
// Dimensions are fetched once per stage input and passed around as a
// plain value, so downstream decisions never re-decode the source.
package imagemeta

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Orientation classifies an image by its aspect.
type Orientation int

const (
	// Landscape means width >= height. A square image counts as landscape.
	Landscape Orientation = iota
	// Portrait means width < height.
	Portrait
)

func (o Orientation) String() string {
	if o == Portrait {
		return "portrait"
	}
	return "landscape"
}

// Dimensions holds the pixel width and height of an image.
type Dimensions struct {
	Width  int
	Height int
}

// Orientation derives the orientation from the dimensions.
func (d Dimensions) Orientation() Orientation {
	if d.Width >= d.Height {
		return Landscape
	}
	return Portrait
}

// FromImage returns the dimensions of an already-decoded image.
func FromImage(img image.Image) Dimensions {
	b := img.Bounds()
	return Dimensions{Width: b.Dx(), Height: b.Dy()}
}

// Read decodes only the header of an image stream and returns its
// dimensions without decoding pixel data.
func Read(r io.Reader) (Dimensions, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return Dimensions{}, fmt.Errorf("decode config: %w", err)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}

// ReadFile reads the dimensions of an image file on disk.
func ReadFile(path string) (Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, err
	}
	defer f.Close()
	return Read(f)
}

// Load decodes the full image from disk. imaging.Open covers all
// registered decoders; some WebP encodings are rejected there, so retry
// with the chai2010 decoder before giving up.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err == nil {
		return img, nil
	}

	f, ferr := os.Open(path)
	if ferr != nil {
		return nil, err
	}
	defer f.Close()

	if wimg, werr := webp.Decode(f); werr == nil {
		return wimg, nil
	}
	return nil, err
}
