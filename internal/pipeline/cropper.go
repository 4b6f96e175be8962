package pipeline

import (
	"image"
	"math"

	"github.com/AnyUserName/dreamcrop/internal/imagemeta"
	"github.com/disintegration/imaging"
)

// CropRect returns the centered side×side rectangle for an image with
// the given dimensions. The offset along the longer axis is
// round((longer − side) / 2), half rounding away from zero; the offset
// on the shorter axis is always 0.
func CropRect(dims imagemeta.Dimensions, side int) image.Rectangle {
	var top, left int
	if dims.Orientation() == imagemeta.Landscape {
		left = int(math.Round(float64(dims.Width-side) / 2))
	} else {
		top = int(math.Round(float64(dims.Height-side) / 2))
	}
	return image.Rect(left, top, left+side, top+side)
}

// CropSquare extracts the centered square from a resized image.
func CropSquare(img image.Image, side int) *image.NRGBA {
	return imaging.Crop(img, CropRect(imagemeta.FromImage(img), side))
}
