package pipeline

import (
	"errors"
	"fmt"
	"image"

	"github.com/AnyUserName/dreamcrop/internal/imagemeta"
	"github.com/disintegration/imaging"
)

// ErrResolutionTooLow is returned when an input image is smaller than
// the minimum side on either axis. Matched with errors.Is.
var ErrResolutionTooLow = errors.New("resolution too low")

// CheckResolution enforces the minimum-resolution precondition. It must
// run before any resize attempt.
func CheckResolution(dims imagemeta.Dimensions, minSide int) error {
	if dims.Width < minSide || dims.Height < minSide {
		return fmt.Errorf("%w: image must be at least %dx%dpx, got %dx%d",
			ErrResolutionTooLow, minSide, minSide, dims.Width, dims.Height)
	}
	return nil
}

// Resize scales the image so its shorter axis becomes side pixels,
// preserving aspect ratio on the other axis. Landscape images are
// constrained by height, portrait by width, so the longer axis always
// has at least side pixels left for the crop.
func Resize(img image.Image, dims imagemeta.Dimensions, side int) *image.NRGBA {
	if dims.Orientation() == imagemeta.Landscape {
		return imaging.Resize(img, 0, side, imaging.Lanczos)
	}
	return imaging.Resize(img, side, 0, imaging.Lanczos)
}
