package encoder

import (
	"image"
)

// Encoder encodes an image to JPEG bytes.
type Encoder interface {
	// Name returns the encoder name (e.g. "mozjpeg", "jpeg").
	Name() string

	// Encode converts the image to JPEG bytes at the given quality (1-100).
	Encode(img image.Image, quality int) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cjpeg) may not be installed.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}
