package encoder

import (
	"fmt"
	"strings"
)

// Registry probes JPEG encoders and selects the best available one.
type Registry struct {
	encoders []Encoder
}

// NewRegistry creates a registry, probing encoders for availability.
// Order is priority order: mozjpeg when installed, stdlib otherwise.
func NewRegistry() *Registry {
	r := &Registry{}

	all := []Encoder{
		&MozJPEGEncoder{},
		&JPEGEncoder{},
	}

	for _, enc := range all {
		if enc.Available() {
			r.encoders = append(r.encoders, enc)
		}
	}

	return r
}

// Best returns the preferred available encoder. Never nil: the stdlib
// JPEG encoder is always available.
func (r *Registry) Best() Encoder {
	return r.encoders[0]
}

// Available returns all available encoder names in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, enc := range r.encoders {
		result = append(result, enc.Name())
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
