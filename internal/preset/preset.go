package preset

// Preset bundles output geometry and encode quality for a training target.
type Preset struct {
	Name    string
	Side    int // output square side in px
	MinSide int // inputs under this on either axis are rejected
	Quality int // JPEG quality 1-100
}

// Built-in presets.
var presets = map[string]Preset{
	"dreambooth": {
		Name:    "dreambooth",
		Side:    512,
		MinSide: 512,
		Quality: 80,
	},
	"dreambooth-768": {
		Name:    "dreambooth-768",
		Side:    768,
		MinSide: 768,
		Quality: 80,
	},
	"sdxl": {
		Name:    "sdxl",
		Side:    1024,
		MinSide: 1024,
		Quality: 82,
	},
}

// Get returns a preset by name. Falls back to dreambooth if unknown.
func Get(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	p := presets["dreambooth"]
	p.Name = name // preserve requested name
	return p
}

// WithSide returns a copy of the preset retargeted to a different square
// side. The minimum-resolution bound follows the side.
func (p Preset) WithSide(side int) Preset {
	p.Side = side
	p.MinSide = side
	return p
}
