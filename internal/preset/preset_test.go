package preset

import "testing"

func TestGet(t *testing.T) {
	p := Get("dreambooth")
	if p.Side != 512 || p.MinSide != 512 {
		t.Errorf("dreambooth: %+v", p)
	}

	p = Get("sdxl")
	if p.Side != 1024 {
		t.Errorf("sdxl: %+v", p)
	}

	// Unknown names fall back to dreambooth but keep the requested name.
	p = Get("does-not-exist")
	if p.Side != 512 || p.Name != "does-not-exist" {
		t.Errorf("fallback: %+v", p)
	}
}

func TestWithSide(t *testing.T) {
	p := Get("dreambooth").WithSide(768)
	if p.Side != 768 || p.MinSide != 768 {
		t.Errorf("with side: %+v", p)
	}
	if p.Quality != Get("dreambooth").Quality {
		t.Errorf("quality changed: %+v", p)
	}
}
