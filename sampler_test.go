package mgl

import (
	"testing"

	"github.com/gogpu/mgl/driver"
)

func TestSamplerBind(t *testing.T) {
	ctx, dev := newTestContext(t)
	tex := ctx.NewTexture(1, 1, FormatRGBA8, nil)

	s := NewSampler(2)
	if s.Index() != 2 {
		t.Fatalf("Index() = %d, want 2", s.Index())
	}
	s.SetTexture(tex)
	s.Bind(ctx)

	if want := driver.Texture0 + 2; dev.Bound.Unit != want {
		t.Errorf("active unit = %#x, want %#x", dev.Bound.Unit, want)
	}
	if dev.Bound.Texture != tex.Handle() {
		t.Errorf("bound texture = %d, want %d", dev.Bound.Texture, tex.Handle())
	}
}

func TestSamplerBindNilTexture(t *testing.T) {
	// A sampler with no texture set binds the null handle, clearing the unit.
	ctx, dev := newTestContext(t)
	dev.Bound.Texture = 99

	s := NewSampler(0)
	s.Bind(ctx)

	if dev.Bound.Texture != 0 {
		t.Errorf("bound texture = %d, want 0", dev.Bound.Texture)
	}
}

func TestSamplerWeakReference(t *testing.T) {
	// The sampler does not own its texture: destroying the texture does not
	// go through the sampler, and clearing the reference is the caller's job.
	ctx, dev := newTestContext(t)
	tex := ctx.NewTexture(1, 1, FormatRGBA8, nil)

	s := NewSampler(0)
	s.SetTexture(tex)
	tex.Destroy()

	if s.Texture() != tex {
		t.Error("sampler reference changed on texture destroy")
	}
	if len(dev.Textures) != 0 {
		t.Errorf("device textures alive = %d, want 0", len(dev.Textures))
	}

	s.SetTexture(nil)
	if s.Texture() != nil {
		t.Error("SetTexture(nil) did not clear the reference")
	}
}
