package mgl

import "github.com/gogpu/mgl/driver"

// Sampler is a texture-unit binding slot. Unlike the owning resource types
// it is constructed directly, not through a Context, and it owns nothing:
// the texture reference is weak. The referenced Texture may be destroyed
// independently, and binding a sampler whose texture is gone is a caller
// error, not a cleanup obligation of the Sampler.
//
// The slot index is fixed at construction and never changes.
type Sampler struct {
	index   int32
	texture *Texture
}

// NewSampler creates a sampler for the given texture unit index.
func NewSampler(index int) *Sampler {
	return &Sampler{index: int32(index)}
}

// Index returns the texture unit index.
func (s *Sampler) Index() int32 { return s.index }

// Texture returns the referenced texture, which may be nil.
func (s *Sampler) Texture() *Texture { return s.texture }

// SetTexture updates the weak texture reference. Pass nil to clear it.
func (s *Sampler) SetTexture(t *Texture) {
	s.texture = t
}

// Bind activates the sampler's texture unit and binds the referenced
// texture's handle there, or the null handle if no texture is set.
func (s *Sampler) Bind(c *Context) {
	c.dev.ActiveTexture(driver.Texture0 + driver.Enum(s.index))
	var handle uint32
	if s.texture != nil {
		handle = s.texture.handle
	}
	c.dev.BindTexture(driver.Texture2D, handle)
	c.check("sampler bind")
}
