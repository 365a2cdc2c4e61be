package mgl

import "github.com/gogpu/mgl/driver"

// TextureSource describes optional initial pixel data for a texture: the
// shape and element type of the source pixels, and the pixels themselves.
type TextureSource struct {
	// Format is the pixel format of Pixels. Sized formats are reduced to
	// their base shape for the upload.
	Format PixelFormat

	// Type is the element type of one pixel component.
	Type DataType

	// Pixels is the tightly packed source data.
	Pixels []byte
}

// TextureOptions is the filter and wrap configuration applied by SetOptions.
type TextureOptions struct {
	Filter struct {
		Min, Mag FilterMode
	}
	Wrap struct {
		S, T, R WrapMode
	}
}

// Texture owns one device texture handle holding a 2D image of fixed
// dimensions and device-side storage format.
//
// Not copyable; always hold a *Texture.
type Texture struct {
	ctx           *Context
	handle        uint32
	width, height int
	format        PixelFormat
	destroyed     bool
}

// NewTexture creates a 2D texture of the given dimensions and device-side
// storage format. When src is non-nil its pixels are uploaded, described by
// src.Format reduced to its base shape plus src.Type; otherwise storage of
// the given format and size is allocated uninitialized.
func (c *Context) NewTexture(width, height int, format PixelFormat, src *TextureSource) *Texture {
	handle := c.dev.GenTexture()
	c.dev.BindTexture(driver.Texture2D, handle)

	if src != nil {
		c.dev.TexImage2D(driver.Texture2D, 0, format.device(),
			int32(width), int32(height),
			src.Format.Base().device(), src.Type.device(), src.Pixels)
	} else {
		c.dev.TexImage2D(driver.Texture2D, 0, format.device(),
			int32(width), int32(height),
			format.Base().device(), DataUint8.device(), nil)
	}
	c.check("texture create")

	Logger().Debug("mgl: texture created", "handle", handle, "format", format,
		"width", width, "height", height)
	return &Texture{ctx: c, handle: handle, width: width, height: height, format: format}
}

// Handle returns the device handle. Zero after Destroy.
func (t *Texture) Handle() uint32 { return t.handle }

// Format returns the device-side storage format.
func (t *Texture) Format() PixelFormat { return t.format }

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Write re-uploads the sub-region (x, y, w, h). The source pixels carry the
// texture's own base shape with the given element type, tightly packed.
func (t *Texture) Write(x, y, w, h int, elemType DataType, pixels []byte) {
	t.ctx.dev.BindTexture(driver.Texture2D, t.handle)
	t.ctx.dev.TexSubImage2D(driver.Texture2D, 0,
		int32(x), int32(y), int32(w), int32(h),
		t.format.Base().device(), elemType.device(), pixels)
	t.ctx.check("texture write")
}

// SetOptions applies the filter and wrap configuration.
func (t *Texture) SetOptions(opts TextureOptions) {
	dev := t.ctx.dev
	dev.BindTexture(driver.Texture2D, t.handle)

	dev.TexParameteri(driver.Texture2D, driver.TextureMinFilter, int32(opts.Filter.Min.device()))
	dev.TexParameteri(driver.Texture2D, driver.TextureMagFilter, int32(opts.Filter.Mag.device()))

	dev.TexParameteri(driver.Texture2D, driver.TextureWrapS, int32(opts.Wrap.S.device()))
	dev.TexParameteri(driver.Texture2D, driver.TextureWrapT, int32(opts.Wrap.T.device()))
	dev.TexParameteri(driver.Texture2D, driver.TextureWrapR, int32(opts.Wrap.R.device()))

	t.ctx.check("texture options")
}

// Destroy frees the device handle. Destroying twice is a logged no-op.
func (t *Texture) Destroy() {
	if t.destroyed {
		Logger().Warn("mgl: texture destroyed twice", "handle", t.handle)
		return
	}
	t.destroyed = true
	t.ctx.dev.DeleteTexture(t.handle)
	t.ctx.check("texture destroy")
	Logger().Debug("mgl: texture destroyed", "handle", t.handle)
	t.handle = 0
}
