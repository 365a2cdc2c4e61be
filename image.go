package mgl

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// NewTextureFromImage uploads img as an RGBA8 texture. Source images that
// are not already tightly packed RGBA are converted through a staging block
// obtained from the Context's allocator and released before returning.
func (c *Context) NewTextureFromImage(img image.Image) *Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == w*4 {
		return c.NewTexture(w, h, FormatRGBA8, &TextureSource{
			Format: FormatRGBA8,
			Type:   DataUint8,
			Pixels: rgba.Pix[:w*h*4],
		})
	}

	block := c.alloc.AllocBytes(w * h * 4)
	staging := &image.RGBA{Pix: block, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	xdraw.Draw(staging, staging.Rect, img, b.Min, xdraw.Src)

	t := c.NewTexture(w, h, FormatRGBA8, &TextureSource{
		Format: FormatRGBA8,
		Type:   DataUint8,
		Pixels: block,
	})
	c.alloc.FreeBytes(block)
	return t
}
