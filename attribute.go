package mgl

import "github.com/gogpu/mgl/driver"

// Attribute dispatch: registers a vertex attribute pointer for the vertex
// array currently bound, normally from inside a ConfigureFunc. The element
// type selects the upload path at the call site: float32 takes the standard
// pointer path (unnormalized), the six fixed-width integer types take the
// integer-attribute path, which performs no normalization.

// AttribElem is the closed set of vertex attribute element types.
type AttribElem interface {
	float32 | int8 | uint8 | int16 | uint16 | int32 | uint32
}

// Attrib enables attribute slot index and registers its layout: size
// components of element type T per vertex, read every stride bytes starting
// at byte offset into the bound array buffer.
func Attrib[T AttribElem](c *Context, index, size, stride, offset int) {
	c.dev.EnableVertexAttribArray(uint32(index))

	var zero T
	switch any(zero).(type) {
	case float32:
		c.dev.VertexAttribPointer(uint32(index), int32(size), driver.Float,
			false, int32(stride), uintptr(offset))
	case int8:
		c.attribInt(index, size, driver.Byte, stride, offset)
	case uint8:
		c.attribInt(index, size, driver.UnsignedByte, stride, offset)
	case int16:
		c.attribInt(index, size, driver.Short, stride, offset)
	case uint16:
		c.attribInt(index, size, driver.UnsignedShort, stride, offset)
	case int32:
		c.attribInt(index, size, driver.Int, stride, offset)
	case uint32:
		c.attribInt(index, size, driver.UnsignedInt, stride, offset)
	}
	c.check("attribute")
}

func (c *Context) attribInt(index, size int, elemType driver.Enum, stride, offset int) {
	c.dev.VertexAttribIPointer(uint32(index), int32(size), elemType,
		int32(stride), uintptr(offset))
}

// AttribVec2 registers a 2-component float attribute at slot index.
func AttribVec2(c *Context, index, stride, offset int) {
	Attrib[float32](c, index, 2, stride, offset)
}

// AttribVec3 registers a 3-component float attribute at slot index.
func AttribVec3(c *Context, index, stride, offset int) {
	Attrib[float32](c, index, 3, stride, offset)
}

// AttribVec4 registers a 4-component float attribute at slot index.
func AttribVec4(c *Context, index, stride, offset int) {
	Attrib[float32](c, index, 4, stride, offset)
}
