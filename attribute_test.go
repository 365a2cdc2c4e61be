package mgl

import (
	"testing"

	"github.com/gogpu/mgl/driver"
	"github.com/gogpu/mgl/driver/null"
)

func TestAttrib(t *testing.T) {
	tests := []struct {
		name        string
		register    func(c *Context)
		wantType    driver.Enum
		wantInteger bool
	}{
		{"float32", func(c *Context) { Attrib[float32](c, 0, 3, 12, 0) }, driver.Float, false},
		{"int8", func(c *Context) { Attrib[int8](c, 0, 3, 12, 0) }, driver.Byte, true},
		{"uint8", func(c *Context) { Attrib[uint8](c, 0, 3, 12, 0) }, driver.UnsignedByte, true},
		{"int16", func(c *Context) { Attrib[int16](c, 0, 3, 12, 0) }, driver.Short, true},
		{"uint16", func(c *Context) { Attrib[uint16](c, 0, 3, 12, 0) }, driver.UnsignedShort, true},
		{"int32", func(c *Context) { Attrib[int32](c, 0, 3, 12, 0) }, driver.Int, true},
		{"uint32", func(c *Context) { Attrib[uint32](c, 0, 3, 12, 0) }, driver.UnsignedInt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, dev := newTestContext(t)
			va := ctx.NewVertexArray(nil, func(uint32, []*Buffer) {
				tt.register(ctx)
			})

			attribs := dev.Arrays[va.Handle()].Attribs
			if len(attribs) != 1 {
				t.Fatalf("registered attributes = %d, want 1", len(attribs))
			}
			a := attribs[0]
			if a.Type != tt.wantType {
				t.Errorf("element type = %#x, want %#x", a.Type, tt.wantType)
			}
			if a.Integer != tt.wantInteger {
				t.Errorf("integer path = %v, want %v", a.Integer, tt.wantInteger)
			}
			if a.Normalized {
				t.Error("attribute registered as normalized")
			}
			if a.Size != 3 || a.Stride != 12 || a.Offset != 0 {
				t.Errorf("layout = %+v, want size 3 stride 12 offset 0", a)
			}
		})
	}
}

func TestAttribVecHelpers(t *testing.T) {
	ctx, dev := newTestContext(t)

	// Interleaved layout: position Vec3, uv Vec2, color Vec4.
	const stride = 36

	va := ctx.NewVertexArray(nil, func(uint32, []*Buffer) {
		AttribVec3(ctx, 0, stride, 0)
		AttribVec2(ctx, 1, stride, 12)
		AttribVec4(ctx, 2, stride, 20)
	})

	want := []null.AttribRecord{
		{Index: 0, Size: 3, Type: driver.Float, Stride: 36, Offset: 0},
		{Index: 1, Size: 2, Type: driver.Float, Stride: 36, Offset: 12},
		{Index: 2, Size: 4, Type: driver.Float, Stride: 36, Offset: 20},
	}
	attribs := dev.Arrays[va.Handle()].Attribs
	if len(attribs) != len(want) {
		t.Fatalf("registered attributes = %d, want %d", len(attribs), len(want))
	}
	for i, w := range want {
		if attribs[i] != w {
			t.Errorf("attrib %d = %+v, want %+v", i, attribs[i], w)
		}
	}
}
