package mgl

import (
	"unsafe"

	"github.com/gogpu/mgl/driver"
)

// Buffer owns one device buffer handle of fixed byte capacity. It is created
// through Context.NewBuffer and must be released with Destroy, unless a
// VertexArray has taken ownership of it.
//
// Buffer values are not copyable: each handle has exactly one owner, and a
// duplicate would double-free the device object. Always hold a *Buffer.
type Buffer struct {
	ctx       *Context
	handle    uint32
	size      int
	kind      BufferKind
	destroyed bool
}

// NewBuffer allocates device storage of size bytes for the given bind
// target, optionally seeded with data (which may be nil or shorter than
// size). dynamic tags the storage for frequent re-upload.
//
// The returned buffer is fully usable; device-side failure surfaces through
// the fault hook, not a return value.
func (c *Context) NewBuffer(kind BufferKind, size int, data []byte, dynamic bool) *Buffer {
	target := kind.device()
	usage := driver.StaticDraw
	if dynamic {
		usage = driver.DynamicDraw
	}

	handle := c.dev.GenBuffer()
	c.dev.BindBuffer(target, handle)
	c.dev.BufferData(target, size, data, usage)
	c.check("buffer create")

	Logger().Debug("mgl: buffer created", "handle", handle, "kind", kind, "size", size)
	return &Buffer{ctx: c, handle: handle, size: size, kind: kind}
}

// Handle returns the device handle. Zero after Destroy.
func (b *Buffer) Handle() uint32 { return b.handle }

// Size returns the byte capacity fixed at creation.
func (b *Buffer) Size() int { return b.size }

// Kind returns the bind target the buffer was created for.
func (b *Buffer) Kind() BufferKind { return b.kind }

// Bind makes the buffer current at its kind's bind target.
func (b *Buffer) Bind() {
	b.ctx.dev.BindBuffer(b.kind.device(), b.handle)
	b.ctx.check("buffer bind")
}

// Write re-uploads a sub-range starting at byte offset. The caller
// guarantees offset+len(data) <= Size(); the layer does not check, and an
// out-of-range write surfaces as a device error.
func (b *Buffer) Write(data []byte, offset int) {
	target := b.kind.device()
	b.ctx.dev.BindBuffer(target, b.handle)
	b.ctx.dev.BufferSubData(target, offset, data)
	b.ctx.check("buffer write")
}

// WriteSlice writes items at the given byte offset, reinterpreting their
// storage in place. T must be a flat, pointer-free type.
func WriteSlice[T any](b *Buffer, items []T, offset int) {
	if len(items) == 0 {
		return
	}
	size := len(items) * int(unsafe.Sizeof(items[0]))
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&items[0])), size)
	b.Write(bytes, offset)
}

// Destroy frees the device handle. Destroying twice is a logged no-op.
func (b *Buffer) Destroy() {
	if b.destroyed {
		Logger().Warn("mgl: buffer destroyed twice", "handle", b.handle)
		return
	}
	b.destroyed = true
	b.ctx.dev.DeleteBuffer(b.handle)
	Logger().Debug("mgl: buffer destroyed", "handle", b.handle)
	b.handle = 0
}
