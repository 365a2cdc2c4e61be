package mgl

// ConfigureFunc runs during VertexArray creation with the new vertex array
// already bound as current. It is expected to bind each supplied buffer and
// register its attribute layout (see Attrib and AttribVec2/3/4) before
// returning.
type ConfigureFunc func(handle uint32, buffers []*Buffer)

// VertexArray owns one device vertex-array handle plus the Buffers that
// supply its attribute streams. Ownership of the attached buffers is strong:
// destroying the VertexArray destroys each of them. The attached set is
// fixed at creation.
//
// Like Buffer, VertexArray values are not copyable; always hold a pointer.
type VertexArray struct {
	ctx      *Context
	handle   uint32
	attached []*Buffer
}

// NewVertexArray creates a vertex array, runs configure with it bound, then
// takes ownership of every buffer in buffers by copying the pointers into
// allocator-provided storage. Buffers not in the list stay owned by the
// caller. buffers may be empty and configure may be nil.
func (c *Context) NewVertexArray(buffers []*Buffer, configure ConfigureFunc) *VertexArray {
	handle := c.dev.GenVertexArray()
	c.dev.BindVertexArray(handle)
	c.current.vertexArray = handle
	c.check("vertex array create")

	if configure != nil {
		configure(handle, buffers)
		c.check("vertex array configure")
	}

	attached := c.alloc.AllocBufferList(len(buffers))
	copy(attached, buffers)

	Logger().Debug("mgl: vertex array created", "handle", handle, "buffers", len(buffers))
	return &VertexArray{ctx: c, handle: handle, attached: attached}
}

// Handle returns the device handle. Zero after Destroy.
func (va *VertexArray) Handle() uint32 { return va.handle }

// Buffers returns the attached buffers. The returned slice is the vertex
// array's own list; callers must not modify it.
func (va *VertexArray) Buffers() []*Buffer { return va.attached }

// Bind makes the vertex array current.
func (va *VertexArray) Bind() {
	va.ctx.dev.BindVertexArray(va.handle)
	va.ctx.current.vertexArray = va.handle
	va.ctx.check("vertex array bind")
}

// Draw submits count vertices starting at first with the given topology.
// The vertex array must be bound and a program in use.
func (va *VertexArray) Draw(mode DrawMode, first, count int) {
	va.ctx.dev.DrawArrays(mode.device(), int32(first), int32(count))
	va.ctx.check("draw")
}

// Destroy releases the vertex array handle, then destroys every attached
// buffer, then frees the attachment list, in that order, so device-level
// buffer deletion never races a still-bound vertex array.
func (va *VertexArray) Destroy() {
	if va.handle == 0 && va.attached == nil {
		Logger().Warn("mgl: vertex array destroyed twice")
		return
	}
	va.ctx.dev.DeleteVertexArray(va.handle)
	if va.ctx.current.vertexArray == va.handle {
		va.ctx.current.vertexArray = 0
	}
	for _, b := range va.attached {
		b.Destroy()
	}
	va.ctx.alloc.FreeBufferList(va.attached)
	Logger().Debug("mgl: vertex array destroyed", "handle", va.handle, "buffers", len(va.attached))
	va.handle = 0
	va.attached = nil
}
