package mgl

// Uniform dispatch: one typed setter per semantic value type, each
// forwarding to the fixed-arity upload primitive that matches it. The
// mapping from type to upload call is resolved at the call site by the
// setter chosen, not through any runtime inspection; the primitives check
// the view length against their arity and route a mismatch to the fault
// hook.
//
// Adding a new semantic type means adding one setter here (and one case to
// SetUniform), nothing else.

// Uniform addresses one uniform location within a program.
type Uniform struct {
	program  *Program
	location int32
}

// Location returns the device location, -1 if the name did not resolve.
func (u Uniform) Location() int32 { return u.location }

// SetFloat uploads a float scalar through the 1-element float path.
func (u Uniform) SetFloat(v float32) {
	u.program.ctx.uniform1f(u.location, ViewAt(&v, 1))
}

// SetInt uploads an integer scalar through the 1-element integer path.
func (u Uniform) SetInt(v int32) {
	u.program.ctx.uniform1i(u.location, ViewAt(&v, 1))
}

// SetVec2 uploads a 2-component vector.
func (u Uniform) SetVec2(v Vec2) {
	u.program.ctx.uniform2f(u.location, FloatsOf(&v))
}

// SetVec3 uploads a 3-component vector.
func (u Uniform) SetVec3(v Vec3) {
	u.program.ctx.uniform3f(u.location, FloatsOf(&v))
}

// SetVec4 uploads a 4-component vector.
func (u Uniform) SetVec4(v Vec4) {
	u.program.ctx.uniform4f(u.location, FloatsOf(&v))
}

// SetMat3 uploads a 3x3 matrix.
func (u Uniform) SetMat3(m Mat3) {
	u.program.ctx.uniformMat3(u.location, FloatsOf(&m))
}

// SetMat4 uploads a 4x4 matrix.
func (u Uniform) SetMat4(m Mat4) {
	u.program.ctx.uniformMat4(u.location, FloatsOf(&m))
}

// SetMat3x2 uploads a 3x2 matrix.
func (u Uniform) SetMat3x2(m Mat3x2) {
	u.program.ctx.uniformMat3x2(u.location, FloatsOf(&m))
}

// SetMat4x2 uploads a 4x2 matrix.
func (u Uniform) SetMat4x2(m Mat4x2) {
	u.program.ctx.uniformMat4x2(u.location, FloatsOf(&m))
}

// SetMat4x3 uploads a 4x3 matrix.
func (u Uniform) SetMat4x3(m Mat4x3) {
	u.program.ctx.uniformMat4x3(u.location, FloatsOf(&m))
}

// SetSampler uploads the sampler's texture unit index through the
// 1-element integer path.
func (u Uniform) SetSampler(s *Sampler) {
	index := s.index
	u.program.ctx.uniform1i(u.location, ViewAt(&index, 1))
}

// UniformValue is the closed set of semantic types SetUniform accepts.
type UniformValue interface {
	float32 | int32 | Vec2 | Vec3 | Vec4 | Mat3 | Mat4 | Mat3x2 | Mat4x2 | Mat4x3 | *Sampler
}

// SetUniform uploads value to the given location, dispatching on the
// compile-time constrained type. Equivalent to the corresponding Uniform
// setter; useful when the value type is itself generic.
func SetUniform[T UniformValue](p *Program, location int32, value T) {
	u := p.UniformAt(location)
	switch v := any(value).(type) {
	case float32:
		u.SetFloat(v)
	case int32:
		u.SetInt(v)
	case Vec2:
		u.SetVec2(v)
	case Vec3:
		u.SetVec3(v)
	case Vec4:
		u.SetVec4(v)
	case Mat3:
		u.SetMat3(v)
	case Mat4:
		u.SetMat4(v)
	case Mat3x2:
		u.SetMat3x2(v)
	case Mat4x2:
		u.SetMat4x2(v)
	case Mat4x3:
		u.SetMat4x3(v)
	case *Sampler:
		u.SetSampler(v)
	}
}

// Upload primitives. Each checks the supplied view's element count against
// its fixed arity; a mismatch is a programmer error and trips the fault
// hook, never a return value.

func (c *Context) uniform1f(location int32, v View[float32]) {
	if !c.assertArity("uniform1f", 1, v.Len()) {
		return
	}
	c.dev.Uniform1fv(location, v.Data())
}

func (c *Context) uniform2f(location int32, v View[float32]) {
	if !c.assertArity("uniform2f", 2, v.Len()) {
		return
	}
	c.dev.Uniform2fv(location, v.Data())
}

func (c *Context) uniform3f(location int32, v View[float32]) {
	if !c.assertArity("uniform3f", 3, v.Len()) {
		return
	}
	c.dev.Uniform3fv(location, v.Data())
}

func (c *Context) uniform4f(location int32, v View[float32]) {
	if !c.assertArity("uniform4f", 4, v.Len()) {
		return
	}
	c.dev.Uniform4fv(location, v.Data())
}

func (c *Context) uniform1i(location int32, v View[int32]) {
	if !c.assertArity("uniform1i", 1, v.Len()) {
		return
	}
	c.dev.Uniform1iv(location, v.Data())
}

func (c *Context) uniform2i(location int32, v View[int32]) {
	if !c.assertArity("uniform2i", 2, v.Len()) {
		return
	}
	c.dev.Uniform2iv(location, v.Data())
}

func (c *Context) uniform3i(location int32, v View[int32]) {
	if !c.assertArity("uniform3i", 3, v.Len()) {
		return
	}
	c.dev.Uniform3iv(location, v.Data())
}

func (c *Context) uniform4i(location int32, v View[int32]) {
	if !c.assertArity("uniform4i", 4, v.Len()) {
		return
	}
	c.dev.Uniform4iv(location, v.Data())
}

func (c *Context) uniformMat3x2(location int32, v View[float32]) {
	if !c.assertArity("uniformMat3x2", 6, v.Len()) {
		return
	}
	c.dev.UniformMatrix3x2fv(location, v.Data())
}

func (c *Context) uniformMat3(location int32, v View[float32]) {
	if !c.assertArity("uniformMat3", 9, v.Len()) {
		return
	}
	c.dev.UniformMatrix3fv(location, v.Data())
}

func (c *Context) uniformMat4x2(location int32, v View[float32]) {
	if !c.assertArity("uniformMat4x2", 8, v.Len()) {
		return
	}
	c.dev.UniformMatrix4x2fv(location, v.Data())
}

func (c *Context) uniformMat4x3(location int32, v View[float32]) {
	if !c.assertArity("uniformMat4x3", 12, v.Len()) {
		return
	}
	c.dev.UniformMatrix4x3fv(location, v.Data())
}

func (c *Context) uniformMat4(location int32, v View[float32]) {
	if !c.assertArity("uniformMat4", 16, v.Len()) {
		return
	}
	c.dev.UniformMatrix4fv(location, v.Data())
}
