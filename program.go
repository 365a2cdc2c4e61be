package mgl

import (
	"errors"
	"fmt"
)

// Program errors. Shader compilation is the one operation in the layer that
// is expected to fail under normal use: bad shader source is routine
// external input, so it gets an error return instead of the fault hook.
var (
	// ErrCompile is returned when a shader stage fails to compile.
	ErrCompile = errors.New("mgl: shader compile failed")

	// ErrLink is returned when program linking fails.
	ErrLink = errors.New("mgl: program link failed")
)

// Program owns one device program handle produced by compiling and linking
// vertex and fragment stage source.
//
// Uniform locations are resolved by name on demand and never cached, so a
// repeated lookup repeats the device-side name resolution. Cache the
// returned Uniform if that matters.
//
// Not copyable; always hold a *Program.
type Program struct {
	ctx       *Context
	handle    uint32
	destroyed bool
}

// NewProgram compiles the vertex and fragment stage sources independently
// and, only if both compile, links them. On any compile or link failure it
// returns a nil program and an error wrapping ErrCompile or ErrLink; if diag
// is non-empty, the device's diagnostic log is copied into it (truncated to
// its length) and included in the error text. An empty diag suppresses
// diagnostic capture.
//
// No partially constructed program survives the failure path: stage shader
// objects are deleted internally before returning in every case.
func (c *Context) NewProgram(vertexSrc, fragmentSrc string, diag []byte) (*Program, error) {
	vs, err := c.compileShader(StageVertex, vertexSrc, diag)
	if err != nil {
		return nil, err
	}
	fs, err := c.compileShader(StageFragment, fragmentSrc, diag)
	if err != nil {
		c.dev.DeleteShader(vs)
		return nil, err
	}

	handle := c.dev.CreateProgram()
	c.dev.AttachShader(handle, vs)
	c.dev.AttachShader(handle, fs)
	c.dev.DeleteShader(vs)
	c.dev.DeleteShader(fs)
	c.dev.LinkProgram(handle)

	if !c.dev.ProgramLinked(handle) {
		var n int
		if len(diag) > 0 {
			n = c.dev.ProgramInfoLog(handle, diag)
		}
		c.dev.DeleteProgram(handle)
		return nil, fmt.Errorf("%w: %s", ErrLink, diag[:n])
	}
	c.check("program link")

	Logger().Debug("mgl: program created", "handle", handle)
	return &Program{ctx: c, handle: handle}, nil
}

// compileShader compiles one stage, capturing diagnostics into diag on
// failure. The shader object is deleted on the failure path.
func (c *Context) compileShader(stage ShaderStage, source string, diag []byte) (uint32, error) {
	shader := c.dev.CreateShader(stage.device())
	c.dev.ShaderSource(shader, source)
	c.dev.CompileShader(shader)

	if !c.dev.ShaderCompiled(shader) {
		var n int
		if len(diag) > 0 {
			n = c.dev.ShaderInfoLog(shader, diag)
		}
		c.dev.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s stage: %s", ErrCompile, stage, diag[:n])
	}
	c.check("shader compile")
	return shader, nil
}

// Handle returns the device handle. Zero after Destroy.
func (p *Program) Handle() uint32 { return p.handle }

// Use makes the program current.
func (p *Program) Use() {
	p.ctx.dev.UseProgram(p.handle)
	p.ctx.current.program = p.handle
}

// UniformLocation resolves a uniform's location by name. Returns -1 for a
// name the linked program does not expose. The result is not cached.
func (p *Program) UniformLocation(name string) int32 {
	return p.ctx.dev.UniformLocation(p.handle, name)
}

// Uniform resolves name and returns a setter bound to that location.
func (p *Program) Uniform(name string) Uniform {
	return Uniform{program: p, location: p.UniformLocation(name)}
}

// UniformAt returns a setter for an already known location.
func (p *Program) UniformAt(location int32) Uniform {
	return Uniform{program: p, location: location}
}

// Destroy frees the device handle. Destroying twice is a logged no-op.
func (p *Program) Destroy() {
	if p.destroyed {
		Logger().Warn("mgl: program destroyed twice", "handle", p.handle)
		return
	}
	p.destroyed = true
	p.ctx.dev.DeleteProgram(p.handle)
	if p.ctx.current.program == p.handle {
		p.ctx.current.program = 0
	}
	Logger().Debug("mgl: program destroyed", "handle", p.handle)
	p.handle = 0
}
