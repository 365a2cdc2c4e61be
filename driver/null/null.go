// Package null implements an in-memory device for the mgl resource layer.
//
// The null device simulates object lifecycles (handle allocation, bind
// slots, buffer and texture storage) without touching any real GPU, and
// records every call it receives. It serves two purposes: it is the test
// substrate for the whole module, and it is a headless fallback when no real
// device is available.
//
// Importing this package registers the device under driver.DeviceNull.
package null

import (
	"fmt"

	"github.com/gogpu/mgl/driver"
)

// init registers the null device on package import.
func init() {
	driver.Register(driver.DeviceNull, func() driver.Device {
		return New()
	})
}

// BufferState is the simulated storage behind one buffer handle.
type BufferState struct {
	Target driver.Enum
	Usage  driver.Enum
	Data   []byte
}

// AttribRecord is one registered vertex attribute pointer.
type AttribRecord struct {
	Index      uint32
	Size       int32
	Type       driver.Enum
	Integer    bool
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// ArrayState is the simulated state behind one vertex array handle.
type ArrayState struct {
	Attribs []AttribRecord
}

// TextureState is the simulated state behind one texture handle.
type TextureState struct {
	Width, Height  int32
	InternalFormat driver.Enum
	Format         driver.Enum
	ElemType       driver.Enum
	Data           []byte
	Params         map[driver.Enum]int32
}

// ShaderState is the simulated state behind one shader handle.
type ShaderState struct {
	Stage    driver.Enum
	Source   string
	Compiled bool
}

// ProgramState is the simulated state behind one program handle.
type ProgramState struct {
	Shaders  []uint32
	Linked   bool
	Uniforms map[string]int32
}

// UniformCall records one uniform upload primitive invocation.
type UniformCall struct {
	Op       string
	Location int32
	Floats   []float32
	Ints     []int32
}

// Elems returns the total element count of the upload.
func (c UniformCall) Elems() int {
	if c.Floats != nil {
		return len(c.Floats)
	}
	return len(c.Ints)
}

// SubDataCall records one buffer sub-range upload.
type SubDataCall struct {
	Target driver.Enum
	Offset int
	Data   []byte
}

// TexSubCall records one texture sub-region upload.
type TexSubCall struct {
	X, Y, Width, Height int32
	Format, ElemType    driver.Enum
	Data                []byte
}

// DrawCall records one draw submission.
type DrawCall struct {
	Mode         driver.Enum
	First, Count int32
}

// Device is an in-memory driver.Device that records every call.
//
// All state is exported so tests can assert against it directly. Device is
// not safe for concurrent use, matching the contract of the interface it
// implements.
type Device struct {
	Buffers  map[uint32]*BufferState
	Arrays   map[uint32]*ArrayState
	Textures map[uint32]*TextureState
	Shaders  map[uint32]*ShaderState
	Programs map[uint32]*ProgramState

	// Bound mirrors the device's global selection state.
	Bound struct {
		Buffers map[driver.Enum]uint32
		Array   uint32
		Texture uint32
		Unit    driver.Enum
		Program uint32
	}

	// Recordings, in call order.
	Uniforms []UniformCall
	SubData  []SubDataCall
	TexSubs  []TexSubCall
	Draws    []DrawCall

	// Trace is a coarse log of lifecycle-relevant calls, used to assert
	// ordering (e.g. vertex array deleted before its attached buffers).
	Trace []string

	// Failure knobs.
	FailCompile map[driver.Enum]bool
	CompileLog  string
	FailLink    bool
	LinkLog     string

	// ErrorQueue is drained by GetError; empty means NoError.
	ErrorQueue []driver.Enum

	// UniformLookups counts UniformLocation calls, letting tests verify
	// that callers do not cache locations when they claim not to.
	UniformLookups int

	next        uint32
	nextUniform int32
}

// New creates an empty null device.
func New() *Device {
	d := &Device{
		Buffers:     make(map[uint32]*BufferState),
		Arrays:      make(map[uint32]*ArrayState),
		Textures:    make(map[uint32]*TextureState),
		Shaders:     make(map[uint32]*ShaderState),
		Programs:    make(map[uint32]*ProgramState),
		FailCompile: make(map[driver.Enum]bool),
	}
	d.Bound.Buffers = make(map[driver.Enum]uint32)
	return d
}

// Name returns the device identifier.
func (d *Device) Name() string { return driver.DeviceNull }

func (d *Device) trace(format string, args ...any) {
	d.Trace = append(d.Trace, fmt.Sprintf(format, args...))
}

func (d *Device) setError(code driver.Enum) {
	d.ErrorQueue = append(d.ErrorQueue, code)
}

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

// GetError pops and returns the oldest pending error, or NoError.
func (d *Device) GetError() driver.Enum {
	if len(d.ErrorQueue) == 0 {
		return driver.NoError
	}
	code := d.ErrorQueue[0]
	d.ErrorQueue = d.ErrorQueue[1:]
	return code
}

// Buffers.

func (d *Device) GenBuffer() uint32 {
	h := d.handle()
	d.Buffers[h] = &BufferState{}
	d.trace("GenBuffer(%d)", h)
	return h
}

func (d *Device) BindBuffer(target driver.Enum, buffer uint32) {
	d.Bound.Buffers[target] = buffer
	d.trace("BindBuffer(%#x, %d)", target, buffer)
}

func (d *Device) BufferData(target driver.Enum, size int, data []byte, usage driver.Enum) {
	b, ok := d.Buffers[d.Bound.Buffers[target]]
	if !ok {
		d.setError(driver.InvalidOperation)
		return
	}
	b.Target = target
	b.Usage = usage
	b.Data = make([]byte, size)
	copy(b.Data, data)
	d.trace("BufferData(%#x, %d)", target, size)
}

func (d *Device) BufferSubData(target driver.Enum, offset int, data []byte) {
	b, ok := d.Buffers[d.Bound.Buffers[target]]
	if !ok {
		d.setError(driver.InvalidOperation)
		return
	}
	if offset < 0 || offset+len(data) > len(b.Data) {
		d.setError(driver.InvalidValue)
		return
	}
	copy(b.Data[offset:], data)
	rec := SubDataCall{Target: target, Offset: offset, Data: append([]byte(nil), data...)}
	d.SubData = append(d.SubData, rec)
	d.trace("BufferSubData(%#x, %d, %d)", target, offset, len(data))
}

func (d *Device) DeleteBuffer(buffer uint32) {
	delete(d.Buffers, buffer)
	d.trace("DeleteBuffer(%d)", buffer)
}

// Vertex arrays and attributes.

func (d *Device) GenVertexArray() uint32 {
	h := d.handle()
	d.Arrays[h] = &ArrayState{}
	d.trace("GenVertexArray(%d)", h)
	return h
}

func (d *Device) BindVertexArray(array uint32) {
	d.Bound.Array = array
	d.trace("BindVertexArray(%d)", array)
}

func (d *Device) DeleteVertexArray(array uint32) {
	delete(d.Arrays, array)
	d.trace("DeleteVertexArray(%d)", array)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	d.trace("EnableVertexAttribArray(%d)", index)
}

func (d *Device) VertexAttribPointer(index uint32, size int32, elemType driver.Enum, normalized bool, stride int32, offset uintptr) {
	d.attrib(AttribRecord{
		Index: index, Size: size, Type: elemType,
		Normalized: normalized, Stride: stride, Offset: offset,
	})
}

func (d *Device) VertexAttribIPointer(index uint32, size int32, elemType driver.Enum, stride int32, offset uintptr) {
	d.attrib(AttribRecord{
		Index: index, Size: size, Type: elemType,
		Integer: true, Stride: stride, Offset: offset,
	})
}

func (d *Device) attrib(rec AttribRecord) {
	a, ok := d.Arrays[d.Bound.Array]
	if !ok {
		d.setError(driver.InvalidOperation)
		return
	}
	a.Attribs = append(a.Attribs, rec)
	d.trace("VertexAttribPointer(%d)", rec.Index)
}

func (d *Device) DrawArrays(mode driver.Enum, first, count int32) {
	d.Draws = append(d.Draws, DrawCall{Mode: mode, First: first, Count: count})
	d.trace("DrawArrays(%#x, %d, %d)", mode, first, count)
}

// Textures.

func (d *Device) GenTexture() uint32 {
	h := d.handle()
	d.Textures[h] = &TextureState{Params: make(map[driver.Enum]int32)}
	d.trace("GenTexture(%d)", h)
	return h
}

func (d *Device) ActiveTexture(unit driver.Enum) {
	d.Bound.Unit = unit
	d.trace("ActiveTexture(%#x)", unit)
}

func (d *Device) BindTexture(target driver.Enum, texture uint32) {
	d.Bound.Texture = texture
	d.trace("BindTexture(%#x, %d)", target, texture)
}

func (d *Device) TexImage2D(target driver.Enum, level int32, internalFormat driver.Enum, width, height int32, format, elemType driver.Enum, data []byte) {
	t, ok := d.Textures[d.Bound.Texture]
	if !ok {
		d.setError(driver.InvalidOperation)
		return
	}
	t.Width, t.Height = width, height
	t.InternalFormat = internalFormat
	t.Format = format
	t.ElemType = elemType
	t.Data = append([]byte(nil), data...)
	d.trace("TexImage2D(%dx%d)", width, height)
}

func (d *Device) TexSubImage2D(target driver.Enum, level, x, y, width, height int32, format, elemType driver.Enum, data []byte) {
	if _, ok := d.Textures[d.Bound.Texture]; !ok {
		d.setError(driver.InvalidOperation)
		return
	}
	d.TexSubs = append(d.TexSubs, TexSubCall{
		X: x, Y: y, Width: width, Height: height,
		Format: format, ElemType: elemType,
		Data: append([]byte(nil), data...),
	})
	d.trace("TexSubImage2D(%d,%d %dx%d)", x, y, width, height)
}

func (d *Device) TexParameteri(target, pname driver.Enum, param int32) {
	t, ok := d.Textures[d.Bound.Texture]
	if !ok {
		d.setError(driver.InvalidOperation)
		return
	}
	t.Params[pname] = param
}

func (d *Device) DeleteTexture(texture uint32) {
	delete(d.Textures, texture)
	d.trace("DeleteTexture(%d)", texture)
}

// Shaders and programs.

func (d *Device) CreateShader(stage driver.Enum) uint32 {
	h := d.handle()
	d.Shaders[h] = &ShaderState{Stage: stage}
	d.trace("CreateShader(%d)", h)
	return h
}

func (d *Device) ShaderSource(shader uint32, source string) {
	if s, ok := d.Shaders[shader]; ok {
		s.Source = source
	}
}

func (d *Device) CompileShader(shader uint32) {
	s, ok := d.Shaders[shader]
	if !ok {
		d.setError(driver.InvalidValue)
		return
	}
	s.Compiled = !d.FailCompile[s.Stage] && s.Source != ""
}

func (d *Device) ShaderCompiled(shader uint32) bool {
	s, ok := d.Shaders[shader]
	return ok && s.Compiled
}

func (d *Device) ShaderInfoLog(shader uint32, buf []byte) int {
	log := d.CompileLog
	if log == "" {
		log = "null: shader compile failed"
	}
	return copy(buf, log)
}

func (d *Device) DeleteShader(shader uint32) {
	delete(d.Shaders, shader)
	d.trace("DeleteShader(%d)", shader)
}

func (d *Device) CreateProgram() uint32 {
	h := d.handle()
	d.Programs[h] = &ProgramState{Uniforms: make(map[string]int32)}
	d.trace("CreateProgram(%d)", h)
	return h
}

func (d *Device) AttachShader(program, shader uint32) {
	if p, ok := d.Programs[program]; ok {
		p.Shaders = append(p.Shaders, shader)
	}
}

func (d *Device) LinkProgram(program uint32) {
	p, ok := d.Programs[program]
	if !ok {
		d.setError(driver.InvalidValue)
		return
	}
	p.Linked = !d.FailLink
	d.trace("LinkProgram(%d)", program)
}

func (d *Device) ProgramLinked(program uint32) bool {
	p, ok := d.Programs[program]
	return ok && p.Linked
}

func (d *Device) ProgramInfoLog(program uint32, buf []byte) int {
	log := d.LinkLog
	if log == "" {
		log = "null: program link failed"
	}
	return copy(buf, log)
}

func (d *Device) DeleteProgram(program uint32) {
	delete(d.Programs, program)
	d.trace("DeleteProgram(%d)", program)
}

func (d *Device) UseProgram(program uint32) {
	d.Bound.Program = program
	d.trace("UseProgram(%d)", program)
}

// UniformLocation assigns stable, per-program locations in lookup order.
func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.UniformLookups++
	p, ok := d.Programs[program]
	if !ok {
		return -1
	}
	if loc, ok := p.Uniforms[name]; ok {
		return loc
	}
	loc := d.nextUniform
	d.nextUniform++
	p.Uniforms[name] = loc
	return loc
}

// Uniform upload primitives.

func (d *Device) uniformf(op string, location int32, v []float32) {
	d.Uniforms = append(d.Uniforms, UniformCall{
		Op: op, Location: location, Floats: append([]float32(nil), v...),
	})
}

func (d *Device) uniformi(op string, location int32, v []int32) {
	d.Uniforms = append(d.Uniforms, UniformCall{
		Op: op, Location: location, Ints: append([]int32(nil), v...),
	})
}

func (d *Device) Uniform1fv(location int32, v []float32) { d.uniformf("1fv", location, v) }
func (d *Device) Uniform2fv(location int32, v []float32) { d.uniformf("2fv", location, v) }
func (d *Device) Uniform3fv(location int32, v []float32) { d.uniformf("3fv", location, v) }
func (d *Device) Uniform4fv(location int32, v []float32) { d.uniformf("4fv", location, v) }
func (d *Device) Uniform1iv(location int32, v []int32)   { d.uniformi("1iv", location, v) }
func (d *Device) Uniform2iv(location int32, v []int32)   { d.uniformi("2iv", location, v) }
func (d *Device) Uniform3iv(location int32, v []int32)   { d.uniformi("3iv", location, v) }
func (d *Device) Uniform4iv(location int32, v []int32)   { d.uniformi("4iv", location, v) }

func (d *Device) UniformMatrix3x2fv(location int32, v []float32) { d.uniformf("m3x2fv", location, v) }
func (d *Device) UniformMatrix3fv(location int32, v []float32)   { d.uniformf("m3fv", location, v) }
func (d *Device) UniformMatrix4x2fv(location int32, v []float32) { d.uniformf("m4x2fv", location, v) }
func (d *Device) UniformMatrix4x3fv(location int32, v []float32) { d.uniformf("m4x3fv", location, v) }
func (d *Device) UniformMatrix4fv(location int32, v []float32)   { d.uniformf("m4fv", location, v) }

// Framebuffer operations.

func (d *Device) Viewport(x, y, width, height int32) {
	d.trace("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.trace("ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (d *Device) Clear(mask driver.Enum) {
	d.trace("Clear(%#x)", mask)
}
