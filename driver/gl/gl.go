//go:build !nogl

// Package gl implements the mgl driver interface over OpenGL using go-gl.
//
// Importing this package registers the device under driver.DeviceOpenGL.
// The factory resolves the GL entry points at request time, so a GL context
// must be current on the calling thread when the device is obtained:
//
//	window.MakeContextCurrent()
//	ctx, err := mgl.New(mgl.Config{Backend: driver.DeviceOpenGL})
//
// Build with -tags nogl to drop the cgo dependency.
package gl

import (
	"unsafe"

	ogl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/mgl/driver"
)

// init registers the OpenGL device on package import.
func init() {
	driver.Register(driver.DeviceOpenGL, func() driver.Device {
		if err := ogl.Init(); err != nil {
			// No current context, or the symbols cannot be resolved.
			return nil
		}
		return &device{}
	})
}

// device forwards every entry point to OpenGL. It carries no state of its
// own; all state lives in the GL context current on the calling thread.
type device struct{}

// Name returns the device identifier.
func (*device) Name() string { return driver.DeviceOpenGL }

// ptr returns a GL-consumable pointer to data, nil for empty input.
func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return ogl.Ptr(data)
}

func (*device) GenBuffer() uint32 {
	var h uint32
	ogl.GenBuffers(1, &h)
	return h
}

func (*device) BindBuffer(target driver.Enum, buffer uint32) {
	ogl.BindBuffer(target, buffer)
}

func (*device) BufferData(target driver.Enum, size int, data []byte, usage driver.Enum) {
	ogl.BufferData(target, size, ptr(data), usage)
}

func (*device) BufferSubData(target driver.Enum, offset int, data []byte) {
	ogl.BufferSubData(target, offset, len(data), ptr(data))
}

func (*device) DeleteBuffer(buffer uint32) {
	ogl.DeleteBuffers(1, &buffer)
}

func (*device) GenVertexArray() uint32 {
	var h uint32
	ogl.GenVertexArrays(1, &h)
	return h
}

func (*device) BindVertexArray(array uint32) {
	ogl.BindVertexArray(array)
}

func (*device) DeleteVertexArray(array uint32) {
	ogl.DeleteVertexArrays(1, &array)
}

func (*device) EnableVertexAttribArray(index uint32) {
	ogl.EnableVertexAttribArray(index)
}

func (*device) VertexAttribPointer(index uint32, size int32, elemType driver.Enum, normalized bool, stride int32, offset uintptr) {
	ogl.VertexAttribPointerWithOffset(index, size, elemType, normalized, stride, offset)
}

func (*device) VertexAttribIPointer(index uint32, size int32, elemType driver.Enum, stride int32, offset uintptr) {
	ogl.VertexAttribIPointerWithOffset(index, size, elemType, stride, offset)
}

func (*device) DrawArrays(mode driver.Enum, first, count int32) {
	ogl.DrawArrays(mode, first, count)
}

func (*device) GenTexture() uint32 {
	var h uint32
	ogl.GenTextures(1, &h)
	return h
}

func (*device) ActiveTexture(unit driver.Enum) {
	ogl.ActiveTexture(unit)
}

func (*device) BindTexture(target driver.Enum, texture uint32) {
	ogl.BindTexture(target, texture)
}

func (*device) TexImage2D(target driver.Enum, level int32, internalFormat driver.Enum, width, height int32, format, elemType driver.Enum, data []byte) {
	ogl.TexImage2D(target, level, int32(internalFormat), width, height, 0, format, elemType, ptr(data))
}

func (*device) TexSubImage2D(target driver.Enum, level, x, y, width, height int32, format, elemType driver.Enum, data []byte) {
	ogl.TexSubImage2D(target, level, x, y, width, height, format, elemType, ptr(data))
}

func (*device) TexParameteri(target, pname driver.Enum, param int32) {
	ogl.TexParameteri(target, pname, param)
}

func (*device) DeleteTexture(texture uint32) {
	ogl.DeleteTextures(1, &texture)
}

func (*device) CreateShader(stage driver.Enum) uint32 {
	return ogl.CreateShader(stage)
}

func (*device) ShaderSource(shader uint32, source string) {
	csources, free := ogl.Strs(source + "\x00")
	ogl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*device) CompileShader(shader uint32) {
	ogl.CompileShader(shader)
}

func (*device) ShaderCompiled(shader uint32) bool {
	var status int32
	ogl.GetShaderiv(shader, ogl.COMPILE_STATUS, &status)
	return status == ogl.TRUE
}

func (*device) ShaderInfoLog(shader uint32, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	ogl.GetShaderInfoLog(shader, int32(len(buf)), &n, &buf[0])
	return int(n)
}

func (*device) DeleteShader(shader uint32) {
	ogl.DeleteShader(shader)
}

func (*device) CreateProgram() uint32 {
	return ogl.CreateProgram()
}

func (*device) AttachShader(program, shader uint32) {
	ogl.AttachShader(program, shader)
}

func (*device) LinkProgram(program uint32) {
	ogl.LinkProgram(program)
}

func (*device) ProgramLinked(program uint32) bool {
	var status int32
	ogl.GetProgramiv(program, ogl.LINK_STATUS, &status)
	return status == ogl.TRUE
}

func (*device) ProgramInfoLog(program uint32, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	ogl.GetProgramInfoLog(program, int32(len(buf)), &n, &buf[0])
	return int(n)
}

func (*device) DeleteProgram(program uint32) {
	ogl.DeleteProgram(program)
}

func (*device) UseProgram(program uint32) {
	ogl.UseProgram(program)
}

func (*device) UniformLocation(program uint32, name string) int32 {
	return ogl.GetUniformLocation(program, ogl.Str(name+"\x00"))
}

func (*device) Uniform1fv(location int32, v []float32) { ogl.Uniform1fv(location, 1, &v[0]) }
func (*device) Uniform2fv(location int32, v []float32) { ogl.Uniform2fv(location, 1, &v[0]) }
func (*device) Uniform3fv(location int32, v []float32) { ogl.Uniform3fv(location, 1, &v[0]) }
func (*device) Uniform4fv(location int32, v []float32) { ogl.Uniform4fv(location, 1, &v[0]) }
func (*device) Uniform1iv(location int32, v []int32)   { ogl.Uniform1iv(location, 1, &v[0]) }
func (*device) Uniform2iv(location int32, v []int32)   { ogl.Uniform2iv(location, 1, &v[0]) }
func (*device) Uniform3iv(location int32, v []int32)   { ogl.Uniform3iv(location, 1, &v[0]) }
func (*device) Uniform4iv(location int32, v []int32)   { ogl.Uniform4iv(location, 1, &v[0]) }

func (*device) UniformMatrix3x2fv(location int32, v []float32) {
	ogl.UniformMatrix3x2fv(location, 1, false, &v[0])
}

func (*device) UniformMatrix3fv(location int32, v []float32) {
	ogl.UniformMatrix3fv(location, 1, false, &v[0])
}

func (*device) UniformMatrix4x2fv(location int32, v []float32) {
	ogl.UniformMatrix4x2fv(location, 1, false, &v[0])
}

func (*device) UniformMatrix4x3fv(location int32, v []float32) {
	ogl.UniformMatrix4x3fv(location, 1, false, &v[0])
}

func (*device) UniformMatrix4fv(location int32, v []float32) {
	ogl.UniformMatrix4fv(location, 1, false, &v[0])
}

func (*device) Viewport(x, y, width, height int32) {
	ogl.Viewport(x, y, width, height)
}

func (*device) ClearColor(r, g, b, a float32) {
	ogl.ClearColor(r, g, b, a)
}

func (*device) Clear(mask driver.Enum) {
	ogl.Clear(mask)
}

func (*device) GetError() driver.Enum {
	return ogl.GetError()
}
