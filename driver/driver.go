package driver

import "errors"

// Common driver errors.
var (
	// ErrDeviceNotAvailable is returned when a requested device is not available.
	ErrDeviceNotAvailable = errors.New("driver: device not available")
)

// Enum is a raw device API constant.
type Enum = uint32

// Device API constants. Values match the OpenGL numeric constants: the layer
// targets exactly one device-API shape, and the translation tables in the mgl
// package produce these values directly.
const (
	NoError          Enum = 0
	InvalidEnum      Enum = 0x0500
	InvalidValue     Enum = 0x0501
	InvalidOperation Enum = 0x0502
	OutOfMemory      Enum = 0x0505

	ArrayBuffer         Enum = 0x8892
	ElementArrayBuffer  Enum = 0x8893
	UniformBuffer       Enum = 0x8A11
	ShaderStorageBuffer Enum = 0x90D2

	StaticDraw  Enum = 0x88E4
	DynamicDraw Enum = 0x88E8

	Points    Enum = 0x0000
	Lines     Enum = 0x0001
	Triangles Enum = 0x0004

	Byte          Enum = 0x1400
	UnsignedByte  Enum = 0x1401
	Short         Enum = 0x1402
	UnsignedShort Enum = 0x1403
	Int           Enum = 0x1404
	UnsignedInt   Enum = 0x1405
	Float         Enum = 0x1406

	Red  Enum = 0x1903
	RG   Enum = 0x8227
	RGB  Enum = 0x1907
	RGBA Enum = 0x1908
	BGR  Enum = 0x80E0
	BGRA Enum = 0x80E1

	R8      Enum = 0x8229
	RG8     Enum = 0x822B
	RGB8    Enum = 0x8051
	RGBA8   Enum = 0x8058
	R32F    Enum = 0x822E
	RG32F   Enum = 0x8230
	RGB32F  Enum = 0x8815
	RGBA32F Enum = 0x8814

	Nearest Enum = 0x2600
	Linear  Enum = 0x2601

	Repeat            Enum = 0x2901
	ClampToBorder     Enum = 0x812D
	ClampToEdge       Enum = 0x812F
	MirroredRepeat    Enum = 0x8370
	MirrorClampToEdge Enum = 0x8743

	Texture2D Enum = 0x0DE1
	Texture0  Enum = 0x84C0

	TextureMagFilter Enum = 0x2800
	TextureMinFilter Enum = 0x2801
	TextureWrapS     Enum = 0x2802
	TextureWrapT     Enum = 0x2803
	TextureWrapR     Enum = 0x8072

	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31

	DepthBufferBit Enum = 0x0100
	ColorBufferBit Enum = 0x4000
)

// Device is the fixed set of device API entry points the resource layer
// calls. It is a direct, synchronous pass-through: every method returns only
// after the device has accepted the command.
//
// Handles are opaque; zero is the null handle. Bind-style methods mutate the
// device's process-wide selection state, so a Device is not safe for
// concurrent use.
//
// Upload methods take byte slices rather than raw pointers; nil means
// "no source data" where the underlying call permits it.
type Device interface {
	// Name returns the device identifier (e.g. "opengl", "null").
	Name() string

	// Buffers.
	GenBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	DeleteBuffer(buffer uint32)

	// Vertex arrays and attributes.
	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, elemType Enum, normalized bool, stride int32, offset uintptr)
	VertexAttribIPointer(index uint32, size int32, elemType Enum, stride int32, offset uintptr)
	DrawArrays(mode Enum, first, count int32)

	// Textures.
	GenTexture() uint32
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)
	TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format, elemType Enum, data []byte)
	TexSubImage2D(target Enum, level, x, y, width, height int32, format, elemType Enum, data []byte)
	TexParameteri(target, pname Enum, param int32)
	DeleteTexture(texture uint32)

	// Shaders and programs.
	CreateShader(stage Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32, buf []byte) int
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32, buf []byte) int
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32

	// Uniform upload primitives. The slice length is the total element
	// count for exactly one uniform of the call's arity.
	Uniform1fv(location int32, v []float32)
	Uniform2fv(location int32, v []float32)
	Uniform3fv(location int32, v []float32)
	Uniform4fv(location int32, v []float32)
	Uniform1iv(location int32, v []int32)
	Uniform2iv(location int32, v []int32)
	Uniform3iv(location int32, v []int32)
	Uniform4iv(location int32, v []int32)
	UniformMatrix3x2fv(location int32, v []float32)
	UniformMatrix3fv(location int32, v []float32)
	UniformMatrix4x2fv(location int32, v []float32)
	UniformMatrix4x3fv(location int32, v []float32)
	UniformMatrix4fv(location int32, v []float32)

	// Framebuffer operations.
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	// GetError pops and returns the device error state.
	GetError() Enum
}
