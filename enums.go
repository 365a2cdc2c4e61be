package mgl

import (
	"fmt"

	"github.com/gogpu/mgl/driver"
)

// The semantic enumerations below are closed sets. Each maps to the
// underlying device constant through an exhaustive switch; an unmatched
// value maps to the device's invalid-enum sentinel, which is never fatal
// here and surfaces later as a device-level error.

// BufferKind selects the bind target a Buffer is created for.
type BufferKind int

const (
	// BufferArray is vertex attribute data.
	BufferArray BufferKind = iota
	// BufferElement is index data.
	BufferElement
	// BufferUniform is uniform block data.
	BufferUniform
	// BufferShaderStorage is shader storage block data.
	BufferShaderStorage
)

// String returns the string representation of BufferKind.
func (k BufferKind) String() string {
	switch k {
	case BufferArray:
		return "Array"
	case BufferElement:
		return "Element"
	case BufferUniform:
		return "Uniform"
	case BufferShaderStorage:
		return "ShaderStorage"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

func (k BufferKind) device() driver.Enum {
	switch k {
	case BufferArray:
		return driver.ArrayBuffer
	case BufferElement:
		return driver.ElementArrayBuffer
	case BufferUniform:
		return driver.UniformBuffer
	case BufferShaderStorage:
		return driver.ShaderStorageBuffer
	}
	return driver.InvalidEnum
}

// DrawMode is the primitive topology of a draw submission.
type DrawMode int

const (
	// DrawTriangles assembles independent triangles.
	DrawTriangles DrawMode = iota
	// DrawLines assembles independent line segments.
	DrawLines
	// DrawPoints assembles points.
	DrawPoints
)

// String returns the string representation of DrawMode.
func (m DrawMode) String() string {
	switch m {
	case DrawTriangles:
		return "Triangles"
	case DrawLines:
		return "Lines"
	case DrawPoints:
		return "Points"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

func (m DrawMode) device() driver.Enum {
	switch m {
	case DrawTriangles:
		return driver.Triangles
	case DrawLines:
		return driver.Lines
	case DrawPoints:
		return driver.Points
	}
	return driver.InvalidEnum
}

// DataType is the element type of source data handed to the device: vertex
// attribute elements and texture pixel components.
type DataType int

const (
	// DataInt8 is a signed 8-bit element.
	DataInt8 DataType = iota
	// DataUint8 is an unsigned 8-bit element.
	DataUint8
	// DataInt16 is a signed 16-bit element.
	DataInt16
	// DataUint16 is an unsigned 16-bit element.
	DataUint16
	// DataInt32 is a signed 32-bit element.
	DataInt32
	// DataUint32 is an unsigned 32-bit element.
	DataUint32
	// DataFloat32 is a 32-bit float element.
	DataFloat32
)

// String returns the string representation of DataType.
func (t DataType) String() string {
	switch t {
	case DataInt8:
		return "Int8"
	case DataUint8:
		return "Uint8"
	case DataInt16:
		return "Int16"
	case DataUint16:
		return "Uint16"
	case DataInt32:
		return "Int32"
	case DataUint32:
		return "Uint32"
	case DataFloat32:
		return "Float32"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Size returns the element size in bytes, or 0 for an unknown type.
func (t DataType) Size() int {
	switch t {
	case DataInt8, DataUint8:
		return 1
	case DataInt16, DataUint16:
		return 2
	case DataInt32, DataUint32, DataFloat32:
		return 4
	}
	return 0
}

func (t DataType) device() driver.Enum {
	switch t {
	case DataInt8:
		return driver.Byte
	case DataUint8:
		return driver.UnsignedByte
	case DataInt16:
		return driver.Short
	case DataUint16:
		return driver.UnsignedShort
	case DataInt32:
		return driver.Int
	case DataUint32:
		return driver.UnsignedInt
	case DataFloat32:
		return driver.Float
	}
	return driver.InvalidEnum
}

// PixelFormat names either a base channel shape (FormatRed..FormatBGRA) or a
// sized device storage format (FormatR8..FormatRGBA32F). Textures are stored
// in a sized format; uploads describe their source data with a base shape,
// obtained via Base.
type PixelFormat int

const (
	// FormatRed is single-channel base shape.
	FormatRed PixelFormat = iota
	// FormatRG is two-channel base shape.
	FormatRG
	// FormatRGB is three-channel base shape.
	FormatRGB
	// FormatRGBA is four-channel base shape.
	FormatRGBA
	// FormatBGR is three-channel base shape, reversed order.
	FormatBGR
	// FormatBGRA is four-channel base shape, reversed order.
	FormatBGRA

	// FormatR8 is one 8-bit channel.
	FormatR8
	// FormatRG8 is two 8-bit channels.
	FormatRG8
	// FormatRGB8 is three 8-bit channels.
	FormatRGB8
	// FormatRGBA8 is four 8-bit channels.
	FormatRGBA8
	// FormatR32F is one float32 channel.
	FormatR32F
	// FormatRG32F is two float32 channels.
	FormatRG32F
	// FormatRGB32F is three float32 channels.
	FormatRGB32F
	// FormatRGBA32F is four float32 channels.
	FormatRGBA32F
)

// String returns the string representation of PixelFormat.
func (f PixelFormat) String() string {
	switch f {
	case FormatRed:
		return "Red"
	case FormatRG:
		return "RG"
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	case FormatBGR:
		return "BGR"
	case FormatBGRA:
		return "BGRA"
	case FormatR8:
		return "R8"
	case FormatRG8:
		return "RG8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatR32F:
		return "R32F"
	case FormatRG32F:
		return "RG32F"
	case FormatRGB32F:
		return "RGB32F"
	case FormatRGBA32F:
		return "RGBA32F"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// Base reduces a sized format to its channel-shape-only base form. Base
// forms reduce to themselves, so the reduction is idempotent. Upload calls
// need this because the device distinguishes internal storage format from
// the shape of the source pixel data.
func (f PixelFormat) Base() PixelFormat {
	switch f {
	case FormatR8, FormatR32F:
		return FormatRed
	case FormatRG8, FormatRG32F:
		return FormatRG
	case FormatRGB8, FormatRGB32F:
		return FormatRGB
	case FormatRGBA8, FormatRGBA32F:
		return FormatRGBA
	}
	return f
}

// Channels returns the number of color channels, or 0 for an unknown format.
func (f PixelFormat) Channels() int {
	switch f {
	case FormatRed, FormatR8, FormatR32F:
		return 1
	case FormatRG, FormatRG8, FormatRG32F:
		return 2
	case FormatRGB, FormatBGR, FormatRGB8, FormatRGB32F:
		return 3
	case FormatRGBA, FormatBGRA, FormatRGBA8, FormatRGBA32F:
		return 4
	}
	return 0
}

func (f PixelFormat) device() driver.Enum {
	switch f {
	case FormatRed:
		return driver.Red
	case FormatRG:
		return driver.RG
	case FormatRGB:
		return driver.RGB
	case FormatRGBA:
		return driver.RGBA
	case FormatBGR:
		return driver.BGR
	case FormatBGRA:
		return driver.BGRA
	case FormatR8:
		return driver.R8
	case FormatRG8:
		return driver.RG8
	case FormatRGB8:
		return driver.RGB8
	case FormatRGBA8:
		return driver.RGBA8
	case FormatR32F:
		return driver.R32F
	case FormatRG32F:
		return driver.RG32F
	case FormatRGB32F:
		return driver.RGB32F
	case FormatRGBA32F:
		return driver.RGBA32F
	}
	return driver.InvalidEnum
}

// FilterMode is a texture sampling filter.
type FilterMode int

const (
	// FilterNearest samples the nearest texel.
	FilterNearest FilterMode = iota
	// FilterLinear interpolates between neighboring texels.
	FilterLinear
)

// String returns the string representation of FilterMode.
func (m FilterMode) String() string {
	switch m {
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

func (m FilterMode) device() driver.Enum {
	switch m {
	case FilterNearest:
		return driver.Nearest
	case FilterLinear:
		return driver.Linear
	}
	return driver.InvalidEnum
}

// WrapMode is a texture coordinate wrapping rule.
type WrapMode int

const (
	// WrapClampToEdge clamps coordinates to the edge texel.
	WrapClampToEdge WrapMode = iota
	// WrapClampToBorder clamps coordinates to the border color.
	WrapClampToBorder
	// WrapMirroredRepeat repeats the texture, mirroring every other tile.
	WrapMirroredRepeat
	// WrapRepeat repeats the texture.
	WrapRepeat
	// WrapMirrorClampToEdge mirrors once, then clamps.
	WrapMirrorClampToEdge
)

// String returns the string representation of WrapMode.
func (m WrapMode) String() string {
	switch m {
	case WrapClampToEdge:
		return "ClampToEdge"
	case WrapClampToBorder:
		return "ClampToBorder"
	case WrapMirroredRepeat:
		return "MirroredRepeat"
	case WrapRepeat:
		return "Repeat"
	case WrapMirrorClampToEdge:
		return "MirrorClampToEdge"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

func (m WrapMode) device() driver.Enum {
	switch m {
	case WrapClampToEdge:
		return driver.ClampToEdge
	case WrapClampToBorder:
		return driver.ClampToBorder
	case WrapMirroredRepeat:
		return driver.MirroredRepeat
	case WrapRepeat:
		return driver.Repeat
	case WrapMirrorClampToEdge:
		return driver.MirrorClampToEdge
	}
	return driver.InvalidEnum
}

// ShaderStage names one programmable pipeline stage.
type ShaderStage int

const (
	// StageVertex is the vertex stage.
	StageVertex ShaderStage = iota
	// StageFragment is the fragment stage.
	StageFragment
)

// String returns the string representation of ShaderStage.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

func (s ShaderStage) device() driver.Enum {
	switch s {
	case StageVertex:
		return driver.VertexShader
	case StageFragment:
		return driver.FragmentShader
	}
	return driver.InvalidEnum
}
