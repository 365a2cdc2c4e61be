// Command mgldemo draws a textured triangle through the mgl resource layer.
package main

import (
	"flag"
	"log"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/mgl"
	"github.com/gogpu/mgl/driver"
	_ "github.com/gogpu/mgl/driver/gl"
)

const vertexSrc = `#version 410
layout(location = 0) in vec2 vertexPosition;

uniform mat4 matrix;

void main() {
    gl_Position = matrix * vec4(vertexPosition, 0, 1);
}
`

const fragmentSrc = `#version 410
uniform sampler2D sampler1;
out vec4 fragColour;

void main() {
    fragColour = vec4(texture(sampler1, vec2(0, 0)).rgb, 1);
}
`

type vertex struct {
	position mgl.Vec2
}

func init() {
	// The GL context is bound to the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		width  = flag.Int("width", 1280, "window width")
		height = flag.Int("height", 720, "window height")
	)
	flag.Parse()

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(*width, *height, "mgldemo", nil, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	defer window.Destroy()

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	ctx, err := mgl.New(mgl.Config{Backend: driver.DeviceOpenGL})
	if err != nil {
		log.Fatalf("mgl: %v", err)
	}

	vertices := []vertex{
		{position: mgl.Vec2{X: -1, Y: -1}},
		{position: mgl.Vec2{X: 1, Y: -1}},
		{position: mgl.Vec2{X: 0, Y: 1}},
	}

	vbo := ctx.NewBuffer(mgl.BufferArray, 4096, nil, true)
	mgl.WriteSlice(vbo, vertices, 0)

	stride := int(unsafe.Sizeof(vertex{}))
	vao := ctx.NewVertexArray([]*mgl.Buffer{vbo}, func(_ uint32, buffers []*mgl.Buffer) {
		buffers[0].Bind()
		mgl.AttribVec2(ctx, 0, stride, 0)
	})
	defer vao.Destroy() // owns vbo

	texture := ctx.NewTexture(1, 1, mgl.FormatRGB32F, &mgl.TextureSource{
		Format: mgl.FormatRGB,
		Type:   mgl.DataUint8,
		Pixels: []byte{0xFF, 0x00, 0xFF},
	})
	defer texture.Destroy()

	var opts mgl.TextureOptions
	opts.Filter.Min = mgl.FilterNearest
	opts.Filter.Mag = mgl.FilterNearest
	opts.Wrap.S = mgl.WrapClampToEdge
	opts.Wrap.T = mgl.WrapClampToEdge
	opts.Wrap.R = mgl.WrapClampToEdge
	texture.SetOptions(opts)

	sampler := mgl.NewSampler(0)
	sampler.SetTexture(texture)

	diag := make([]byte, 1024)
	program, err := ctx.NewProgram(vertexSrc, fragmentSrc, diag)
	if err != nil {
		log.Fatalf("shader: %v", err)
	}
	defer program.Destroy()

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			break
		}

		w, h := window.GetFramebufferSize()
		render(ctx, vao, program, sampler, w, h)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func render(ctx *mgl.Context, vao *mgl.VertexArray, program *mgl.Program, sampler *mgl.Sampler, w, h int) {
	ctx.Viewport(0, 0, w, h)
	ctx.Clear(mgl.ClearOptions{R: 0.1, G: 0.1, B: 0.1, A: 1, Color: true, Depth: true})

	vao.Bind()
	sampler.Bind(ctx)
	program.Use()

	program.Uniform("sampler1").SetSampler(sampler)
	program.Uniform("matrix").SetMat4(mgl.Mat4Identity())

	vao.Draw(mgl.DrawTriangles, 0, 3)
}
