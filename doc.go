// Package mgl provides a minimal, type-safe resource-management layer over
// an OpenGL-shaped device API.
//
// # Overview
//
// mgl wraps the raw handle-based, bind-before-use device API in owned,
// strongly-typed objects: Buffer, VertexArray, Texture, Program and Sampler.
// It is a zero-abstraction-cost pass-through: no scene graph, no render
// graph, no asset pipeline, no draw batching. What it adds is ownership
// (every device handle has exactly one owner), type safety (uniform and
// attribute uploads are dispatched by semantic value type, with their fixed
// arity enforced at the call site), and a pluggable allocation strategy for
// the storage the layer itself owns.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/mgl"
//	    _ "github.com/gogpu/mgl/driver/gl" // OpenGL device (needs a current context)
//	)
//
//	ctx, err := mgl.New(mgl.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vbo := ctx.NewBuffer(mgl.BufferArray, 4096, nil, true)
//	vao := ctx.NewVertexArray([]*mgl.Buffer{vbo}, func(handle uint32, buffers []*mgl.Buffer) {
//	    buffers[0].Bind()
//	    mgl.AttribVec2(ctx, 0, 8, 0)
//	})
//	defer vao.Destroy() // destroys vbo too: the vertex array owns it
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Buffer, VertexArray, Texture, Program, Sampler,
//     View, the semantic value types (Vec2..Mat4) and the dispatch families.
//   - driver: the narrow device interface and the device registry.
//   - driver/gl: the OpenGL device (go-gl), registered on import.
//   - driver/null: an in-memory recording device for tests and headless use.
//
// # Error Model
//
// Two disjoint channels. Shader compile/link failure is the only routine,
// recoverable failure: Context.NewProgram returns a nil program and an error
// carrying the device diagnostic log. Everything else that goes wrong, such
// as an arity mismatch in a uniform upload or a device-reported error state,
// is a contract violation in the calling code and routes to the Context's
// fault hook, which panics by default. Configure Config.OnFault to change
// that.
//
// # Concurrency
//
// The device's bind state is global to its context, so a Context and every
// object created from it are confined to one goroutine (conventionally the
// thread holding the GL context). Nothing in this package locks.
package mgl
