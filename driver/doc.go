// Package driver defines the narrow device interface the mgl resource layer
// is written against, together with a registry of device implementations.
//
// The resource layer assumes an immediate-mode device API: opaque integer
// handles name GPU-resident objects, and most calls act on whatever object is
// currently bound to a process-wide selection slot. Device implementations
// must be registered via Register() and are selected via Get() or Default().
//
// Two implementations ship with mgl:
//   - driver/gl: forwards every entry point to OpenGL via go-gl. Requires a
//     current GL context at the time the device is requested.
//   - driver/null: a pure Go in-memory device that simulates object
//     lifecycles and records every call. Used by the test suites and as a
//     headless fallback.
package driver
