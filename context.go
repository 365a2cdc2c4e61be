package mgl

import (
	"errors"
	"fmt"

	"github.com/gogpu/mgl/driver"
)

// Context errors.
var (
	// ErrNoDevice is returned by New when no device is available.
	ErrNoDevice = errors.New("mgl: no device available")

	// ErrDeviceError wraps a device-reported error state. It is routed to
	// the fault hook, never returned.
	ErrDeviceError = errors.New("mgl: device error")

	// ErrArity wraps a uniform upload whose view length does not match the
	// primitive's fixed arity. It is routed to the fault hook, never
	// returned.
	ErrArity = errors.New("mgl: uniform arity mismatch")
)

// Config describes a Context to create. The zero value selects the default
// registered device, the heap allocator, a panicking fault hook and enabled
// device error checks.
type Config struct {
	// Device is the device to use. When nil, Backend (or the registry
	// default) selects one.
	Device driver.Device

	// Backend names a registered device to use when Device is nil.
	Backend string

	// Allocator is the storage strategy for layer-owned memory.
	// Nil means HeapAllocator.
	Allocator Allocator

	// OnFault receives contract violations: device-reported errors and
	// uniform arity mismatches. These indicate a defect in the calling
	// code, not a runtime condition to recover from. Nil means panic.
	OnFault func(error)

	// DisableChecks turns off device error sampling after bind, upload
	// and draw paths.
	DisableChecks bool
}

// Context owns a device and the process-wide selection state that comes with
// it. Every resource object is created through a Context and stays tied to
// it for its whole lifecycle.
//
// A Context is confined to the goroutine holding the device's rendering
// context; none of its operations are safe to interleave from two
// goroutines.
type Context struct {
	dev     driver.Device
	alloc   Allocator
	onFault func(error)
	checks  bool

	// current mirrors the device's selection state for the slots this
	// layer binds. Diagnostic only; the device remains authoritative.
	current struct {
		program     uint32
		vertexArray uint32
	}
}

// New creates a Context. The configuration is fixed for the Context's
// lifetime; in particular the allocator is installed exactly once, here.
//
// The device's entry points must already be resolved by the time New is
// called (for driver/gl that means a current GL context).
func New(cfg Config) (*Context, error) {
	dev := cfg.Device
	if dev == nil {
		if cfg.Backend != "" {
			dev = driver.Get(cfg.Backend)
			if dev == nil {
				return nil, fmt.Errorf("%w: %q", driver.ErrDeviceNotAvailable, cfg.Backend)
			}
		} else {
			dev = driver.Default()
		}
	}
	if dev == nil {
		return nil, ErrNoDevice
	}

	alloc := cfg.Allocator
	if alloc == nil {
		alloc = HeapAllocator{}
	}

	onFault := cfg.OnFault
	if onFault == nil {
		onFault = func(err error) { panic(err) }
	}

	c := &Context{
		dev:     dev,
		alloc:   alloc,
		onFault: onFault,
		checks:  !cfg.DisableChecks,
	}
	Logger().Info("mgl: context created", "device", dev.Name())
	return c, nil
}

// Device returns the underlying device.
func (c *Context) Device() driver.Device { return c.dev }

// Allocator returns the installed allocator.
func (c *Context) Allocator() Allocator { return c.alloc }

// Viewport sets the device viewport rectangle in framebuffer pixels.
func (c *Context) Viewport(x, y, width, height int) {
	c.dev.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// ClearOptions selects what Clear clears. Color and depth are independent;
// clearing neither is a no-op.
type ClearOptions struct {
	// R, G, B, A is the color the color buffer is cleared to.
	R, G, B, A float32

	// Color clears the color buffer.
	Color bool

	// Depth clears the depth buffer.
	Depth bool
}

// Clear clears the selected framebuffer planes.
func (c *Context) Clear(opts ClearOptions) {
	var mask driver.Enum
	if opts.Color {
		c.dev.ClearColor(opts.R, opts.G, opts.B, opts.A)
		mask |= driver.ColorBufferBit
	}
	if opts.Depth {
		mask |= driver.DepthBufferBit
	}
	if mask == 0 {
		return
	}
	c.dev.Clear(mask)
	c.check("clear")
}

// fault reports a contract violation through the configured hook.
func (c *Context) fault(err error) {
	c.onFault(err)
}

// check samples the device error state after op and routes any error to the
// fault hook. Development-time contract violation detector, not a recovery
// path.
func (c *Context) check(op string) {
	if !c.checks {
		return
	}
	if code := c.dev.GetError(); code != driver.NoError {
		c.fault(fmt.Errorf("%w: %s after %s", ErrDeviceError, deviceErrorName(code), op))
	}
}

// assertArity checks a fixed-arity upload primitive's element count.
func (c *Context) assertArity(op string, want, got int) bool {
	if want == got {
		return true
	}
	c.fault(fmt.Errorf("%w: %s wants %d elements, got %d", ErrArity, op, want, got))
	return false
}

func deviceErrorName(code driver.Enum) string {
	switch code {
	case driver.InvalidEnum:
		return "INVALID_ENUM"
	case driver.InvalidValue:
		return "INVALID_VALUE"
	case driver.InvalidOperation:
		return "INVALID_OPERATION"
	case driver.OutOfMemory:
		return "OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("error %#x", code)
	}
}
