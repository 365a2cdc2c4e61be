package null

import (
	"bytes"
	"testing"

	"github.com/gogpu/mgl/driver"
)

func TestRegistersOnImport(t *testing.T) {
	if !driver.IsRegistered(driver.DeviceNull) {
		t.Fatal("null device not registered")
	}
	d := driver.Get(driver.DeviceNull)
	if d == nil {
		t.Fatal("Get(null) = nil")
	}
	if d.Name() != driver.DeviceNull {
		t.Errorf("Name() = %q, want %q", d.Name(), driver.DeviceNull)
	}
}

func TestBufferLifecycle(t *testing.T) {
	d := New()

	h := d.GenBuffer()
	d.BindBuffer(driver.ArrayBuffer, h)
	d.BufferData(driver.ArrayBuffer, 8, []byte{1, 2, 3}, driver.StaticDraw)

	b := d.Buffers[h]
	if len(b.Data) != 8 {
		t.Fatalf("storage = %d bytes, want 8", len(b.Data))
	}
	if !bytes.Equal(b.Data[:3], []byte{1, 2, 3}) {
		t.Errorf("seed = %v", b.Data[:3])
	}

	d.BufferSubData(driver.ArrayBuffer, 4, []byte{9, 9})
	if b.Data[4] != 9 || b.Data[5] != 9 {
		t.Errorf("sub-data not applied: %v", b.Data)
	}

	d.DeleteBuffer(h)
	if _, ok := d.Buffers[h]; ok {
		t.Error("buffer survives DeleteBuffer")
	}
}

func TestBufferErrors(t *testing.T) {
	d := New()

	// Upload with nothing bound.
	d.BufferData(driver.ArrayBuffer, 8, nil, driver.StaticDraw)
	if got := d.GetError(); got != driver.InvalidOperation {
		t.Errorf("GetError() = %#x, want InvalidOperation", got)
	}

	// Out-of-range sub-data.
	h := d.GenBuffer()
	d.BindBuffer(driver.ArrayBuffer, h)
	d.BufferData(driver.ArrayBuffer, 4, nil, driver.StaticDraw)
	d.BufferSubData(driver.ArrayBuffer, 2, []byte{1, 2, 3})
	if got := d.GetError(); got != driver.InvalidValue {
		t.Errorf("GetError() = %#x, want InvalidValue", got)
	}
}

func TestErrorQueueDrains(t *testing.T) {
	d := New()
	d.ErrorQueue = []driver.Enum{driver.InvalidEnum, driver.InvalidValue}

	if got := d.GetError(); got != driver.InvalidEnum {
		t.Errorf("first GetError() = %#x", got)
	}
	if got := d.GetError(); got != driver.InvalidValue {
		t.Errorf("second GetError() = %#x", got)
	}
	if got := d.GetError(); got != driver.NoError {
		t.Errorf("drained GetError() = %#x, want NoError", got)
	}
}

func TestShaderCompile(t *testing.T) {
	d := New()

	s := d.CreateShader(driver.VertexShader)
	d.ShaderSource(s, "void main() {}")
	d.CompileShader(s)
	if !d.ShaderCompiled(s) {
		t.Error("shader with source failed to compile")
	}

	// Empty source never compiles.
	e := d.CreateShader(driver.VertexShader)
	d.CompileShader(e)
	if d.ShaderCompiled(e) {
		t.Error("empty shader compiled")
	}

	// The failure knob is per stage.
	d.FailCompile[driver.FragmentShader] = true
	f := d.CreateShader(driver.FragmentShader)
	d.ShaderSource(f, "void main() {}")
	d.CompileShader(f)
	if d.ShaderCompiled(f) {
		t.Error("shader compiled with FailCompile set for its stage")
	}

	buf := make([]byte, 64)
	n := d.ShaderInfoLog(f, buf)
	if n == 0 {
		t.Error("empty info log for failed shader")
	}
}

func TestUniformLocationStable(t *testing.T) {
	d := New()
	p := d.CreateProgram()

	a := d.UniformLocation(p, "a")
	b := d.UniformLocation(p, "b")
	if a == b {
		t.Errorf("distinct names share location %d", a)
	}
	if got := d.UniformLocation(p, "a"); got != a {
		t.Errorf("repeat lookup = %d, want %d", got, a)
	}
	if d.UniformLookups != 3 {
		t.Errorf("UniformLookups = %d, want 3", d.UniformLookups)
	}
	if got := d.UniformLocation(99, "a"); got != -1 {
		t.Errorf("lookup on unknown program = %d, want -1", got)
	}
}
