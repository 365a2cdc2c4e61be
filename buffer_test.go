package mgl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/mgl/driver"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name      string
		kind      BufferKind
		size      int
		data      []byte
		dynamic   bool
		wantUsage driver.Enum
	}{
		{"static array", BufferArray, 64, nil, false, driver.StaticDraw},
		{"dynamic array", BufferArray, 64, nil, true, driver.DynamicDraw},
		{"seeded element", BufferElement, 16, []byte{1, 2, 3, 4}, true, driver.DynamicDraw},
		{"uniform", BufferUniform, 256, nil, true, driver.DynamicDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, dev := newTestContext(t)
			b := ctx.NewBuffer(tt.kind, tt.size, tt.data, tt.dynamic)

			if b.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", b.Size(), tt.size)
			}
			if b.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", b.Kind(), tt.kind)
			}

			state := dev.Buffers[b.Handle()]
			if state == nil {
				t.Fatal("no device storage behind the handle")
			}
			if len(state.Data) != tt.size {
				t.Errorf("device storage = %d bytes, want %d", len(state.Data), tt.size)
			}
			if state.Usage != tt.wantUsage {
				t.Errorf("usage = %#x, want %#x", state.Usage, tt.wantUsage)
			}
			if !bytes.HasPrefix(state.Data, tt.data) {
				t.Errorf("seed data not uploaded: %v", state.Data[:len(tt.data)])
			}
		})
	}
}

func TestBufferWriteRoundTrip(t *testing.T) {
	// Writing N bytes at offset O must reach the device exactly as issued:
	// same offset, same length, same bytes.
	ctx, dev := newTestContext(t)
	b := ctx.NewBuffer(BufferArray, 32, nil, true)

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	b.Write(payload, 8)

	if len(dev.SubData) != 1 {
		t.Fatalf("sub-data uploads = %d, want 1", len(dev.SubData))
	}
	rec := dev.SubData[0]
	if rec.Offset != 8 {
		t.Errorf("offset = %d, want 8", rec.Offset)
	}
	if !bytes.Equal(rec.Data, payload) {
		t.Errorf("data = %v, want %v", rec.Data, payload)
	}

	state := dev.Buffers[b.Handle()]
	if !bytes.Equal(state.Data[8:12], payload) {
		t.Errorf("device storage = %v, want %v at offset 8", state.Data[8:12], payload)
	}
}

func TestWriteSlice(t *testing.T) {
	ctx, dev := newTestContext(t)
	b := ctx.NewBuffer(BufferArray, 64, nil, true)

	verts := []Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 0, Y: 1}}
	WriteSlice(b, verts, 0)

	if len(dev.SubData) != 1 {
		t.Fatalf("sub-data uploads = %d, want 1", len(dev.SubData))
	}
	if got, want := len(dev.SubData[0].Data), 3*8; got != want {
		t.Errorf("upload length = %d, want %d", got, want)
	}

	t.Run("empty slice is a no-op", func(t *testing.T) {
		WriteSlice(b, []Vec2(nil), 0)
		if len(dev.SubData) != 1 {
			t.Errorf("sub-data uploads = %d, want still 1", len(dev.SubData))
		}
	})
}

func TestBufferBind(t *testing.T) {
	ctx, dev := newTestContext(t)
	b := ctx.NewBuffer(BufferElement, 16, nil, false)
	b.Bind()

	if got := dev.Bound.Buffers[driver.ElementArrayBuffer]; got != b.Handle() {
		t.Errorf("bound element buffer = %d, want %d", got, b.Handle())
	}
}

func TestBufferDestroy(t *testing.T) {
	ctx, dev := newTestContext(t)
	b := ctx.NewBuffer(BufferArray, 16, nil, false)
	handle := b.Handle()

	b.Destroy()
	if _, ok := dev.Buffers[handle]; ok {
		t.Error("device buffer still present after Destroy")
	}
	if b.Handle() != 0 {
		t.Errorf("Handle() = %d after Destroy, want 0", b.Handle())
	}

	// Destroying twice must not issue a second delete.
	b.Destroy()
	deletes := 0
	for _, tr := range dev.Trace {
		if strings.HasPrefix(tr, "DeleteBuffer(") {
			deletes++
		}
	}
	if deletes != 1 {
		t.Errorf("DeleteBuffer calls = %d, want 1", deletes)
	}
}
