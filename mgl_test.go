package mgl

import (
	"testing"

	"github.com/gogpu/mgl/driver/null"
)

// newTestContext creates a Context over a fresh null device. Any fault is a
// test failure unless the test installs its own hook.
func newTestContext(t *testing.T) (*Context, *null.Device) {
	t.Helper()
	dev := null.New()
	ctx, err := New(Config{
		Device: dev,
		OnFault: func(err error) {
			t.Fatalf("unexpected fault: %v", err)
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return ctx, dev
}

// countingAllocator wraps HeapAllocator and records traffic, so tests can
// assert that layer-owned storage really goes through the installed
// allocator and comes back to it.
type countingAllocator struct {
	HeapAllocator
	bytesAllocs int
	bytesFrees  int
	listAllocs  int
	listFrees   int

	lastFreedList []*Buffer
}

func (a *countingAllocator) AllocBytes(n int) []byte {
	a.bytesAllocs++
	return a.HeapAllocator.AllocBytes(n)
}

func (a *countingAllocator) FreeBytes(block []byte) {
	a.bytesFrees++
	a.HeapAllocator.FreeBytes(block)
}

func (a *countingAllocator) AllocBufferList(n int) []*Buffer {
	a.listAllocs++
	return a.HeapAllocator.AllocBufferList(n)
}

func (a *countingAllocator) FreeBufferList(list []*Buffer) {
	a.listFrees++
	a.lastFreedList = list
	a.HeapAllocator.FreeBufferList(list)
}
