package mgl

// Allocator is the storage strategy for the memory this layer owns: vertex
// array attachment lists and transient staging blocks. It is installed at
// Context construction and fixed for that Context's lifetime.
//
// Invariant: a block is released on the same Allocator that produced it.
// Implementations that recycle storage (pools, arenas) rely on this.
//
// The layer does not check for allocation failure; an implementation that
// cannot satisfy a request should panic rather than return a short block.
type Allocator interface {
	// AllocBytes returns a zeroed block of n bytes.
	AllocBytes(n int) []byte

	// FreeBytes releases a block obtained from AllocBytes.
	FreeBytes(block []byte)

	// AllocBufferList returns storage for n buffer ownership links.
	AllocBufferList(n int) []*Buffer

	// FreeBufferList releases storage obtained from AllocBufferList.
	FreeBufferList(list []*Buffer)
}

// HeapAllocator is the default Allocator. It allocates from the Go heap and
// leaves reclamation to the garbage collector, so both Free methods are
// no-ops.
type HeapAllocator struct{}

func (HeapAllocator) AllocBytes(n int) []byte { return make([]byte, n) }

func (HeapAllocator) FreeBytes([]byte) {}

func (HeapAllocator) AllocBufferList(n int) []*Buffer { return make([]*Buffer, n) }

func (HeapAllocator) FreeBufferList([]*Buffer) {}
