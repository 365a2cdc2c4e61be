package mgl

import "unsafe"

// View is a non-owning (pointer, length) pair over contiguous elements of
// type T. It never allocates and must not outlive the storage it references.
//
// The zero View is empty. Invariant: a nil pointer implies zero length, so an
// empty View is always safe to iterate.
//
// Views are how data crosses the boundary into this layer: the uniform upload
// primitives take a View and check its length against their fixed arity.
type View[T any] struct {
	ptr *T
	n   int
}

// ViewOf constructs a View over an existing slice. The View aliases the
// slice's backing array; it does not copy.
func ViewOf[T any](s []T) View[T] {
	if len(s) == 0 {
		return View[T]{}
	}
	return View[T]{ptr: &s[0], n: len(s)}
}

// ViewAt constructs a View from an explicit pointer and element count.
// A nil pointer yields an empty View regardless of n.
func ViewAt[T any](ptr *T, n int) View[T] {
	if ptr == nil || n <= 0 {
		return View[T]{}
	}
	return View[T]{ptr: ptr, n: n}
}

// Len returns the number of elements.
func (v View[T]) Len() int { return v.n }

// Empty reports whether the view has no elements.
func (v View[T]) Empty() bool { return v.n == 0 }

// Data returns the viewed elements as a slice, or nil for an empty view.
// The slice aliases the viewed storage.
func (v View[T]) Data() []T {
	if v.ptr == nil {
		return nil
	}
	return unsafe.Slice(v.ptr, v.n)
}

// At returns the element at index i.
func (v View[T]) At(i int) T {
	return v.Data()[i]
}

// Set stores x at index i in the viewed storage.
func (v View[T]) Set(i int, x T) {
	v.Data()[i] = x
}

// FloatsOf reinterprets value's raw storage as a view of its float32
// components, sized sizeof(V)/sizeof(float32). No copy is made: the view
// aliases value, which must stay live while the view is in use.
//
// This is the mechanism by which a Mat4 becomes a 16-element float view for
// upload. The caller guarantees V's storage is a flat sequence of float32
// with no padding; anything else yields garbage elements.
func FloatsOf[V any](value *V) View[float32] {
	n := int(unsafe.Sizeof(*value) / unsafe.Sizeof(float32(0)))
	return ViewAt((*float32)(unsafe.Pointer(value)), n)
}
