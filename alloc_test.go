package mgl

import "testing"

func TestHeapAllocator(t *testing.T) {
	var a HeapAllocator

	block := a.AllocBytes(16)
	if len(block) != 16 {
		t.Fatalf("AllocBytes(16) length = %d", len(block))
	}
	for i, b := range block {
		if b != 0 {
			t.Fatalf("byte %d = %d, want zeroed block", i, b)
		}
	}
	a.FreeBytes(block)

	list := a.AllocBufferList(3)
	if len(list) != 3 {
		t.Fatalf("AllocBufferList(3) length = %d", len(list))
	}
	for i, p := range list {
		if p != nil {
			t.Fatalf("slot %d = %v, want nil", i, p)
		}
	}
	a.FreeBufferList(list)
}

func TestAllocatorZeroLength(t *testing.T) {
	var a HeapAllocator
	if got := a.AllocBytes(0); len(got) != 0 {
		t.Errorf("AllocBytes(0) length = %d", len(got))
	}
	if got := a.AllocBufferList(0); len(got) != 0 {
		t.Errorf("AllocBufferList(0) length = %d", len(got))
	}
}
