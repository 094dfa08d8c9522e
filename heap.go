package alloc

import (
	"unsafe"

	"modernc.org/memory"
)

// HeapAlignment is the alignment Heap declares: the system allocator
// returns blocks aligned to two machine words.
const HeapAlignment = int(2 * unsafe.Sizeof(uintptr(0)))

// Heap delegates to a malloc-style system allocator whose memory lives
// outside the Go heap. It keeps no bookkeeping of its own, so it cannot
// answer ownership queries. Not goroutine-safe.
type Heap struct {
	m memory.Allocator
}

// NewHeap creates an empty Heap. Call Close when done with it.
func NewHeap() *Heap {
	return &Heap{}
}

// Allocate returns n bytes from the system allocator, or nil on failure.
// Returns nil if n <= 0.
func (h *Heap) Allocate(n int) unsafe.Pointer {
	if n <= 0 {
		return nil
	}
	p, err := h.m.UnsafeMalloc(n)
	if err != nil {
		return nil
	}
	return p
}

func (h *Heap) Alignment() int { return HeapAlignment }

// Release returns p to the system allocator. Releasing nil is a no-op.
func (h *Heap) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}
	_ = h.m.UnsafeFree(p)
}

// Grow succeeds when the block's usable size already covers newSize.
func (h *Heap) Grow(p unsafe.Pointer, oldSize, newSize int) bool {
	if p == nil || newSize <= 0 {
		return false
	}
	return newSize <= memory.UnsafeUsableSize(p)
}

// Reallocate resizes p through the system allocator, which may move it.
// A newSize of 0 frees p. Any error from the system allocator is reported
// as failure with p returned.
func (h *Heap) Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	switch {
	case newSize < 0:
		return p, false
	case newSize == 0:
		h.Release(p)
		return nil, true
	case p == nil:
		q := h.Allocate(newSize)
		return q, q != nil
	}
	q, err := h.m.UnsafeRealloc(p, newSize)
	if err != nil || q == nil {
		return p, false
	}
	return q, true
}

// Close releases every block still held by the system allocator.
func (h *Heap) Close() error {
	return h.m.Close()
}
