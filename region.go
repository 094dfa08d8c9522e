package alloc

import "unsafe"

// Region is a bump allocator over a caller-supplied buffer.
// Allocation is a bounds check and a cursor advance. Not goroutine-safe.
//
// The region never owns its buffer: the caller keeps it alive and frees it
// (see MapRegion for a mapped buffer that comes with its own unmap).
type Region struct {
	buf  []byte
	off  int // next free byte
	last int // start of the most recent block, -1 if none
}

// NewRegion creates a Region that hands out bytes from buf.
func NewRegion(buf []byte) *Region {
	return &Region{buf: buf, last: -1}
}

// Allocate returns the cursor and advances it by n when at least n bytes
// remain. Otherwise it returns nil and the cursor does not move.
// Returns nil if n <= 0.
func (r *Region) Allocate(n int) unsafe.Pointer {
	if n <= 0 || len(r.buf)-r.off < n {
		return nil
	}
	p := unsafe.Pointer(&r.buf[r.off])
	r.last = r.off
	r.off += n
	return p
}

// Alignment is the declared alignment. Offsets are not rounded.
func (r *Region) Alignment() int { return 1 }

// Owns reports whether p lies within [start, end) of the buffer.
func (r *Region) Owns(p unsafe.Pointer) bool {
	_, ok := r.offsetOf(p)
	return ok
}

// Release rolls the cursor back if p is the most recently allocated block.
// Any other pointer, including nil, is ignored: a bump allocator cannot
// reclaim blocks out of order.
func (r *Region) Release(p unsafe.Pointer) {
	off, ok := r.offsetOf(p)
	if !ok || off != r.last {
		return
	}
	r.off = r.last
	r.last = -1
}

// Grow resizes p in place. The most recent block can grow or shrink as
// long as the buffer has room; any other owned block can only shrink, and
// the bytes it gives up are not reclaimed.
func (r *Region) Grow(p unsafe.Pointer, oldSize, newSize int) bool {
	off, ok := r.offsetOf(p)
	if !ok || newSize <= 0 {
		return false
	}
	if off == r.last {
		if newSize > len(r.buf)-off {
			return false
		}
		r.off = off + newSize
		return true
	}
	return newSize <= oldSize
}

// Reset rewinds the cursor to the start of the buffer. Every pointer handed
// out so far becomes invalid.
func (r *Region) Reset() {
	r.off = 0
	r.last = -1
}

// offsetOf converts p into an offset within the buffer.
func (r *Region) offsetOf(p unsafe.Pointer) (int, bool) {
	if p == nil || len(r.buf) == 0 {
		return 0, false
	}
	start := uintptr(unsafe.Pointer(unsafe.SliceData(r.buf)))
	addr := uintptr(p)
	if addr < start || addr-start >= uintptr(len(r.buf)) {
		return 0, false
	}
	return int(addr - start), true
}
