package alloc

import "unsafe"

// child is an allocator bound to the optional operations it offers.
// Binding happens once, when a composite is assembled; a nil field means
// the capability is absent and the matching path is skipped.
type child struct {
	Allocator
	caps CapSet
	own  Owner
	rel  Releaser
	grow Grower
	re   Reallocator
}

func bind(a Allocator) child {
	c := child{Allocator: a, caps: Detect(a)}
	if c.caps.Has(CapOwns) {
		c.own = a.(Owner)
	}
	if c.caps.Has(CapRelease) {
		c.rel = a.(Releaser)
	}
	if c.caps.Has(CapGrow) {
		c.grow = a.(Grower)
	}
	if c.caps.Has(CapReallocate) {
		c.re = a.(Reallocator)
	}
	return c
}

func (c child) owns(p unsafe.Pointer) bool {
	return c.own != nil && c.own.Owns(p)
}

// release is best-effort: without a Releaser the block stays allocated.
func (c child) release(p unsafe.Pointer) {
	if p == nil || c.rel == nil {
		return
	}
	c.rel.Release(p)
}

func (c child) tryGrow(p unsafe.Pointer, oldSize, newSize int) bool {
	return c.grow != nil && c.grow.Grow(p, oldSize, newSize)
}

// resize tries the child's own in-place growth, then its own reallocation.
func (c child) resize(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	if c.tryGrow(p, oldSize, newSize) {
		return p, true
	}
	if c.re != nil {
		if q, ok := c.re.Reallocate(p, oldSize, newSize); ok {
			return q, true
		}
	}
	return p, false
}

// move allocates newSize bytes from dst, copies the common prefix and
// releases p from src. If dst cannot allocate, p is returned untouched.
func move(src, dst child, p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	q := dst.Allocate(newSize)
	if q == nil {
		return p, false
	}
	copyBlock(q, p, min(oldSize, newSize))
	src.release(p)
	return q, true
}

func copyBlock(dst, src unsafe.Pointer, n int) {
	if n <= 0 || dst == nil || src == nil {
		return
	}
	copy(Bytes(dst, n), Bytes(src, n))
}

// Owns asks a whether it owns p. known is false when a cannot answer.
func Owns(a Allocator, p unsafe.Pointer) (owned, known bool) {
	o, ok := a.(Owner)
	if !ok {
		return false, false
	}
	return o.Owns(p), true
}

// Release returns p to a if a can release blocks, and does nothing
// otherwise. The silent no-op leaks the block; callers that need a real
// release should Require CapRelease up front.
func Release(a Allocator, p unsafe.Pointer) {
	bind(a).release(p)
}

// Grow resizes p in place if a supports it.
func Grow(a Allocator, p unsafe.Pointer, oldSize, newSize int) bool {
	if oldSize < 0 || newSize < 0 {
		return false
	}
	return bind(a).tryGrow(p, oldSize, newSize)
}

// Reallocate resizes p using whatever a offers: in-place growth, its own
// reallocation, or allocate-copy-release within a. A newSize of 0 releases
// p; a nil p allocates. On failure the returned pointer is p, unchanged.
func Reallocate(a Allocator, p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	return reallocateWithin(bind(a), p, oldSize, newSize)
}

func reallocateWithin(c child, p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	switch {
	case oldSize < 0 || newSize < 0:
		return p, false
	case newSize == 0:
		c.release(p)
		return nil, true
	case p == nil:
		q := c.Allocate(newSize)
		return q, q != nil
	case oldSize == newSize:
		return p, true
	}
	if q, ok := c.resize(p, oldSize, newSize); ok {
		return q, true
	}
	return move(c, c, p, oldSize, newSize)
}
