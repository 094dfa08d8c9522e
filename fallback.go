package alloc

import "unsafe"

// fallback serves requests from primary and turns to secondary only when
// primary cannot satisfy them.
type fallback struct {
	primary   child
	secondary child
	align     int
}

// NewFallback assembles a primary-with-fallback allocator.
//
// The returned value offers exactly the optional operations its children
// make possible:
//
//   - Owns when both children are Owners.
//   - Release when primary is an Owner and either child is a Releaser.
//     Releasing a block whose child cannot release is a silent no-op.
//   - Grow when primary is an Owner and either child is a Grower.
//   - Reallocate when primary is an Owner.
//
// Primary ownership is what routes a pointer back to its child; without it
// the composite cannot tell where a block came from. Children are shared,
// not copied: pass pointer types for allocators with state.
func NewFallback(primary, secondary Allocator) Allocator {
	if primary == nil || secondary == nil {
		panic(ErrNilChild)
	}
	f := &fallback{
		primary:   bind(primary),
		secondary: bind(secondary),
		align:     min(primary.Alignment(), secondary.Alignment()),
	}
	return expose(f, f.capabilities())
}

// NewOwningFallback is NewFallback for children that can both answer
// ownership queries. The result is guaranteed to be an Owner; children
// without Owns are rejected by the compiler.
func NewOwningFallback(primary, secondary OwningAllocator) OwningAllocator {
	return NewFallback(primary, secondary).(OwningAllocator)
}

func (f *fallback) capabilities() CapSet {
	p, s := f.primary.caps, f.secondary.caps
	var caps CapSet
	if p.Has(CapOwns) && s.Has(CapOwns) {
		caps = caps.With(CapOwns)
	}
	if !p.Has(CapOwns) {
		return caps
	}
	caps = caps.With(CapReallocate)
	if p.Has(CapRelease) || s.Has(CapRelease) {
		caps = caps.With(CapRelease)
	}
	if p.Has(CapGrow) || s.Has(CapGrow) {
		caps = caps.With(CapGrow)
	}
	return caps
}

func (f *fallback) Allocate(n int) unsafe.Pointer {
	if p := f.primary.Allocate(n); p != nil {
		return p
	}
	return f.secondary.Allocate(n)
}

func (f *fallback) Alignment() int { return f.align }

func (f *fallback) Owns(p unsafe.Pointer) bool {
	return f.primary.owns(p) || f.secondary.owns(p)
}

// route returns the child holding p and the other one. Anything primary
// does not own is assumed to belong to secondary.
func (f *fallback) route(p unsafe.Pointer) (owner, other child) {
	if f.primary.owns(p) {
		return f.primary, f.secondary
	}
	return f.secondary, f.primary
}

func (f *fallback) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}
	owner, _ := f.route(p)
	owner.release(p)
}

func (f *fallback) Grow(p unsafe.Pointer, oldSize, newSize int) bool {
	if p == nil || oldSize < 0 || newSize <= 0 {
		return false
	}
	owner, _ := f.route(p)
	return owner.tryGrow(p, oldSize, newSize)
}

// Reallocate first lets the owning child resize the block itself. If it
// cannot, the block moves to the other child: allocate there, copy the
// common prefix, release from the owner. A failed allocation leaves p
// untouched.
func (f *fallback) Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	switch {
	case oldSize < 0 || newSize < 0:
		return p, false
	case newSize == 0:
		f.Release(p)
		return nil, true
	case p == nil:
		q := f.Allocate(newSize)
		return q, q != nil
	case oldSize == newSize:
		return p, true
	}
	owner, other := f.route(p)
	if q, ok := owner.resize(p, oldSize, newSize); ok {
		return q, true
	}
	return move(owner, other, p, oldSize, newSize)
}
