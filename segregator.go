package alloc

import (
	"fmt"
	"unsafe"
)

// segregator routes by size: requests up to threshold go to small, larger
// ones to large. A block's size class therefore names its owner.
type segregator struct {
	threshold int
	small     child
	large     child
	align     int
}

// NewSegregator assembles a size-segregating allocator. The threshold is
// fixed for the allocator's lifetime.
//
// The returned value offers:
//
//   - Owns when both children are Owners.
//   - Release when small is an Owner and either child is a Releaser.
//   - Grow when either child is a Grower. Growth that would cross the
//     threshold fails, since a block cannot change children in place.
//   - Reallocate always; blocks crossing the threshold are moved.
//
// It panics if threshold is negative or a child is nil.
func NewSegregator(threshold int, small, large Allocator) Allocator {
	if small == nil || large == nil {
		panic(ErrNilChild)
	}
	if threshold < 0 {
		panic(fmt.Sprintf("alloc: negative segregator threshold %d", threshold))
	}
	s := &segregator{
		threshold: threshold,
		small:     bind(small),
		large:     bind(large),
		align:     min(small.Alignment(), large.Alignment()),
	}
	return expose(s, s.capabilities())
}

func (s *segregator) capabilities() CapSet {
	sm, lg := s.small.caps, s.large.caps
	caps := CapSet(CapReallocate)
	if sm.Has(CapOwns) && lg.Has(CapOwns) {
		caps = caps.With(CapOwns)
	}
	if sm.Has(CapOwns) && (sm.Has(CapRelease) || lg.Has(CapRelease)) {
		caps = caps.With(CapRelease)
	}
	if sm.Has(CapGrow) || lg.Has(CapGrow) {
		caps = caps.With(CapGrow)
	}
	return caps
}

func (s *segregator) isSmall(n int) bool { return n <= s.threshold }

func (s *segregator) classOf(n int) child {
	if s.isSmall(n) {
		return s.small
	}
	return s.large
}

// Allocate never falls back: the child for n's class has the final say.
func (s *segregator) Allocate(n int) unsafe.Pointer {
	return s.classOf(n).Allocate(n)
}

func (s *segregator) Alignment() int { return s.align }

func (s *segregator) Owns(p unsafe.Pointer) bool {
	return s.small.owns(p) || s.large.owns(p)
}

func (s *segregator) Release(p unsafe.Pointer) {
	if p == nil {
		return
	}
	if s.small.owns(p) {
		s.small.release(p)
		return
	}
	s.large.release(p)
}

// releaseSized routes like Release when small can answer ownership
// queries, and by oldSize's class otherwise.
func (s *segregator) releaseSized(p unsafe.Pointer, oldSize int) {
	if p == nil {
		return
	}
	if s.small.own != nil {
		s.Release(p)
		return
	}
	s.classOf(oldSize).release(p)
}

// Grow resizes in place within the child that owns p, identified by
// oldSize. It fails when newSize belongs to the other child, or when the
// owning child can answer ownership queries and denies owning p.
func (s *segregator) Grow(p unsafe.Pointer, oldSize, newSize int) bool {
	if p == nil || oldSize < 0 || newSize <= 0 {
		return false
	}
	if s.isSmall(oldSize) != s.isSmall(newSize) {
		return false
	}
	owner := s.classOf(oldSize)
	if owner.own != nil && !owner.own.Owns(p) {
		return false
	}
	return owner.tryGrow(p, oldSize, newSize)
}

// Reallocate keeps blocks in the child matching their size class. Within a
// class the owner resizes or moves the block itself; across the threshold
// the block moves to the other child.
func (s *segregator) Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	switch {
	case oldSize < 0 || newSize < 0:
		return p, false
	case newSize == 0:
		s.releaseSized(p, oldSize)
		return nil, true
	case p == nil:
		q := s.Allocate(newSize)
		return q, q != nil
	case oldSize == newSize:
		return p, true
	}
	src, dst := s.classOf(oldSize), s.classOf(newSize)
	if s.isSmall(oldSize) == s.isSmall(newSize) {
		return reallocateWithin(src, p, oldSize, newSize)
	}
	return move(src, dst, p, oldSize, newSize)
}
