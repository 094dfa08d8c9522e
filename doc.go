// Package alloc implements small memory allocators that compose.
//
// # Overview
//
// Each allocator does one thing. Leaves hand out memory:
//
//   - Null never allocates
//   - Region bumps a cursor through a fixed buffer
//   - Heap delegates to a malloc-style system allocator
//
// Composites combine two children without knowing their concrete types:
//
//   - NewFallback tries a primary child and falls back to a secondary one
//   - NewSegregator sends small requests to one child and large ones to the other
//
// # Capabilities
//
// Every allocator implements Allocator (Allocate and Alignment). Everything
// else is optional and expressed as its own interface: Owner, Releaser,
// Grower and Reallocator. When a composite is assembled it inspects the
// types of its children once and returns a value that implements exactly
// the optional interfaces it can honour. A fallback whose secondary child
// cannot answer ownership queries is not an Owner, so
//
//	_, ok := f.(alloc.Owner)
//
// is false, and Require(f, CapOwns) returns an error wrapping ErrUnsupported.
// CapabilitiesOf reports the same thing from a type alone.
//
// # Basic Usage
//
//	buf := make([]byte, 4096)
//	heap := alloc.NewHeap()
//	defer heap.Close()
//
//	a := alloc.NewFallback(alloc.NewRegion(buf), heap)
//	p := a.Allocate(128) // from buf while it lasts, then from heap
//
//	r := a.(alloc.Reallocator)
//	p, ok := r.Reallocate(p, 128, 8192) // may move p into heap
//	if ok {
//	    r.Reallocate(p, 8192, 0) // size 0 releases
//	}
//
// # Sizes
//
// No allocator records block sizes. Callers pass the size they asked for
// back to Grow and Reallocate.
//
// # Failure
//
// Exhaustion returns nil or false and never panics. A Reallocate that
// cannot obtain new memory leaves the original block where it was.
// Releasing through a child that cannot release is a silent no-op: the
// block stays allocated.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. Guard an allocator
// with a mutex if several goroutines share it.
package alloc
