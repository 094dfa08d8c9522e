package alloc

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// Allocator is the surface every allocator, leaf or composite, exposes.
// Allocate returns nil when the request cannot be satisfied.
type Allocator interface {
	Allocate(n int) unsafe.Pointer
	Alignment() int
}

// Owner reports whether p was produced by the allocator and not yet released.
type Owner interface {
	Owns(p unsafe.Pointer) bool
}

// Releaser returns a block to the allocator. Releasing nil is a no-op.
type Releaser interface {
	Release(p unsafe.Pointer)
}

// Grower resizes a block in place. The pointer never changes; a false
// return leaves the block exactly as it was.
type Grower interface {
	Grow(p unsafe.Pointer, oldSize, newSize int) bool
}

// Reallocator resizes a block, possibly moving it. The returned pointer is
// the block's new location; on failure the original block is untouched.
type Reallocator interface {
	Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool)
}

// OwningAllocator is an Allocator that can answer ownership queries.
type OwningAllocator interface {
	Allocator
	Owner
}

// Capability names one optional operation.
type Capability uint8

const (
	CapOwns Capability = 1 << iota
	CapRelease
	CapGrow
	CapReallocate
)

var capNames = [...]struct {
	c    Capability
	name string
}{
	{CapOwns, "owns"},
	{CapRelease, "release"},
	{CapGrow, "grow"},
	{CapReallocate, "reallocate"},
}

func (c Capability) String() string {
	for _, n := range capNames {
		if n.c == c {
			return n.name
		}
	}
	return fmt.Sprintf("Capability(%d)", uint8(c))
}

// CapSet is a set of capabilities.
type CapSet uint8

// Has reports whether every capability in c is in the set.
func (s CapSet) Has(c Capability) bool {
	return s&CapSet(c) == CapSet(c)
}

// With returns the set extended by c.
func (s CapSet) With(c Capability) CapSet {
	return s | CapSet(c)
}

func (s CapSet) String() string {
	var parts []string
	for _, n := range capNames {
		if s.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{" + strings.Join(parts, ",") + "}"
}

var (
	ownerType       = reflect.TypeFor[Owner]()
	releaserType    = reflect.TypeFor[Releaser]()
	growerType      = reflect.TypeFor[Grower]()
	reallocatorType = reflect.TypeFor[Reallocator]()
)

// capsOfType is the single source of truth for capability detection.
// Interface satisfaction is exact, so a same-named method with another
// signature does not count.
func capsOfType(t reflect.Type) CapSet {
	var s CapSet
	if t == nil {
		return s
	}
	if t.Implements(ownerType) {
		s = s.With(CapOwns)
	}
	if t.Implements(releaserType) {
		s = s.With(CapRelease)
	}
	if t.Implements(growerType) {
		s = s.With(CapGrow)
	}
	if t.Implements(reallocatorType) {
		s = s.With(CapReallocate)
	}
	return s
}

// CapabilitiesOf returns the optional operations type A offers. It needs no
// instance of A.
func CapabilitiesOf[A any]() CapSet {
	return capsOfType(reflect.TypeFor[A]())
}

// Supports reports whether type A offers capability c.
func Supports[A any](c Capability) bool {
	return CapabilitiesOf[A]().Has(c)
}

// Detect returns the capabilities of a's dynamic type.
func Detect(a Allocator) CapSet {
	return capsOfType(reflect.TypeOf(a))
}

// Require checks that a offers every capability in caps.
func Require(a Allocator, caps ...Capability) error {
	have := Detect(a)
	var missing CapSet
	for _, c := range caps {
		if !have.Has(c) {
			missing = missing.With(c)
		}
	}
	if missing != 0 {
		return fmt.Errorf("%w: %T lacks %s", ErrUnsupported, a, missing)
	}
	return nil
}
