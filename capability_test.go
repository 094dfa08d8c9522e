package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Same names as the optional operations, wrong shapes.
type wrongReturnOwns struct{ Null }

func (wrongReturnOwns) Owns(unsafe.Pointer) int { return 0 }

type wrongArityRelease struct{ Null }

func (wrongArityRelease) Release(unsafe.Pointer, int) {}

type wrongArgsGrow struct{ Null }

func (wrongArgsGrow) Grow(unsafe.Pointer, int) bool { return false }

type boolOnlyReallocate struct{ Null }

func (boolOnlyReallocate) Reallocate(unsafe.Pointer, int, int) bool { return false }

func TestCapabilitiesOfLeaves(t *testing.T) {
	tests := []struct {
		name string
		got  CapSet
		want CapSet
	}{
		{"Null", CapabilitiesOf[Null](), 0},
		{"Region", CapabilitiesOf[*Region](), CapSet(CapOwns | CapRelease | CapGrow)},
		{"Region value", CapabilitiesOf[Region](), 0},
		{"Heap", CapabilitiesOf[*Heap](), CapSet(CapRelease | CapGrow | CapReallocate)},
		{"allocOnly", CapabilitiesOf[allocOnly](), 0},
		{"ownOnly", CapabilitiesOf[ownOnly](), CapSet(CapOwns)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got, "got %s want %s", tt.got, tt.want)
		})
	}
}

func TestCapabilitiesIgnoreMismatchedSignatures(t *testing.T) {
	assert.False(t, Supports[wrongReturnOwns](CapOwns), "Owns returning int is not an ownership test")
	assert.False(t, Supports[wrongArityRelease](CapRelease), "Release with two arguments is not a release")
	assert.False(t, Supports[wrongArgsGrow](CapGrow), "Grow without a new size is not a grow")
	assert.False(t, Supports[boolOnlyReallocate](CapReallocate), "Reallocate must return the new pointer")

	// A composite over them sees no capabilities either.
	f := NewFallback(wrongReturnOwns{}, wrongArityRelease{})
	assert.Equal(t, CapSet(0), Detect(f))
}

func TestDetectMatchesCapabilitiesOf(t *testing.T) {
	h := NewHeap()
	defer h.Close()

	assert.Equal(t, CapabilitiesOf[*Heap](), Detect(h))
	assert.Equal(t, CapabilitiesOf[*Region](), Detect(NewRegion(nil)))
	assert.Equal(t, CapabilitiesOf[Null](), Detect(Null{}))
}

func TestCapSet(t *testing.T) {
	var s CapSet
	assert.Equal(t, "{}", s.String())
	assert.False(t, s.Has(CapOwns))

	s = s.With(CapOwns).With(CapReallocate)
	assert.True(t, s.Has(CapOwns))
	assert.True(t, s.Has(CapReallocate))
	assert.False(t, s.Has(CapRelease))
	assert.True(t, s.Has(CapOwns|CapReallocate))
	assert.False(t, s.Has(CapOwns|CapGrow))
	assert.Equal(t, "{owns,reallocate}", s.String())

	assert.Equal(t, "grow", CapGrow.String())
	assert.Equal(t, "Capability(64)", Capability(64).String())
}

func TestRequire(t *testing.T) {
	h := NewHeap()
	defer h.Close()
	f := NewFallback(NewRegion(make([]byte, 16)), h)

	require.NoError(t, Require(f))
	require.NoError(t, Require(f, CapRelease, CapReallocate))

	err := Require(f, CapOwns, CapRelease)
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "{owns}")

	assert.ErrorIs(t, Require(Null{}, CapGrow), ErrUnsupported)
}
