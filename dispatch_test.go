package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnsHelper(t *testing.T) {
	r := NewRegion(make([]byte, 8))
	p := r.Allocate(4)

	owned, known := Owns(r, p)
	assert.True(t, known)
	assert.True(t, owned)

	heap := NewHeap()
	defer heap.Close()
	owned, known = Owns(heap, heap.Allocate(4))
	assert.False(t, known, "heap keeps no ownership records")
	assert.False(t, owned)
}

func TestReleaseHelper(t *testing.T) {
	r := NewRegion(make([]byte, 8))
	p := r.Allocate(8)
	Release(r, p)
	assert.Zero(t, r.SizeInUse())

	// Allocators without Release are left alone.
	a := allocOnly{NewRegion(make([]byte, 8))}
	q := a.Allocate(8)
	assert.NotPanics(t, func() { Release(a, q) })
	assert.Equal(t, 8, a.r.SizeInUse())

	// nil is a no-op on every allocator.
	heap := NewHeap()
	defer heap.Close()
	for _, x := range []Allocator{Null{}, r, heap, a, NewFallback(r, heap), NewSegregator(4, r, heap)} {
		assert.NotPanics(t, func() { Release(x, nil) }, "%T", x)
	}
	assert.Zero(t, r.SizeInUse())
}

func TestGrowHelper(t *testing.T) {
	r := NewRegion(make([]byte, 16))
	p := r.Allocate(4)
	assert.True(t, Grow(r, p, 4, 16))
	assert.False(t, Grow(r, p, 16, 17))
	assert.False(t, Grow(r, p, -1, 4))
	assert.False(t, Grow(Null{}, p, 4, 8), "no Grow capability means no growth")
}

func TestReallocateHelper(t *testing.T) {
	r := NewRegion(make([]byte, 64))

	p, ok := Reallocate(r, nil, 0, 8)
	require.True(t, ok)
	fill(p, 8)

	// Last block grows in place
	q, ok := Reallocate(r, p, 8, 16)
	require.True(t, ok)
	assert.Equal(t, p, q)

	// A pinned block moves within the same region
	r.Allocate(1)
	m, ok := Reallocate(r, q, 16, 24)
	require.True(t, ok)
	assert.NotEqual(t, q, m)
	assert.Equal(t, pattern(8), Bytes(m, 8))
	assert.Equal(t, 16+1+24, r.SizeInUse())

	// No room to move: the block stays put
	f, ok := Reallocate(r, q, 16, 48)
	assert.False(t, ok)
	assert.Equal(t, q, f)

	// Size 0 releases the last block
	z, ok := Reallocate(r, m, 24, 0)
	assert.True(t, ok)
	assert.Nil(t, z)
	assert.Equal(t, 17, r.SizeInUse())

	_, ok = Reallocate(r, q, 16, -3)
	assert.False(t, ok)
}

func TestReallocateHelperPrefersReallocator(t *testing.T) {
	heap := NewHeap()
	defer heap.Close()

	p := heap.Allocate(16)
	fill(p, 16)
	q, ok := Reallocate(heap, p, 16, 1<<15)
	require.True(t, ok)
	assert.Equal(t, pattern(16), Bytes(q, 16))
	heap.Release(q)
}

func TestCrossMovePreservesCommonPrefix(t *testing.T) {
	for _, tc := range []struct{ oldSize, newSize int }{
		{1, 1}, {8, 32}, {32, 8}, {17, 18}, {63, 1},
	} {
		src := bind(NewRegion(make([]byte, 64)))
		dst := bind(NewRegion(make([]byte, 64)))

		p := src.Allocate(tc.oldSize)
		fill(p, tc.oldSize)
		q, ok := move(src, dst, p, tc.oldSize, tc.newSize)
		require.True(t, ok)

		n := min(tc.oldSize, tc.newSize)
		assert.Equal(t, pattern(n), Bytes(q, n), "old=%d new=%d", tc.oldSize, tc.newSize)
		assert.Zero(t, src.Allocator.(*Region).SizeInUse(), "source released its last block")
	}
}

func TestMoveFailureLeavesSource(t *testing.T) {
	region := NewRegion(make([]byte, 16))
	src, dst := bind(region), bind(Null{})

	p := src.Allocate(16)
	fill(p, 16)
	q, ok := move(src, dst, p, 16, 32)
	assert.False(t, ok)
	assert.Equal(t, p, q)
	assert.Equal(t, 16, region.SizeInUse())
	assert.Equal(t, pattern(16), Bytes(p, 16))
}
