package alloc

import (
	"math"
	"unsafe"
)

// Bytes returns the n bytes at p as a slice. It returns nil for a nil
// pointer or n <= 0. The slice is only valid while the block is.
func Bytes(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// New allocates a zeroed T from a, or returns nil if a is exhausted.
// T must not contain Go pointers: allocators may hand out memory the
// garbage collector does not scan. A zero-size T takes nothing from a.
func New[T any](a Allocator) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T)
	}
	p := a.Allocate(size)
	if p == nil {
		return nil
	}
	clear(Bytes(p, size))
	return (*T)(p)
}

// MakeSlice allocates n elements of T from a without zeroing them.
// Returns nil if n <= 0, the byte count overflows int, or a is exhausted.
// The pointer-free rule of New applies, and a zero-size T takes nothing
// from a.
func MakeSlice[T any](a Allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return make([]T, n)
	}
	if n > math.MaxInt/size {
		return nil
	}
	p := a.Allocate(size * n)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}

// MakeSliceZeroed is MakeSlice with the elements cleared.
func MakeSliceZeroed[T any](a Allocator, n int) []T {
	s := MakeSlice[T](a, n)
	clear(s)
	return s
}
