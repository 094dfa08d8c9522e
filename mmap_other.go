//go:build !unix

package alloc

import "fmt"

// MapRegion creates a Region over a heap buffer of size bytes when mmap is
// not available. The unmap function is a no-op.
func MapRegion(size int) (*Region, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	return NewRegion(make([]byte, size)), func() error { return nil }, nil
}
