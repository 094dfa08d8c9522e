//go:build unix

package alloc

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// MapRegion creates a Region over size bytes of anonymous memory mapped
// outside the Go heap. The returned unmap function releases the mapping;
// the region and every pointer it handed out are invalid afterwards.
func MapRegion(size int) (*Region, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("alloc: mmap %d bytes: %w", size, err)
	}
	unmap := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		data = nil
		return err
	}
	return NewRegion(data), unmap, nil
}
