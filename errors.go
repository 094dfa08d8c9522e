package alloc

import "errors"

var (
	// ErrBadSize indicates a non-positive size where a buffer size is required.
	ErrBadSize = errors.New("alloc: size must be positive")

	// ErrUnsupported indicates an allocator lacks a required capability.
	ErrUnsupported = errors.New("alloc: capability not supported")

	// ErrNilChild indicates a composite was assembled with a nil child.
	ErrNilChild = errors.New("alloc: nil child allocator")
)
