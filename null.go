package alloc

import "unsafe"

// Null never allocates. It is the terminal child of a composite chain and a
// fixture for exercising exhaustion paths.
type Null struct{}

func (Null) Allocate(int) unsafe.Pointer { return nil }

func (Null) Alignment() int { return 1 }
