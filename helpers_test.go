package alloc

import "unsafe"

// allocOnly exposes nothing beyond the required surface.
type allocOnly struct{ r *Region }

func (a allocOnly) Allocate(n int) unsafe.Pointer { return a.r.Allocate(n) }
func (a allocOnly) Alignment() int { return a.r.Alignment() }

// ownOnly can answer ownership queries but never releases or grows.
type ownOnly struct{ r *Region }

func (a ownOnly) Allocate(n int) unsafe.Pointer { return a.r.Allocate(n) }
func (a ownOnly) Alignment() int { return a.r.Alignment() }
func (a ownOnly) Owns(p unsafe.Pointer) bool { return a.r.Owns(p) }

// trackedHeap is a Heap with ownership bookkeeping, so it can serve as a
// primary child.
type trackedHeap struct {
	h     *Heap
	live  map[unsafe.Pointer]int
	align int
}

func newTrackedHeap() *trackedHeap {
	return &trackedHeap{h: NewHeap(), live: map[unsafe.Pointer]int{}, align: HeapAlignment}
}

func (t *trackedHeap) Allocate(n int) unsafe.Pointer {
	p := t.h.Allocate(n)
	if p != nil {
		t.live[p] = n
	}
	return p
}

func (t *trackedHeap) Alignment() int { return t.align }

func (t *trackedHeap) Owns(p unsafe.Pointer) bool {
	_, ok := t.live[p]
	return ok
}

func (t *trackedHeap) Release(p unsafe.Pointer) {
	if _, ok := t.live[p]; !ok {
		return
	}
	delete(t.live, p)
	t.h.Release(p)
}

func (t *trackedHeap) Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	q, ok := t.h.Reallocate(p, oldSize, newSize)
	if !ok {
		return p, false
	}
	delete(t.live, p)
	if q != nil {
		t.live[q] = newSize
	}
	return q, true
}

func (t *trackedHeap) close() { _ = t.h.Close() }

// releaseLog records every Release it receives.
type releaseLog struct {
	*Region
	released []unsafe.Pointer
}

func (l *releaseLog) Release(p unsafe.Pointer) {
	l.released = append(l.released, p)
	l.Region.Release(p)
}

// fill writes a recognisable pattern into n bytes at p.
func fill(p unsafe.Pointer, n int) {
	copy(Bytes(p, n), pattern(n))
}

// pattern returns the bytes fill writes.
func pattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*7 + 3)
	}
	return out
}
