package alloc

// SizeInUse returns the number of bytes between the start of the buffer and
// the cursor.
func (r *Region) SizeInUse() int {
	return r.off
}

// Capacity returns the size of the backing buffer.
func (r *Region) Capacity() int {
	return len(r.buf)
}

// Remaining returns the number of bytes still available.
func (r *Region) Remaining() int {
	return len(r.buf) - r.off
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the region has no capacity.
func (r *Region) Utilization() float64 {
	if len(r.buf) == 0 {
		return 0
	}
	return float64(r.off) / float64(len(r.buf))
}

// Metrics returns a snapshot of region statistics.
func (r *Region) Metrics() RegionMetrics {
	return RegionMetrics{
		SizeInUse:   r.SizeInUse(),
		Capacity:    r.Capacity(),
		Remaining:   r.Remaining(),
		Utilization: r.Utilization(),
	}
}

// RegionMetrics contains statistical information about a region.
type RegionMetrics struct {
	SizeInUse   int     // Bytes handed out
	Capacity    int     // Size of the backing buffer
	Remaining   int     // Bytes still available
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
