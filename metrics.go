package arena

// Used returns the number of bytes consumed so far, including alignment padding.
func (s *Storage) Used() int {
	return int(s.top)
}

// Capacity returns the fixed size of the storage in bytes.
func (s *Storage) Capacity() int {
	return len(s.buf)
}

// Remaining returns the number of bytes left after the cursor.
func (s *Storage) Remaining() int {
	return int(s.free)
}

// Utilization returns the ratio of used bytes to capacity (0.0 to 1.0).
// Returns 0.0 if the storage has no capacity.
func (s *Storage) Utilization() float64 {
	if len(s.buf) == 0 {
		return 0
	}
	return float64(s.top) / float64(len(s.buf))
}

// Metrics returns a snapshot of storage statistics.
func (s *Storage) Metrics() StorageMetrics {
	return StorageMetrics{
		Used:        s.Used(),
		Capacity:    s.Capacity(),
		Remaining:   s.Remaining(),
		Padding:     int(s.padding),
		Allocs:      s.allocs,
		Frees:       s.frees,
		Utilization: s.Utilization(),
	}
}

// StorageMetrics contains statistical information about a storage.
type StorageMetrics struct {
	Used        int     // Bytes consumed, padding included
	Capacity    int     // Total capacity in bytes
	Remaining   int     // Bytes still available
	Padding     int     // Bytes lost to alignment
	Allocs      int     // Successful allocations
	Frees       int     // Deallocations accepted (and ignored)
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Live returns the number of allocations not yet handed back. Containers
// that release every node leave it unchanged from before they were built.
func (m StorageMetrics) Live() int {
	return m.Allocs - m.Frees
}
