// Package arena implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// A Storage owns a single byte buffer of fixed size. Allocation requests are
// served by aligning a cursor and advancing it past the returned region, so
// every allocation is O(1). Nothing is ever reclaimed individually: memory
// comes back only when the whole Storage is dropped (or Released).
//
// Storage implements alloc.Resource, so it can back any allocator-aware
// container in this module, such as list.List:
//
//	s, err := arena.NewStorage(1024)
//	if err != nil {
//		return err
//	}
//	ints := list.NewWithAllocator(arena.NewAllocator[int64](s))
//	_ = ints.PushBack(42)
//
// # Allocator Handles
//
// NewAllocator returns a small alloc.Allocator[T] value that refers to the
// Storage without owning it. Handles can be copied and rebound to other
// element types with alloc.Rebind; all of them share the same buffer and
// compare equal.
//
// # Memory Layout
//
// Alignment is computed against the real address of the cursor, the same
// way std::align does it, so padding depends on both the requested alignment
// and where the buffer happens to start. Metrics reports how many bytes were
// lost to padding.
//
// # Important Notes
//
//   - A Storage must outlive every handle and container bound to it
//   - Storage is not goroutine-safe
//   - The buffer is opaque to the garbage collector, so only pointer-free
//     values are placed in it. Slots for types that hold pointers are charged
//     to the Storage the same way but served from typed Go memory
//   - WithMmap moves the buffer off the Go heap entirely (unix only)
//
// # Metrics and Monitoring
//
//	m := s.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Live allocations: %d\n", m.Live())
package arena
