package arena

import (
	"unsafe"

	"github.com/pavanmanishd/arenalist/alloc"
)

// NewAllocator returns an allocator handle for T bound to s. Handles are
// cheap to copy; all handles bound to, or rebound from a handle bound to,
// the same storage compare equal and share its remaining space.
func NewAllocator[T any](s *Storage) alloc.Allocator[T] {
	return alloc.New[T](s)
}

// Alloc returns a pointer to a zeroed T stored inside s.
func Alloc[T any](s *Storage) (*T, error) {
	p, err := NewAllocator[T](s).Allocate(1)
	if err != nil {
		return nil, err
	}
	if p == nil {
		// zero-sized T takes no space
		return new(T), nil
	}
	var zero T
	*p = zero
	return p, nil
}

// AllocUninitialized returns a slot for T inside s without clearing it.
// Arena memory is never reused, so the slot is zero unless s was built
// over a caller-supplied buffer with WithBuffer.
func AllocUninitialized[T any](s *Storage) (*T, error) {
	p, err := NewAllocator[T](s).Allocate(1)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return new(T), nil
	}
	return p, nil
}

// AllocSlice allocates a zeroed slice of n elements of type T inside s.
// Returns nil, nil if n <= 0.
func AllocSlice[T any](s *Storage, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	p, err := NewAllocator[T](s).Allocate(n)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return make([]T, n), nil
	}
	out := unsafe.Slice(p, n)
	clear(out)
	return out, nil
}
