// Package alloc defines the allocation contract shared by the arena storage
// and the containers built on top of it.
//
// A Resource hands out raw, aligned memory. An Allocator[T] is a small,
// copyable handle that sizes requests for T and forwards them to its
// Resource. Handles for different element types can be derived from one
// another with Rebind and keep pointing at the same Resource.
//
// The zero Allocator[T] allocates from the Go heap.
//
// Resource memory is not scanned by the garbage collector. When T holds
// pointers, an Allocator[T] still charges the Resource for every request
// but serves the slots from typed Go memory, so values stored in them keep
// what they point to alive. Types whose pointers never carry the only
// reference can opt back into resource memory by implementing Untraced.
package alloc

import (
	"errors"
	"math/bits"
	"unsafe"
)

// ErrSizeOverflow is returned when count*size does not fit in a uintptr.
var ErrSizeOverflow = errors.New("alloc: allocation size overflows")

// Resource is a source of raw memory.
//
// Allocate returns a region of count*size bytes aligned to align, or an
// error if the request cannot be served. Deallocate gives a region back;
// resources are free to ignore it.
//
// Deallocate receives a nil p when the slots were served from the Go heap
// on the resource's behalf (see Allocator.Allocate).
//
// Implementations must be comparable (typically pointer types): two
// allocators are equal when they share the same Resource value.
type Resource interface {
	Allocate(count, align, size uintptr) (unsafe.Pointer, error)
	Deallocate(p unsafe.Pointer, count, size uintptr)
}

// Allocator is a typed handle over a Resource.
type Allocator[T any] struct {
	res Resource
	// traced is set when T must live in memory the collector scans.
	traced bool
}

// New returns an Allocator for T backed by r. A nil r selects the Go heap.
func New[T any](r Resource) Allocator[T] {
	a := Allocator[T]{res: r}
	if r != nil {
		a.traced = traced[T]()
	}
	return a
}

// Rebind returns an allocator for U that shares a's Resource.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return New[U](a.res)
}

// Resource returns the underlying resource, or nil for the heap allocator.
func (a Allocator[T]) Resource() Resource {
	return a.res
}

// IsHeap reports whether a allocates from the Go heap.
func (a Allocator[T]) IsHeap() bool {
	return a.res == nil
}

// Equal reports whether memory from a can be released through b.
// It panics if the resources share a dynamic type that is not comparable.
func (a Allocator[T]) Equal(b Allocator[T]) bool {
	return a.res == b.res
}

// Allocate returns a pointer to the first of n contiguous slots for T.
// The slots are suitably sized and aligned for T but hold no live value
// until the caller stores one. Returns nil, nil if n <= 0.
//
// If T holds pointers the resource is charged n slots exactly as for a
// pointer-free type, but the returned slots are zeroed Go heap memory.
func (a Allocator[T]) Allocate(n int) (*T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if hi, _ := bits.Mul(uint(n), uint(size)); hi != 0 {
		return nil, ErrSizeOverflow
	}
	if a.res == nil {
		s := make([]T, n)
		return &s[0], nil
	}

	p, err := a.res.Allocate(uintptr(n), unsafe.Alignof(zero), size)
	if err != nil {
		return nil, err
	}
	if a.traced {
		s := make([]T, n)
		return &s[0], nil
	}
	return (*T)(p), nil
}

// Deallocate returns n slots starting at p to the resource they came from.
func (a Allocator[T]) Deallocate(p *T, n int) {
	if p == nil || n <= 0 || a.res == nil {
		return
	}
	var zero T
	if a.traced {
		a.res.Deallocate(nil, uintptr(n), unsafe.Sizeof(zero))
		return
	}
	a.res.Deallocate(unsafe.Pointer(p), uintptr(n), unsafe.Sizeof(zero))
}
