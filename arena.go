// Package arena implements a fixed-capacity bump allocator (memory arena).
// Typical usage: create one Storage, bind allocator handles for any element
// types to it, and drop the Storage once everything built on it is gone.
package arena

import (
	"log/slog"
	"math/bits"
	"unsafe"
)

// DefaultSize is the default capacity for new storages (64 KiB).
const DefaultSize = 1 << 16

// noCopy lets `go vet` flag copies of a Storage.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Storage is a fixed-size byte buffer that serves aligned allocations by
// advancing a cursor. It never grows and never reuses memory: individual
// deallocations are accepted and ignored. Not goroutine-safe.
//
// A Storage must outlive every allocator and container bound to it.
type Storage struct {
	_ noCopy

	buf  []byte
	top  uintptr // offset of the first unused byte
	free uintptr // bytes left after top

	padding uintptr // bytes skipped for alignment
	allocs  int
	frees   int

	unmap  func([]byte) error
	logger *slog.Logger
}

// NewStorage creates a Storage with the given capacity in bytes.
// If size <= 0, DefaultSize is used. WithBuffer overrides size.
func NewStorage(size int, opts ...Option) (*Storage, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Storage{logger: cfg.logger}
	switch {
	case cfg.buf != nil:
		s.buf = cfg.buf
	case cfg.mmap:
		buf, unmap, err := mapAnon(size)
		if err != nil {
			return nil, err
		}
		s.buf, s.unmap = buf, unmap
	default:
		s.buf = make([]byte, size)
	}
	s.free = uintptr(len(s.buf))

	s.logger.Debug("arena storage created", "capacity", len(s.buf), "mmap", s.unmap != nil)
	return s, nil
}

// Allocate carves count*size bytes aligned to align out of the unused tail
// of the buffer. It returns an *ExhaustedError if the tail cannot hold the
// padding plus the region; the cursor does not move in that case.
// Zero-byte requests return nil, nil.
func (s *Storage) Allocate(count, align, size uintptr) (unsafe.Pointer, error) {
	s.panicIfReleased()
	if align == 0 || align&(align-1) != 0 {
		return nil, ErrInvalidAlignment
	}
	hi, n := bits.Mul(uint(count), uint(size))
	if hi != 0 {
		return nil, &ExhaustedError{Requested: ^uintptr(0), Align: align, Remaining: s.free}
	}
	if n == 0 {
		return nil, nil
	}

	pad := alignUp(s.addr(), align) - s.addr()
	if pad > s.free || uintptr(n) > s.free-pad {
		return nil, &ExhaustedError{Requested: uintptr(n), Align: align, Remaining: s.free}
	}

	p := unsafe.Pointer(&s.buf[s.top+pad])
	s.top += pad + uintptr(n)
	s.free -= pad + uintptr(n)
	s.padding += pad
	s.allocs++
	return p, nil
}

// Deallocate is a no-op: memory is reclaimed only when the Storage goes away.
func (s *Storage) Deallocate(_ unsafe.Pointer, _, _ uintptr) {
	s.frees++
}

// Release drops the backing buffer, unmapping it if it was mapped, and makes
// the storage unusable. Any subsequent allocation panics.
func (s *Storage) Release() error {
	if s.buf == nil {
		return nil
	}
	buf := s.buf
	s.buf = nil
	s.top, s.free = 0, 0
	s.logger.Debug("arena storage released", "capacity", len(buf), "allocs", s.allocs)
	if s.unmap != nil {
		return s.unmap(buf)
	}
	return nil
}

// addr returns the address of the first unused byte.
func (s *Storage) addr() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s.buf))) + s.top
}

// panicIfReleased panics if the storage has been released.
func (s *Storage) panicIfReleased() {
	if s.buf == nil {
		panic("arena: use after Release()")
	}
}

// alignUp rounds p up to a multiple of align, which must be a power of two.
func alignUp(p, align uintptr) uintptr {
	mask := align - 1
	return (p + mask) &^ mask
}
