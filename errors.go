package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted is matched by every allocation failure caused by a full storage.
	ErrExhausted = errors.New("arena: storage exhausted")
	// ErrInvalidAlignment is returned when an alignment is not a power of two.
	ErrInvalidAlignment = errors.New("arena: alignment must be a power of two")
	// ErrMmapUnsupported is returned by NewStorage with WithMmap on platforms without mmap.
	ErrMmapUnsupported = errors.New("arena: mmap-backed storage not supported on this platform")
)

// ExhaustedError reports a request that did not fit in the remaining space.
type ExhaustedError struct {
	Requested uintptr // bytes requested, excluding padding
	Align     uintptr
	Remaining uintptr // bytes left before the request
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("arena: storage exhausted: requested %d bytes (align %d), %d remaining",
		e.Requested, e.Align, e.Remaining)
}

// Is makes errors.Is(err, ErrExhausted) hold.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}
