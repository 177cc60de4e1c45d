package arena

import "log/slog"

type config struct {
	buf    []byte
	mmap   bool
	logger *slog.Logger
}

// Option is a configuration option for NewStorage.
type Option func(*config)

// WithBuffer backs the storage with buf instead of a fresh allocation.
// The capacity becomes len(buf). The caller must not use buf directly
// while the storage is live.
func WithBuffer(buf []byte) Option {
	return func(c *config) {
		c.buf = buf
	}
}

// WithMmap backs the storage with an anonymous memory mapping outside the
// Go heap. Release unmaps it. Only supported on unix platforms.
func WithMmap() Option {
	return func(c *config) {
		c.mmap = true
	}
}

// WithLogger sets the logger used for storage lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
