package array

import (
	"math"
	"unsafe"
)

// Config holds per-instance settings of an Array.
type Config struct {
	// MaxCapacity is the largest buffer, in elements, the array may
	// allocate. Requests above it fail with ErrAllocation.
	MaxCapacity int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no option is given. The
// capacity limit is the largest element count whose byte size fits in an
// int.
func DefaultConfig[T any]() Config {
	return Config{MaxCapacity: maxElems[T]()}
}

// WithMaxCapacity caps the buffer size. Values <= 0 are ignored.
func WithMaxCapacity(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxCapacity = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions[T any](opts ...Option) Config {
	cfg := DefaultConfig[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func maxElems[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}
