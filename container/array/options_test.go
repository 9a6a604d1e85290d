package array

import (
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	if got := DefaultConfig[int64]().MaxCapacity; got != math.MaxInt/8 {
		t.Fatalf("DefaultConfig[int64]().MaxCapacity = %d, want %d", got, math.MaxInt/8)
	}
	if got := DefaultConfig[struct{}]().MaxCapacity; got != math.MaxInt {
		t.Fatalf("zero-size element limit = %d, want MaxInt", got)
	}
}

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions[int](WithMaxCapacity(16), nil)
	if cfg.MaxCapacity != 16 {
		t.Fatalf("MaxCapacity = %d, want 16", cfg.MaxCapacity)
	}
	cfg = ApplyOptions[int](WithMaxCapacity(0), WithMaxCapacity(-3))
	if cfg.MaxCapacity != DefaultConfig[int]().MaxCapacity {
		t.Fatalf("non-positive limits should be ignored, got %d", cfg.MaxCapacity)
	}
}

func TestZeroValueUsesDefaultLimit(t *testing.T) {
	var a Array[int]
	if a.limit() != DefaultConfig[int]().MaxCapacity {
		t.Fatalf("limit() = %d, want default", a.limit())
	}
}
