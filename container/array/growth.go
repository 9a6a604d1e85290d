package array

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-figures/internal/logging"
)

// Push appends a copy of v. If T implements Cloner the stored element is
// v.Clone(). The buffer doubles when full.
func (a *Array[T]) Push(v T) error {
	if err := a.ensureRoom(); err != nil {
		return err
	}
	a.buf[a.size] = copyElem(v)
	a.size++
	return nil
}

// PushMove appends v without copying it: the array takes v over as is.
// Callers must not keep using state that v shares.
func (a *Array[T]) PushMove(v T) error {
	if err := a.ensureRoom(); err != nil {
		return err
	}
	a.buf[a.size] = v
	a.size++
	return nil
}

// Reserve ensures the capacity is at least n, reallocating to exactly n
// slots when it is not. It never shrinks the buffer.
func (a *Array[T]) Reserve(n int) error {
	if n <= len(a.buf) {
		return nil
	}
	return a.reallocate(n)
}

func (a *Array[T]) ensureRoom() error {
	if a.size < len(a.buf) {
		return nil
	}
	return a.grow()
}

// grow applies the doubling policy: 0 -> 1, otherwise 2x.
func (a *Array[T]) grow() error {
	old := len(a.buf)
	next := 1
	if old > 0 {
		if old > math.MaxInt/2 {
			return fmt.Errorf("array: capacity %d cannot double: %w", old, ErrAllocation)
		}
		next = 2 * old
	}
	return a.reallocate(next)
}

// reallocate builds a buffer of n slots, moves the live elements into it
// and only then replaces the current buffer.
func (a *Array[T]) reallocate(n int) error {
	buf, err := allocate[T](n, a.limit())
	if err != nil {
		return err
	}
	if logging.Debug() {
		logging.Logger().Debug("array: grow", "from", len(a.buf), "to", n, "size", a.size)
	}
	moveElems(buf, a.buf[:a.size])
	a.buf = buf
	return nil
}

// allocate returns a zeroed buffer of n slots. A runtime panic from make
// (length out of range) is reported as ErrAllocation.
func allocate[T any](n, limit int) (buf []T, err error) {
	if n < 0 || n > limit {
		return nil, allocationError(n, limit)
	}
	if n == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("array: capacity %d: %v: %w", n, r, ErrAllocation)
		}
	}()
	return make([]T, n), nil
}

// moveElems transfers src into dst and resets the source slots.
func moveElems[T any](dst, src []T) {
	copy(dst, src)
	clear(src)
}

func copyElem[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
