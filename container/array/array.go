package array

import (
	"fmt"
	"strings"
)

// Cloner is implemented by element types whose copies must not share
// state with the original.
type Cloner[T any] interface {
	Clone() T
}

// Array is a growable sequence that exclusively owns its buffer.
// The zero value is an empty array ready to use.
type Array[T any] struct {
	buf    []T // len(buf) is the capacity; buf[size:] is never read
	size   int
	maxCap int // 0 means DefaultConfig
}

// New returns an empty array with no buffer.
func New[T any](opts ...Option) *Array[T] {
	cfg := ApplyOptions[T](opts...)
	return &Array[T]{maxCap: cfg.MaxCapacity}
}

// NewWithCapacity returns an empty array whose buffer already holds
// capacity slots, so the first capacity pushes do not reallocate.
func NewWithCapacity[T any](capacity int, opts ...Option) (*Array[T], error) {
	a := New[T](opts...)
	buf, err := allocate[T](capacity, a.limit())
	if err != nil {
		return nil, err
	}
	a.buf = buf
	return a, nil
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.buf)
}

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool {
	return a.Len() == 0
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	if err := a.check(i); err != nil {
		var zero T
		return zero, err
	}
	return a.buf[i], nil
}

// Set replaces the element at index i with v. The value is stored as
// given; it is not cloned.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.check(i); err != nil {
		return err
	}
	a.buf[i] = v
	return nil
}

// Ref returns a pointer to the element at index i. The pointer is only
// valid until the next Push, Reserve, Remove, Clear or move.
func (a *Array[T]) Ref(i int) (*T, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	return &a.buf[i], nil
}

// Remove deletes the element at index i, shifting the elements after it
// one slot to the left. Capacity is unchanged.
func (a *Array[T]) Remove(i int) error {
	if err := a.check(i); err != nil {
		return err
	}
	copy(a.buf[i:a.size-1], a.buf[i+1:a.size])
	var zero T
	a.buf[a.size-1] = zero
	a.size--
	return nil
}

// Clear releases the buffer. The array is left empty with capacity 0.
func (a *Array[T]) Clear() {
	if a == nil {
		return
	}
	a.buf = nil
	a.size = 0
}

// Values returns a new slice holding the elements in order. The slice
// does not alias the array's buffer.
func (a *Array[T]) Values() []T {
	out := make([]T, a.Len())
	copy(out, a.live())
	return out
}

// EqualFunc reports whether a and other hold the same number of elements
// and eq holds for each pair at the same index.
func (a *Array[T]) EqualFunc(other *Array[T], eq func(x, y T) bool) bool {
	if a.Len() != other.Len() {
		return false
	}
	b := other.live()
	for i, v := range a.live() {
		if !eq(v, b[i]) {
			return false
		}
	}
	return true
}

// String formats the elements as [e0 e1 ...].
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.live() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array[T]) live() []T {
	if a == nil {
		return nil
	}
	return a.buf[:a.size]
}

func (a *Array[T]) check(i int) error {
	if n := a.Len(); i < 0 || i >= n {
		return rangeError(i, n)
	}
	return nil
}

func (a *Array[T]) limit() int {
	if a.maxCap > 0 {
		return a.maxCap
	}
	return maxElems[T]()
}
