package array

// Clone returns an independent copy of a. The copy's buffer has the same
// capacity as a, and its configuration is taken from a.
func (a *Array[T]) Clone() (*Array[T], error) {
	c := &Array[T]{}
	if a == nil {
		return c, nil
	}
	c.maxCap = a.maxCap
	if err := c.CopyFrom(a); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the contents of a with a copy of src. The new buffer
// is built completely before a is modified; if it cannot be allocated a
// is left untouched. Copying an array onto itself does nothing. A nil src
// counts as an empty array.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if a == src {
		return nil
	}
	buf, err := allocate[T](src.Cap(), a.limit())
	if err != nil {
		return err
	}
	for i, v := range src.live() {
		buf[i] = copyElem(v)
	}
	a.buf = buf
	a.size = src.Len()
	return nil
}

// Move transfers the contents of a into a new array and leaves a empty
// with capacity 0. It runs in constant time.
func (a *Array[T]) Move() *Array[T] {
	m := &Array[T]{}
	if a == nil {
		return m
	}
	m.maxCap = a.maxCap
	m.buf, m.size = a.buf, a.size
	a.buf, a.size = nil, 0
	return m
}

// MoveFrom releases the current buffer of a, takes over the buffer of src
// and leaves src empty with capacity 0. Moving an array onto itself does
// nothing. a keeps its own configuration.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	if src == nil {
		a.Clear()
		return
	}
	a.buf, a.size = src.buf, src.size
	src.buf, src.size = nil, 0
}
