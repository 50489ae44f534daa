// Package deque implements a double-ended queue over a circular backing
// region (C2 in the design), grounded in the original VecDeque section of
// the C source this library was distilled from.
package deque

// Deque is a ring-buffer-backed double-ended queue of elements of type T.
// Valid slot indices are (head+i) mod capacity for i in [0, length). The
// backing slice is always allocated to exactly Capacity() (not Len());
// unused slots beyond the live window hold stale values that are never
// observed.
type Deque[T any] struct {
	data   []T
	length int
	head   int
	drop   func(T)
}

// New creates an empty deque. drop may be nil for plain-old-data elements.
func New[T any](drop func(T)) *Deque[T] {
	return &Deque[T]{drop: drop}
}

// Len returns the number of live elements.
func (d *Deque[T]) Len() int { return d.length }

// Capacity returns the number of elements the backing region can hold.
func (d *Deque[T]) Capacity() int { return len(d.data) }

func (d *Deque[T]) slot(logical int) int {
	return (d.head + logical) % len(d.data)
}

// grow doubles capacity (minimum 10) and linearizes the ring so head == 0,
// mirroring the C source's _VecDeque_grow_buffer.
func (d *Deque[T]) grow() {
	newCap := cap2(len(d.data))
	newData := make([]T, newCap)
	for i := 0; i < d.length; i++ {
		newData[i] = d.data[d.slot(i)]
	}
	d.data = newData
	d.head = 0
}

func cap2(current int) int {
	if current == 0 {
		return 10
	}
	return current * 2
}

func (d *Deque[T]) ensureRoom() {
	if d.length == len(d.data) {
		d.grow()
	}
}

// PushBack appends v to the tail.
func (d *Deque[T]) PushBack(v T) {
	d.ensureRoom()
	d.data[d.slot(d.length)] = v
	d.length++
}

// PushFront prepends v to the head.
func (d *Deque[T]) PushFront(v T) {
	d.ensureRoom()
	d.head = (d.head - 1 + len(d.data)) % len(d.data)
	d.data[d.head] = v
	d.length++
}

// Front returns the first element and true, or the zero value and false
// if the deque is empty.
func (d *Deque[T]) Front() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	return d.data[d.head], true
}

// Back returns the last element and true, or the zero value and false if
// the deque is empty.
func (d *Deque[T]) Back() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	return d.data[d.slot(d.length-1)], true
}

// PopBack removes and returns the last element. A no-op returning the
// zero value and false on an empty deque.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	i := d.slot(d.length - 1)
	v := d.data[i]
	d.data[i] = zero
	d.length--
	return v, true
}

// PopFront removes and returns the first element. A no-op returning the
// zero value and false on an empty deque.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	v := d.data[d.head]
	d.data[d.head] = zero
	d.head = (d.head + 1) % len(d.data)
	d.length--
	return v, true
}

// Get returns the logical i-th element (0 is the front). i must be <
// Len().
func (d *Deque[T]) Get(i int) T {
	if i < 0 || i >= d.length {
		panic("deque: index out of range")
	}
	return d.data[d.slot(i)]
}

// Clear removes every element, running the drop hook over each.
func (d *Deque[T]) Clear() {
	if d.drop != nil {
		for i := 0; i < d.length; i++ {
			d.drop(d.data[d.slot(i)])
		}
	}
	d.data = nil
	d.length = 0
	d.head = 0
}

// ShrinkToFit linearizes the ring into a backing region sized exactly to
// Len(), resetting head to 0.
func (d *Deque[T]) ShrinkToFit() {
	if d.length == len(d.data) {
		return
	}
	if d.length == 0 {
		d.data = nil
		d.head = 0
		return
	}
	newData := make([]T, d.length)
	for i := 0; i < d.length; i++ {
		newData[i] = d.data[d.slot(i)]
	}
	d.data = newData
	d.head = 0
}

// Drop destroys every live element via the drop hook and releases the
// backing region.
func (d *Deque[T]) Drop() {
	d.Clear()
}
