// Package heap implements a binary max-heap layered over internal/array
// (C4 in the design), grounded in the BinaryHeap section of the C source
// this library was distilled from.
package heap

import "gearbox/internal/array"

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// Heap is a binary max-heap over elements of type T, ordered by cmp(a, b)
// which must return >0 if a should sit above b, <0 if below, 0 if equal.
// Callers wanting a min-heap invert their comparator.
type Heap[T any] struct {
	data *array.Array[T]
	cmp  func(a, b T) int
}

// New creates an empty heap ordered by cmp. drop may be nil.
func New[T any](cmp func(a, b T) int, drop func(T)) *Heap[T] {
	return &Heap[T]{data: array.New[T](drop), cmp: cmp}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return h.data.Len() }

func (h *Heap[T]) swap(i, j int) {
	vi, vj := h.data.Get(i), h.data.Get(j)
	h.data.Set(i, vj)
	h.data.Set(j, vi)
}

// Push inserts v and restores the heap property by sifting up.
func (h *Heap[T]) Push(v T) {
	h.data.Push(v)
	i := h.data.Len() - 1
	for i > 0 {
		p := parent(i)
		if h.cmp(h.data.Get(i), h.data.Get(p)) <= 0 {
			break
		}
		h.swap(i, p)
		i = p
	}
}

// Peek returns the root element and true, or the zero value and false if
// the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	var zero T
	if h.data.Len() == 0 {
		return zero, false
	}
	return h.data.Get(0), true
}

// Pop removes and returns the root element, restoring the heap property
// by moving the last element to the root and sifting down. A no-op
// returning the zero value and false on an empty heap.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := h.data.Len()
	if n == 0 {
		return zero, false
	}
	root := h.data.Get(0)
	last, _ := h.data.Pop() // ownership transfer, no drop hook
	n--
	if n == 0 {
		return root, true
	}
	h.data.Set(0, last)

	i := 0
	for {
		l, r := left(i), right(i)
		largest := i
		if l < n && h.cmp(h.data.Get(l), h.data.Get(largest)) > 0 {
			largest = l
		}
		if r < n && h.cmp(h.data.Get(r), h.data.Get(largest)) > 0 {
			largest = r
		}
		if largest == i {
			break
		}
		h.swap(i, largest)
		i = largest
	}
	return root, true
}

// Drop destroys every live element via the drop hook and releases the
// backing region.
func (h *Heap[T]) Drop() {
	h.data.Drop()
}
