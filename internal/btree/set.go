package btree

// Set is an ordered set of elements of type T, implemented as a Tree from
// T to a zero-byte unit value.
type Set[T any] struct {
	t *Tree[T, struct{}]
}

// NewSet creates an empty set ordered by cmp.
func NewSet[T any](cmp func(a, b T) int, drop func(T)) *Set[T] {
	return &Set[T]{t: New[T, struct{}](cmp, drop, nil)}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return s.t.Len() }

// Insert adds v to the set.
func (s *Set[T]) Insert(v T) { s.t.Insert(v, struct{}{}) }

// Remove deletes v from the set if present.
func (s *Set[T]) Remove(v T) { s.t.Remove(v) }

// Contains reports whether v is a member of the set.
func (s *Set[T]) Contains(v T) bool { return s.t.Contains(v) }

// Each calls fn for every element in ascending order.
func (s *Set[T]) Each(fn func(T)) { s.t.Each(func(k T, _ struct{}) { fn(k) }) }

// Clear removes every element, running the drop hook over each.
func (s *Set[T]) Clear() { s.t.Clear() }

// Drop destroys every element via the drop hook and releases the tree.
func (s *Set[T]) Drop() { s.t.Drop() }

// SetIter is a pull iterator over a lazily-computed set-algebraic result.
type SetIter[T any] struct {
	inner *SetAlgebraIter[T, struct{}]
}

// Next returns the next element, or false when exhausted.
func (it *SetIter[T]) Next() (T, bool) {
	k, _, ok := it.inner.Next()
	return k, ok
}

// SetUnion yields every element present in a or b, sorted.
func SetUnion[T any](a, b *Set[T]) *SetIter[T] { return &SetIter[T]{inner: Union(a.t, b.t)} }

// SetIntersection yields every element present in both a and b, sorted.
func SetIntersection[T any](a, b *Set[T]) *SetIter[T] {
	return &SetIter[T]{inner: Intersection(a.t, b.t)}
}

// SetDifference yields every element of a absent from b, sorted.
func SetDifference[T any](a, b *Set[T]) *SetIter[T] {
	return &SetIter[T]{inner: Difference(a.t, b.t)}
}

// SetSymmetricDifference yields every element present in exactly one of
// a, b, sorted.
func SetSymmetricDifference[T any](a, b *Set[T]) *SetIter[T] {
	return &SetIter[T]{inner: SymmetricDifference(a.t, b.t)}
}
