package hashmap

// Set is a hash set of elements of type T, implemented as a Map from T to
// a zero-byte unit value, per spec.md §4.5 ("Set is a map with a one-byte
// unit value").
type Set[T any] struct {
	m *Map[T, struct{}]
}

// NewSet creates an empty set with the default initial capacity.
func NewSet[T any](hash HashFn[T], eq func(a, b T) bool, drop func(T)) *Set[T] {
	return &Set[T]{m: New[T, struct{}](hash, eq, drop, nil)}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return s.m.Len() }

// Insert adds v to the set. A no-op if v is already present: the stored
// element is kept and no drop hook runs.
func (s *Set[T]) Insert(v T) { s.m.Insert(v, struct{}{}) }

// Remove deletes v from the set if present.
func (s *Set[T]) Remove(v T) { s.m.Remove(v) }

// Contains reports whether v is a member of the set.
func (s *Set[T]) Contains(v T) bool { return s.m.Contains(v) }

// Each calls fn for every element, in unspecified (table) order.
func (s *Set[T]) Each(fn func(T)) { s.m.Each(func(k T, _ struct{}) { fn(k) }) }

// Clear removes every element, running the drop hook over each.
func (s *Set[T]) Clear() { s.m.Clear() }

// Drop destroys every element via the drop hook and releases the table.
func (s *Set[T]) Drop() { s.m.Drop() }

// SetIter is a pull iterator over a lazily-computed set-algebraic result.
type SetIter[T any] struct {
	pull func() (T, bool)
}

// Next returns the next element and true, or the zero value and false
// when exhausted.
func (it *SetIter[T]) Next() (T, bool) {
	if it.pull == nil {
		var zero T
		return zero, false
	}
	return it.pull()
}

// twoPhaseIter scans a's entries first (optionally filtered through
// keepA), then b's entries (optionally filtered through keepB). Both
// filters may be nil, meaning "keep everything". This is the shared
// machinery behind Union/Intersection/Difference/SymmetricDifference:
// each scans one or both tables in slot order and filters via Contains
// on the other set, per spec.md §4.5.
func twoPhaseIter[T any](a, b *Set[T], keepA, keepB func(T) bool) *SetIter[T] {
	ai, bi := 0, 0
	phase := 0 // 0 = scanning a.entries, 1 = scanning b.entries, 2 = done
	return &SetIter[T]{pull: func() (T, bool) {
		var zero T
		for {
			switch phase {
			case 0:
				for ai < len(a.m.entries) {
					e := a.m.entries[ai]
					ai++
					if !e.inUse {
						continue
					}
					if keepA == nil || keepA(e.key) {
						return e.key, true
					}
				}
				phase = 1
			case 1:
				for bi < len(b.m.entries) {
					e := b.m.entries[bi]
					bi++
					if !e.inUse {
						continue
					}
					if keepB == nil || keepB(e.key) {
						return e.key, true
					}
				}
				phase = 2
			default:
				return zero, false
			}
		}
	}}
}

// Union yields every element present in a or b, each exactly once, in
// unspecified order: all of a, then the elements of b absent from a.
func Union[T any](a, b *Set[T]) *SetIter[T] {
	return twoPhaseIter(a, b, nil, func(v T) bool { return !a.Contains(v) })
}

// Intersection yields every element present in both a and b.
func Intersection[T any](a, b *Set[T]) *SetIter[T] {
	return twoPhaseIter(a, b, func(v T) bool { return b.Contains(v) }, func(T) bool { return false })
}

// Difference yields every element of a that is absent from b (a − b).
func Difference[T any](a, b *Set[T]) *SetIter[T] {
	return twoPhaseIter(a, b, func(v T) bool { return !b.Contains(v) }, func(T) bool { return false })
}

// SymmetricDifference yields every element present in exactly one of a, b.
func SymmetricDifference[T any](a, b *Set[T]) *SetIter[T] {
	return twoPhaseIter(a, b,
		func(v T) bool { return !b.Contains(v) },
		func(v T) bool { return !a.Contains(v) },
	)
}
