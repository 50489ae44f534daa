// Package bytestring implements a growable byte buffer and a naive
// substring searcher built on it (C9 in the design). String wraps
// internal/array the way original_source/src/main.c's String wraps a
// byte Vec: every buffer operation delegates to the array's own growth,
// truncation, and reservation policy.
package bytestring

import "gearbox/internal/array"

// String is a dynamic array of bytes.
type String struct {
	buf *array.Array[byte]
}

// New creates an empty String.
func New() *String {
	return &String{buf: array.New[byte](nil)}
}

// From creates a String initialized with a copy of b.
func From(b []byte) *String {
	s := New()
	s.PushBytes(b)
	return s
}

// Len returns the number of live bytes.
func (s *String) Len() int { return s.buf.Len() }

// Capacity returns the backing region's capacity in bytes.
func (s *String) Capacity() int { return s.buf.Capacity() }

// Bytes returns a view of the live bytes. Mutating its contents mutates
// the String; resizing it does not.
func (s *String) Bytes() []byte { return s.buf.Slice() }

// Reserve ensures room for at least n additional bytes without
// reallocating.
func (s *String) Reserve(n int) { s.buf.Reserve(n) }

// Truncate shrinks the String to n bytes.
func (s *String) Truncate(n int) { s.buf.Truncate(n) }

// Clear empties the String.
func (s *String) Clear() { s.buf.Clear() }

// ShrinkToFit releases unused backing capacity.
func (s *String) ShrinkToFit() { s.buf.ShrinkToFit() }

// Drop releases the String's backing region.
func (s *String) Drop() { s.buf.Drop() }

// InsertBytes inserts a copy of b at byte offset at, shifting the tail
// right. at must be <= Len().
func (s *String) InsertBytes(at int, b []byte) {
	if len(b) == 0 {
		return
	}
	s.buf.Reserve(len(b))
	for i, c := range b {
		s.buf.Insert(at+i, c)
	}
}

// PushBytes appends a copy of b to the end.
func (s *String) PushBytes(b []byte) {
	s.InsertBytes(s.Len(), b)
}

// Find returns the index of needle's first occurrence, if any.
func (s *String) Find(needle []byte) (int, bool) {
	if len(needle) == 0 {
		return 0, true
	}
	idx := indexFrom(s.Bytes(), needle, 0)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// Matches returns every matched span of needle, in order.
func (s *String) Matches(needle []byte) []Match {
	return Matches(s.Bytes(), needle)
}

// Split splits on every occurrence of separator, returning the runs
// between and after matches (a trailing empty run included).
func (s *String) Split(separator []byte) []*String {
	runs := SplitBytes(s.Bytes(), separator)
	out := make([]*String, len(runs))
	for i, r := range runs {
		out[i] = From(r)
	}
	return out
}

// ReplaceAll returns a new String with every occurrence of from replaced
// by to.
func (s *String) ReplaceAll(from, to []byte) *String {
	return From(ReplaceAllBytes(s.Bytes(), from, to))
}
