package iterator

// skipSeq skips the first n elements of inner before yielding anything.
// The skip happens lazily, on the first call to Next.
type skipSeq[T any] struct {
	inner   Seq[T]
	n       int
	skipped bool
}

// Skip returns a Seq that discards the first n elements of inner.
func Skip[T any](inner Seq[T], n int) Seq[T] {
	return &skipSeq[T]{inner: inner, n: n}
}

func (s *skipSeq[T]) doSkip() {
	if s.skipped {
		return
	}
	s.skipped = true
	for i := 0; i < s.n; i++ {
		if _, ok := s.inner.Next(); !ok {
			break
		}
	}
}

func (s *skipSeq[T]) Next() (T, bool) {
	s.doSkip()
	return s.inner.Next()
}

func (s *skipSeq[T]) NextBack() (T, bool) {
	var zero T
	if s.Len() <= 0 {
		return zero, false
	}
	return s.inner.NextBack()
}

func (s *skipSeq[T]) Len() int {
	if s.skipped {
		return s.inner.Len()
	}
	n := s.inner.Len() - s.n
	if n < 0 {
		n = 0
	}
	return n
}

// takeSeq yields at most n elements of inner from the front.
type takeSeq[T any] struct {
	inner Seq[T]
	n     int
}

// Take returns a Seq that yields at most n elements of inner.
func Take[T any](inner Seq[T], n int) Seq[T] {
	return &takeSeq[T]{inner: inner, n: n}
}

func (t *takeSeq[T]) Next() (T, bool) {
	var zero T
	if t.n <= 0 {
		return zero, false
	}
	v, ok := t.inner.Next()
	if !ok {
		t.n = 0
		return zero, false
	}
	t.n--
	return v, true
}

// NextBack emits the element at position inner.Len()-n from the back: drop
// inner.Len()-n elements off inner's back, then take the next one. This
// tracks inner's current length each call, since Take's window narrows as
// the front end (via Next) or the back end (via this method) is consumed.
func (t *takeSeq[T]) NextBack() (T, bool) {
	var zero T
	if t.n <= 0 {
		return zero, false
	}
	drop := t.inner.Len() - t.n
	if drop < 0 {
		drop = 0
	}
	t.n--
	for i := 0; i < drop; i++ {
		if _, ok := t.inner.NextBack(); !ok {
			return zero, false
		}
	}
	return t.inner.NextBack()
}

func (t *takeSeq[T]) Len() int {
	if t.inner.Len() < t.n {
		return t.inner.Len()
	}
	return t.n
}

// stepBySeq yields every s-th element of inner, starting with the first.
type stepBySeq[T any] struct {
	inner     Seq[T]
	step      int
	first     bool
	firstBack bool
}

// StepBy returns a Seq yielding inner's elements at stride s (s >= 1):
// the first element, then every s-th one after it.
func StepBy[T any](inner Seq[T], s int) Seq[T] {
	return &stepBySeq[T]{inner: inner, step: s, first: true, firstBack: true}
}

func (s *stepBySeq[T]) Next() (T, bool) {
	if s.first {
		s.first = false
		return s.inner.Next()
	}
	for i := 0; i < s.step-1; i++ {
		if _, ok := s.inner.Next(); !ok {
			var zero T
			return zero, false
		}
	}
	return s.inner.Next()
}

func (s *stepBySeq[T]) NextBack() (T, bool) {
	var zero T
	n := s.inner.Len()
	if n == 0 {
		return zero, false
	}
	var skip int
	if s.firstBack {
		if s.first {
			skip = (n - 1) % s.step
		} else {
			skip = n % s.step
		}
		s.firstBack = false
	} else {
		skip = s.step - 1
	}
	for i := 0; i < skip; i++ {
		if _, ok := s.inner.NextBack(); !ok {
			return zero, false
		}
	}
	return s.inner.NextBack()
}

func (s *stepBySeq[T]) Len() int {
	n := s.inner.Len()
	if n == 0 {
		return 0
	}
	if !s.first {
		return n / s.step
	}
	return (n-1)/s.step + 1
}

// revSeq reverses inner by swapping Next and NextBack.
type revSeq[T any] struct {
	inner Seq[T]
}

// Rev returns a Seq that yields inner's elements back-to-front.
func Rev[T any](inner Seq[T]) Seq[T] {
	return &revSeq[T]{inner: inner}
}

func (r *revSeq[T]) Next() (T, bool)     { return r.inner.NextBack() }
func (r *revSeq[T]) NextBack() (T, bool) { return r.inner.Next() }
func (r *revSeq[T]) Len() int            { return r.inner.Len() }
