package btree

// SetAlgebraIter is a pull iterator over a lazily-computed merge of two
// trees' in-order walks.
type SetAlgebraIter[K, V any] struct {
	pull func() (K, V, bool)
}

// Next returns the next entry, or false when exhausted.
func (it *SetAlgebraIter[K, V]) Next() (K, V, bool) {
	if it.pull == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	return it.pull()
}

// walker returns a closure yielding t's entries in ascending key order.
func (t *Tree[K, V]) walker() func() (K, V, bool) {
	pos := t.leftmostPosition()
	return func() (K, V, bool) {
		var zk K
		var zv V
		if !pos.ok {
			return zk, zv, false
		}
		k, v := pos.node.keys[pos.idx], pos.node.values[pos.idx]
		pos = t.successor(pos)
		return k, v, true
	}
}

// Union yields every key present in a or b, each exactly once, in sorted
// order: on equal keys the value is taken from a.
func Union[K, V any](a, b *Tree[K, V]) *SetAlgebraIter[K, V] {
	cmp := a.cmp
	na, nb := a.walker(), b.walker()
	ak, av, aok := na()
	bk, bv, bok := nb()
	return &SetAlgebraIter[K, V]{pull: func() (K, V, bool) {
		var zk K
		var zv V
		switch {
		case !aok && !bok:
			return zk, zv, false
		case !aok:
			k, v := bk, bv
			bk, bv, bok = nb()
			return k, v, true
		case !bok:
			k, v := ak, av
			ak, av, aok = na()
			return k, v, true
		default:
			switch c := cmp(ak, bk); {
			case c < 0:
				k, v := ak, av
				ak, av, aok = na()
				return k, v, true
			case c > 0:
				k, v := bk, bv
				bk, bv, bok = nb()
				return k, v, true
			default:
				k, v := ak, av
				ak, av, aok = na()
				bk, bv, bok = nb()
				return k, v, true
			}
		}
	}}
}

// Intersection yields every key present in both a and b, sorted.
func Intersection[K, V any](a, b *Tree[K, V]) *SetAlgebraIter[K, V] {
	cmp := a.cmp
	na, nb := a.walker(), b.walker()
	ak, av, aok := na()
	bk, _, bok := nb()
	return &SetAlgebraIter[K, V]{pull: func() (K, V, bool) {
		for aok && bok {
			switch c := cmp(ak, bk); {
			case c < 0:
				ak, av, aok = na()
			case c > 0:
				bk, _, bok = nb()
			default:
				k, v := ak, av
				ak, av, aok = na()
				bk, _, bok = nb()
				return k, v, true
			}
		}
		var zk K
		var zv V
		return zk, zv, false
	}}
}

// Difference yields every key of a that is absent from b (a − b), sorted,
// probing b by find for each key of a's in-order walk.
func Difference[K, V any](a, b *Tree[K, V]) *SetAlgebraIter[K, V] {
	na := a.walker()
	return &SetAlgebraIter[K, V]{pull: func() (K, V, bool) {
		for {
			k, v, ok := na()
			if !ok {
				var zk K
				var zv V
				return zk, zv, false
			}
			if _, found := b.Get(k); !found {
				return k, v, true
			}
		}
	}}
}

// SymmetricDifference yields every key present in exactly one of a, b,
// sorted.
func SymmetricDifference[K, V any](a, b *Tree[K, V]) *SetAlgebraIter[K, V] {
	cmp := a.cmp
	na, nb := a.walker(), b.walker()
	ak, av, aok := na()
	bk, bv, bok := nb()
	return &SetAlgebraIter[K, V]{pull: func() (K, V, bool) {
		for {
			switch {
			case !aok && !bok:
				var zk K
				var zv V
				return zk, zv, false
			case !aok:
				k, v := bk, bv
				bk, bv, bok = nb()
				return k, v, true
			case !bok:
				k, v := ak, av
				ak, av, aok = na()
				return k, v, true
			default:
				switch c := cmp(ak, bk); {
				case c < 0:
					k, v := ak, av
					ak, av, aok = na()
					return k, v, true
				case c > 0:
					k, v := bk, bv
					bk, bv, bok = nb()
					return k, v, true
				default:
					ak, av, aok = na()
					bk, bv, bok = nb()
				}
			}
		}
	}}
}
