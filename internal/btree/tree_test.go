package btree

import (
	"sort"
	"testing"

	"github.com/kr/pretty"
)

func cmpInt(a, b int) int { return a - b }

func newIntTree[V any](valueDrop func(V)) *Tree[int, V] {
	return New[int, V](cmpInt, nil, valueDrop)
}

// validate walks the whole tree checking the structural invariants: key
// counts within [minKeys, maxKeys] (root exempted), keys sorted within a
// node, child counts one more than key counts, and correct parent
// back-pointers.
func validate[K, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()
	var walk func(n *node[K, V], isRoot bool)
	count := 0
	walk = func(n *node[K, V], isRoot bool) {
		if !isRoot && (len(n.keys) < minKeys || len(n.keys) > maxKeys) {
			t.Fatalf("node has %d keys, want [%d,%d]", len(n.keys), minKeys, maxKeys)
		}
		if len(n.keys) > maxKeys {
			t.Fatalf("node has %d keys, want <= %d", len(n.keys), maxKeys)
		}
		for i := 1; i < len(n.keys); i++ {
			if tr.cmp(n.keys[i-1], n.keys[i]) >= 0 {
				t.Fatalf("node keys not strictly sorted at index %d", i)
			}
		}
		if !n.isLeaf && len(n.children) != len(n.keys)+1 {
			t.Fatalf("node has %d keys but %d children", len(n.keys), len(n.children))
		}
		for i, c := range n.children {
			if c.parent != n {
				t.Fatalf("child %d has wrong parent back-pointer", i)
			}
		}
		count += len(n.keys)
		if !n.isLeaf {
			for _, c := range n.children {
				walk(c, false)
			}
		}
	}
	walk(tr.root, true)
	if count != tr.length {
		t.Fatalf("structural key count %d != tracked length %d", count, tr.length)
	}
}

func collect(tr *Tree[int, int]) []int {
	var out []int
	tr.Each(func(k, _ int) { out = append(out, k) })
	return out
}

func TestInsertGet(t *testing.T) {
	tr := newIntTree[string](nil)
	tr.Insert(1, "one")
	tr.Insert(2, "two")
	v, ok := tr.Get(1)
	if !ok || v != "one" {
		t.Fatalf("Get(1) = (%q, %v), want (one, true)", v, ok)
	}
	if _, ok := tr.Get(3); ok {
		t.Fatal("Get(3) should report absent")
	}
}

func TestOverwriteRunsDropOnce(t *testing.T) {
	var dropped []string
	tr := newIntTree[string](func(v string) { dropped = append(dropped, v) })
	tr.Insert(1, "v1")
	tr.Insert(1, "v2")
	v, _ := tr.Get(1)
	if v != "v2" {
		t.Fatalf("Get(1) = %q, want v2", v)
	}
	if len(dropped) != 1 || dropped[0] != "v1" {
		t.Fatalf("dropped = %v, want [v1]", dropped)
	}
	if tr.Len() != 1 {
		t.Fatalf("expected len 1, got %d", tr.Len())
	}
}

func TestInOrderTraversalIsSortedAfterManyInserts(t *testing.T) {
	tr := newIntTree[int](nil)
	vals := []int{50, 10, 90, 30, 70, 20, 80, 40, 60, 5, 15, 25, 35, 45, 55,
		65, 75, 85, 95, 1, 100, 99, 3, 7, 11, 13, 17, 19, 23, 29}
	for _, v := range vals {
		tr.Insert(v, v*v)
	}
	validate(t, tr)
	got := collect(tr)
	want := append([]int(nil), vals...)
	sort.Ints(want)
	if diff := pretty.Diff(got, want); len(diff) != 0 {
		t.Fatalf("in-order walk does not match sorted input:\n%s", pretty.Sprint(diff))
	}
}

func TestSplitPromotesAndKeepsOrder(t *testing.T) {
	tr := newIntTree[int](nil)
	for i := 0; i < 6; i++ {
		tr.Insert(i, i)
	}
	validate(t, tr)
	if tr.root.isLeaf {
		t.Fatal("expected root to have split into an internal node")
	}
}
