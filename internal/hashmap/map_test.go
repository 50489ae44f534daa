package hashmap

import "testing"

func eqInt(a, b int) bool { return a == b }

func newIntMap[V any](drop func(V)) *Map[int, V] {
	return New[int, V](IntHash, eqInt, nil, drop)
}

func TestInsertGet(t *testing.T) {
	m := newIntMap[string](nil)
	m.Insert(1, "one")
	m.Insert(2, "two")
	v, ok := m.Get(1)
	if !ok || v != "one" {
		t.Fatalf("Get(1) = (%q, %v), want (one, true)", v, ok)
	}
	if _, ok := m.Get(3); ok {
		t.Fatal("Get(3) should report absent")
	}
}

func TestOverwriteRunsDropOnce(t *testing.T) {
	var dropped []string
	m := newIntMap[string](func(v string) { dropped = append(dropped, v) })
	m.Insert(1, "v1")
	m.Insert(1, "v2")
	v, _ := m.Get(1)
	if v != "v2" {
		t.Fatalf("Get(1) = %q, want v2", v)
	}
	if len(dropped) != 1 || dropped[0] != "v1" {
		t.Fatalf("dropped = %v, want [v1]", dropped)
	}
	if m.Len() != 1 {
		t.Fatalf("expected len 1, got %d", m.Len())
	}
}

func TestRemoveThenGetIsAbsent(t *testing.T) {
	m := newIntMap[int](nil)
	for i := 0; i < 20; i++ {
		m.Insert(i, i*i)
	}
	m.Remove(5)
	if _, ok := m.Get(5); ok {
		t.Fatal("Get(5) should report absent after Remove")
	}
	for i := 0; i < 20; i++ {
		if i == 5 {
			continue
		}
		v, ok := m.Get(i)
		if !ok || v != i*i {
			t.Errorf("Get(%d) = (%d, %v), want (%d, true)", i, v, ok, i*i)
		}
	}
}

func TestProbeLengthInvariant(t *testing.T) {
	m := newIntMap[int](nil)
	for i := 0; i < 50; i++ {
		m.Insert(i, i)
	}
	cap64 := uint64(len(m.entries))
	for slot, e := range m.entries {
		if !e.inUse {
			continue
		}
		var h Hasher
		IntHash(&h, e.key)
		ideal := int(h.Sum() % cap64)
		want := (slot - ideal + len(m.entries)) % len(m.entries)
		if e.probeLength != want {
			t.Errorf("slot %d: probeLength = %d, want %d", slot, e.probeLength, want)
		}
	}
}

func TestLoadFactorBoundAfterInsert(t *testing.T) {
	m := newIntMap[int](nil)
	for i := 0; i < 200; i++ {
		m.Insert(i, i)
		if m.loadFactor() > loadFactorLimit {
			t.Fatalf("load factor %.3f exceeds limit after inserting %d entries", m.loadFactor(), i+1)
		}
	}
}

func TestRemoveAllThenReinsert(t *testing.T) {
	m := newIntMap[int](nil)
	for i := 0; i < 30; i++ {
		m.Insert(i, i)
	}
	for i := 0; i < 30; i++ {
		m.Remove(i)
	}
	if m.Len() != 0 {
		t.Fatalf("expected len 0, got %d", m.Len())
	}
	m.Insert(100, 100)
	v, ok := m.Get(100)
	if !ok || v != 100 {
		t.Fatalf("Get(100) = (%d, %v) after reinsert, want (100, true)", v, ok)
	}
}

func TestEachVisitsEveryLiveEntry(t *testing.T) {
	m := newIntMap[int](nil)
	want := map[int]int{}
	for i := 0; i < 40; i++ {
		m.Insert(i, i*2)
		want[i] = i * 2
	}
	got := map[int]int{}
	m.Each(func(k, v int) { got[k] = v })
	if len(got) != len(want) {
		t.Fatalf("Each visited %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("got[%d] = %d, want %d", k, got[k], v)
		}
	}
}
