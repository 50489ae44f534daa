package hashmap

const (
	initialCapacity = 16
	loadFactorLimit  = 0.7
)

// entry is a fixed-layout slot: an empty flag and probe length alongside
// the key/value, mirroring the C source's _HashMapEntry header-then-payload
// layout (expressed here as ordinary struct fields instead of a raw,
// aligned byte region).
type entry[K, V any] struct {
	inUse       bool
	probeLength int
	key         K
	value       V
}

// Map is an open-addressed Robin-Hood hash table from K to V.
type Map[K, V any] struct {
	entries   []entry[K, V]
	length    int
	hasher    Hasher
	hash      HashFn[K]
	eq        func(a, b K) bool
	keyDrop   func(K)
	valueDrop func(V)
}

// New creates an empty map with the default initial capacity (16).
// eq must be provided; hash must be provided; keyDrop/valueDrop may be nil
// for plain-old-data keys/values.
func New[K, V any](hash HashFn[K], eq func(a, b K) bool, keyDrop func(K), valueDrop func(V)) *Map[K, V] {
	return WithCapacity[K, V](initialCapacity, hash, eq, keyDrop, valueDrop)
}

// WithCapacity creates an empty map with the given initial slot count.
func WithCapacity[K, V any](capacity int, hash HashFn[K], eq func(a, b K) bool, keyDrop func(K), valueDrop func(V)) *Map[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Map[K, V]{
		entries:   make([]entry[K, V], capacity),
		hash:      hash,
		eq:        eq,
		keyDrop:   keyDrop,
		valueDrop: valueDrop,
	}
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.length }

// Capacity returns the number of slots in the table.
func (m *Map[K, V]) Capacity() int { return len(m.entries) }

func (m *Map[K, V]) slotFor(key K) int {
	m.hasher.Reset()
	m.hash(&m.hasher, key)
	return int(m.hasher.Sum() % uint64(len(m.entries)))
}

func (m *Map[K, V]) loadFactor() float64 {
	return float64(m.length) / float64(len(m.entries))
}

// grow doubles capacity and reinserts every live entry in table order,
// mirroring the C source's _HashMap_grow.
func (m *Map[K, V]) grow() {
	old := m.entries
	m.entries = make([]entry[K, V], len(old)*2)
	m.length = 0
	for _, e := range old {
		if e.inUse {
			m.insert(e.key, e.value)
		}
	}
}

// Insert adds or overwrites the value for key. If key is already present,
// its old value is destroyed via valueDrop (if present) before being
// overwritten; Len() does not change on overwrite. The table grows
// whenever the load factor *after* this insert would exceed the limit, so
// the invariant holds immediately once Insert returns rather than being
// checked against the stale pre-insert count.
func (m *Map[K, V]) Insert(key K, value V) {
	m.insert(key, value)
	if m.loadFactor() > loadFactorLimit {
		m.grow()
	}
}

func (m *Map[K, V]) insert(key K, value V) {
	slot := m.slotFor(key)
	carryKey, carryValue := key, value
	carryProbe := 0

	for {
		cur := &m.entries[slot]

		if !cur.inUse {
			cur.inUse = true
			cur.probeLength = carryProbe
			cur.key = carryKey
			cur.value = carryValue
			m.length++
			return
		}

		if m.eq(carryKey, cur.key) {
			if m.valueDrop != nil {
				m.valueDrop(cur.value)
			}
			cur.value = carryValue
			return
		}

		if cur.probeLength < carryProbe {
			cur.key, carryKey = carryKey, cur.key
			cur.value, carryValue = carryValue, cur.value
			cur.probeLength, carryProbe = carryProbe, cur.probeLength
		}

		slot = (slot + 1) % len(m.entries)
		carryProbe++
	}
}

// findSlot returns the slot index holding key, or -1 if absent. Mirrors
// the C source's _HashMap_get_entry early-exit when the probed entry's
// probe length is already less than the search's own, which bounds the
// lookup to the key's displaced run.
func (m *Map[K, V]) findSlot(key K) int {
	if len(m.entries) == 0 {
		return -1
	}
	slot := m.slotFor(key)
	probe := 0
	for {
		cur := &m.entries[slot]
		if !cur.inUse {
			return -1
		}
		if m.eq(key, cur.key) {
			return slot
		}
		if cur.probeLength < probe {
			return -1
		}
		slot = (slot + 1) % len(m.entries)
		probe++
	}
}

// Get returns the value for key and true, or the zero value and false if
// absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	slot := m.findSlot(key)
	if slot < 0 {
		return zero, false
	}
	return m.entries[slot].value, true
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.findSlot(key) >= 0
}

// Remove deletes key if present, destroying its key/value via their drop
// hooks, then backward-shifting the following run to repair probe
// lengths. A no-op if key is absent.
func (m *Map[K, V]) Remove(key K) {
	slot := m.findSlot(key)
	if slot < 0 {
		return
	}

	if m.keyDrop != nil {
		m.keyDrop(m.entries[slot].key)
	}
	if m.valueDrop != nil {
		m.valueDrop(m.entries[slot].value)
	}

	next := (slot + 1) % len(m.entries)
	for {
		nextEntry := &m.entries[next]
		if !nextEntry.inUse || nextEntry.probeLength == 0 {
			m.entries[slot] = entry[K, V]{}
			break
		}
		m.entries[slot] = *nextEntry
		m.entries[slot].probeLength--
		slot = next
		next = (next + 1) % len(m.entries)
	}
	m.length--
}

// Each calls fn for every live entry in table order. Order is unspecified
// beyond "follows table layout", per spec.md §4.5.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	for _, e := range m.entries {
		if e.inUse {
			fn(e.key, e.value)
		}
	}
}

// Clear removes every entry, running key/value drop hooks.
func (m *Map[K, V]) Clear() {
	for i := range m.entries {
		e := &m.entries[i]
		if !e.inUse {
			continue
		}
		if m.keyDrop != nil {
			m.keyDrop(e.key)
		}
		if m.valueDrop != nil {
			m.valueDrop(e.value)
		}
		*e = entry[K, V]{}
	}
	m.length = 0
}

// Drop destroys every live entry via its drop hooks and releases the
// table.
func (m *Map[K, V]) Drop() {
	m.Clear()
	m.entries = nil
}
