// Package hashmap implements the pluggable Hasher interface (C5) and an
// open-addressed Robin-Hood hash map/set (C6), grounded in the
// Hasher/SimpleHasher/HashMap sections of the C source this library was
// distilled from.
package hashmap

// Hasher accumulates bytes and produces a 64-bit digest. The default
// implementation sums key bytes, which is semantically weak but, per
// spec.md §4.5, sufficient to exercise the table's probing discipline.
type Hasher struct {
	state uint64
}

// Reset zeroes the accumulator.
func (h *Hasher) Reset() { h.state = 0 }

// Write folds data into the accumulator.
func (h *Hasher) Write(data []byte) {
	for _, b := range data {
		h.state += uint64(b)
	}
}

// Sum returns the current digest.
func (h *Hasher) Sum() uint64 { return h.state }

// HashFn writes k's bytes into h. Callers supply one per key type, mirroring
// the C source's HashFn key-hashing callback.
type HashFn[K any] func(h *Hasher, key K)

// BytesHash is a ready-made HashFn for []byte keys.
func BytesHash(h *Hasher, key []byte) { h.Write(key) }

// StringHash is a ready-made HashFn for string keys.
func StringHash(h *Hasher, key string) { h.Write([]byte(key)) }

// IntHash is a ready-made HashFn for int keys, writing the key's
// little-endian byte representation.
func IntHash(h *Hasher, key int) {
	u := uint64(key)
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
	h.Write(buf[:])
}
