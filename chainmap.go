package chainmap

import (
	"github.com/cespare/xxhash/v2"
)

const (
	// defaultCapacity is the bucket count of a freshly constructed map.
	// Capacity must stay a power of two; index derivation relies on it.
	defaultCapacity = 16

	// loadFactor is the size/capacity ratio above which the bucket
	// array doubles. The threshold is the truncated product
	// loadFactor * capacity, so a 16-bucket map grows on the 13th entry.
	loadFactor = 0.75
)

// Key is the set of types usable as map keys: strings and the fixed-width
// and platform integer types. Strings are hashed with xxHash; integers hash
// to their own value widened to 64 bits.
type Key interface {
	string | int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// node is one stored entry in a bucket chain. The key and its hash are
// fixed at insertion; only the value is overwritten in place. A node is
// reachable from exactly one predecessor (a bucket head or another node's
// next link) at all times.
type node[K Key, V any] struct {
	key   K
	value V
	hash  uint64
	next  *node[K, V]
}

// Map is a hash map from K to V using separate chaining.
//
// The zero value is not usable; construct with New. A Map must not be
// copied after first use, and it is not safe for concurrent access.
type Map[K Key, V any] struct {
	noCopy noCopy

	// buckets holds the chain heads. len(buckets) is the current
	// capacity, always a power of two.
	buckets []*node[K, V]

	// size is the live entry count across all chains.
	size int

	// threshold is the size above which the next insertion doubles the
	// bucket array. Recomputed whenever capacity changes, never stored
	// independently of it.
	threshold int
}

// New returns an empty map with the default capacity of 16 buckets.
func New[K Key, V any]() *Map[K, V] {
	m := &Map[K, V]{}
	m.init(defaultCapacity)
	return m
}

// init allocates a fresh bucket array of the given capacity with every slot
// empty, resets the entry count and recomputes the threshold. The capacity
// must be a power of two. Called by New and Reset; growth allocates its own
// array so the live size is never clobbered mid-migration.
func (m *Map[K, V]) init(capacity int) {
	m.buckets = make([]*node[K, V], capacity)
	m.size = 0
	m.threshold = int(float64(capacity) * loadFactor)
}

// hashKey computes the fixed hash for a key. Strings go through xxHash;
// integer keys hash to their own value, so the distribution of integer keys
// across buckets is exactly their low bits.
func hashKey[K Key](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return uint64(k)
	case int8:
		return uint64(k)
	case int16:
		return uint64(k)
	case int32:
		return uint64(k)
	case int64:
		return uint64(k)
	case uint:
		return uint64(k)
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case uintptr:
		return uint64(k)
	}
	panic("chainmap: unreachable key type")
}

// index derives the bucket index for a hash. The bitwise AND stands in for
// a modulo and is correct only while capacity is a power of two.
func (m *Map[K, V]) index(hash uint64) uint64 {
	return hash & uint64(len(m.buckets)-1)
}

// Get returns the value stored under key. The second result reports whether
// the key was present; a missing key yields the zero value and false, never
// an error. The chain scan compares cached hashes before key equality.
func (m *Map[K, V]) Get(key K) (V, bool) {
	h := hashKey(key)
	for e := m.buckets[m.index(h)]; e != nil; e = e.next {
		if e.hash == h && e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Put inserts a key-value pair, or overwrites the value in place if the key
// is already present. An overwrite never changes the entry count and never
// triggers growth; a new key is prepended to its chain in O(1), with no
// ordering guarantee among colliding keys.
func (m *Map[K, V]) Put(key K, value V) {
	h := hashKey(key)
	idx := m.index(h)

	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.hash == h && e.key == key {
			e.value = value
			return
		}
	}

	m.buckets[idx] = &node[K, V]{key: key, value: value, hash: h, next: m.buckets[idx]}
	m.size++
	if m.size > m.threshold {
		m.grow()
	}
}

// grow doubles the bucket array and relinks every existing node into its
// chain under the new capacity, using the cached hashes. Nodes are migrated,
// not recreated. O(n), stop-the-world; capacity only ever grows.
func (m *Map[K, V]) grow() {
	old := m.buckets
	newCap := len(old) * 2
	m.buckets = make([]*node[K, V], newCap)
	m.threshold = int(float64(newCap) * loadFactor)

	for i, e := range old {
		for e != nil {
			next := e.next
			idx := m.index(e.hash)
			e.next = m.buckets[idx]
			m.buckets[idx] = e
			e = next
		}
		old[i] = nil
	}
}

// Remove deletes the entry stored under key and reports whether an entry
// was removed. Removal never shrinks the bucket array.
func (m *Map[K, V]) Remove(key K) bool {
	h := hashKey(key)
	idx := m.index(h)

	var prev *node[K, V]
	for e := m.buckets[idx]; e != nil; prev, e = e, e.next {
		if e.hash == h && e.key == key {
			if prev != nil {
				prev.next = e.next
			} else {
				m.buckets[idx] = e.next
			}
			e.next = nil
			m.size--
			return true
		}
	}
	return false
}

// Clear removes every entry but keeps the current capacity and threshold,
// so the grown bucket array is reused by subsequent insertions. Calling it
// on an empty map is a no-op.
func (m *Map[K, V]) Clear() {
	if m.size == 0 {
		return
	}
	for i, e := range m.buckets {
		for e != nil {
			next := e.next
			e.next = nil
			e = next
		}
		m.buckets[i] = nil
	}
	m.size = 0
}

// Reset returns the map to its just-constructed state: every entry is
// dropped and the bucket array itself is replaced by a fresh one at the
// default capacity. Use Reset to release memory after the array has grown;
// use Clear to keep the capacity for anticipated reuse. Idempotent.
func (m *Map[K, V]) Reset() {
	if m.size != 0 {
		for i, e := range m.buckets {
			for e != nil {
				next := e.next
				e.next = nil
				e = next
			}
			m.buckets[i] = nil
		}
	}
	m.init(defaultCapacity)
}

// Size returns the number of live entries.
func (m *Map[K, V]) Size() int {
	return m.size
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// capacity returns the current bucket count. Diagnostic accessor for tests;
// callers outside the package cannot depend on it.
func (m *Map[K, V]) capacity() int {
	return len(m.buckets)
}

// loadFactorOf returns the fixed load factor. Diagnostic accessor for tests.
func (m *Map[K, V]) loadFactorOf() float64 {
	return loadFactor
}

// thresholdOf returns the current growth threshold. Diagnostic accessor for
// tests.
func (m *Map[K, V]) thresholdOf() int {
	return m.threshold
}

// noCopy triggers go vet's copylocks check when a Map value is duplicated.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
