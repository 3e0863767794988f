/*
Package chainmap provides a generic hash map built on separate chaining.

Map is an in-process key-value container backed by a manually managed array
of buckets, each holding a singly-linked chain of entries. It offers
average-case O(1) insertion, lookup and removal, with full control over the
bucket array's lifecycle: Clear empties the map while keeping its grown
capacity for reuse, and Reset releases everything back to the initial
16-bucket state.

Basic usage:

	import "github.com/theflywheel/chainmap"

	m := chainmap.New[string, int]()

	// Insert data
	m.Put("alpha", 1)
	m.Put("beta", 2)

	// Retrieve data
	v, ok := m.Get("alpha")
	if ok {
		fmt.Println("Value:", v)
	}

	// Remove an entry
	removed := m.Remove("beta")
	fmt.Println("Removed:", removed)

Features:

  - Generic over string and integer key types with any value type
  - Separate chaining for collision resolution
  - Power-of-two bucket counts with bitwise-AND index derivation
  - Automatic doubling when the load factor exceeds 0.75
  - Cached per-entry hashes, so growth relinks nodes without rehashing
  - Uses xxHash for string keys

Implementation Details:

The bucket array length is always a power of two, starting at 16, so the
bucket index for a hash is computed as hash & (capacity - 1). Each entry
caches the full 64-bit hash of its key; chain scans compare the cached hash
before falling back to key equality, and growth redistributes entries using
the cached hash alone. When an insertion pushes the element count past
capacity * 0.75, the bucket array doubles and every existing node is relinked
into its new chain. Capacity never shrinks automatically; use Reset to return
to the initial footprint.

Map is not safe for concurrent use. Accessing one from multiple goroutines
without external synchronization is undefined behavior, as is copying a Map
value after first use.
*/
package chainmap
