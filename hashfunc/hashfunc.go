package hashfunc

// HashAlgorithm - Interface that permits an implementation using the BidHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of bid ids.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called once when creating a bid hash map. If a custom hash algorithm is supplied that already has a
	// table size, it will be overwritten by the number of buckets that was given when creating the bid hash map.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given a numeric key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key int64) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// The table size must stay the same for the lifetime of the bid hash map since stored records are never
	// rehashed.
	GetTableSize() int64
}
