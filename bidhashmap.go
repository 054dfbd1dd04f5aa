package bidhashmap

import (
	"fmt"
	"github.com/gostonefire/bidhashmap/hashfunc"
	"github.com/gostonefire/bidhashmap/internal/hash"
)

// node - One link in a bucket chain. The bucketNo is kept for diagnostics and always equals the bucket the
// node is linked into, since the table never rehashes.
type node struct {
	bid      Bid
	bucketNo int64
	next     *node
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the total number of buckets in the bid hash map
//   - InternalAlgorithm is true if the internal modulo hash algorithm is used
type HashMapInfo struct {
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of bids stored
//   - UsedBuckets is the number of buckets holding at least one bid
//   - LongestChain is the number of bids in the most populated bucket
//   - LoadFactor is Records divided by the number of buckets
//   - BucketDistribution is the number of bids stored in each bucket
type HashMapStat struct {
	Records            int64
	UsedBuckets        int64
	LongestChain       int64
	LoadFactor         float64
	BucketDistribution []int64
}

// BidHashMap - The main implementation struct, a fixed size table of bucket chains.
// A BidHashMap is not safe for concurrent use, callers sharing one must guard it with a single mutex.
type BidHashMap struct {
	buckets           []*node
	tableSize         int64
	records           int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewBidHashMap - Returns a new bid hash map with a fixed number of buckets. The number of buckets never changes,
// a high load factor only results in longer chains.
//   - tableSize is the number of buckets, conf.DefaultTableSize (179) is a good choice for small data sets
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - bidHashMap is a pointer to a BidHashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is a normal go Error which should be nil if everything went ok
func NewBidHashMap(tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (
	bidHashMap *BidHashMap,
	hashMapInfo HashMapInfo,
	err error,
) {
	// Check if tableSize is valid
	if tableSize <= 0 {
		err = fmt.Errorf("tableSize must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewModuloHashAlgorithm(tableSize)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(tableSize)
	}

	actualSize := hashAlgorithm.GetTableSize()
	if actualSize <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d, must be higher than 0 (zero)", actualSize)
		return
	}

	bidHashMap = &BidHashMap{
		buckets:           make([]*node, actualSize),
		tableSize:         actualSize,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	hashMapInfo = HashMapInfo{
		NumberOfBuckets:   actualSize,
		InternalAlgorithm: internalAlg,
	}

	return
}
