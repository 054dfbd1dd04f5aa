package bidhashmap

import (
	"errors"
	"fmt"
	"github.com/gostonefire/bidhashmap/bhmerrors"
	"github.com/gostonefire/bidhashmap/internal/utils"
	"io"
)

// Insert - Adds a bid to the chain of the bucket its id hashes to. If the bucket is empty the bid becomes the
// bucket head, otherwise it is appended at the tail of the chain.
// There is no check for duplicates, a bid with an id already in the table is appended as well and stays
// unreachable for Search until the earlier one is removed.
//   - bid is the bid to store, its BidId must be a non-negative integer
//
// It returns:
//   - err is of type bhmerrors.ParseError if the bid id is not numeric, in which case nothing is stored
func (B *BidHashMap) Insert(bid Bid) (err error) {
	bucketNo, err := B.GetBucketNo(bid.BidId)
	if err != nil {
		err = fmt.Errorf("error while inserting bid: %w", err)
		return
	}

	newNode := &node{bid: bid, bucketNo: bucketNo}

	if B.buckets[bucketNo] == nil {
		B.buckets[bucketNo] = newNode
	} else {
		tail := B.buckets[bucketNo]
		for tail.next != nil {
			tail = tail.next
		}
		tail.next = newNode
	}
	B.records++

	return
}

// Search - Gets the first bid, in insertion order, that has the given id.
//   - bidId is the id of the bid, it has to be a non-negative integer
//
// It returns:
//   - bid is the matching bid if found, if not found an error of type bhmerrors.NoRecordFound is also returned.
//   - err is either of type bhmerrors.NoRecordFound, bhmerrors.ParseError or a standard error
func (B *BidHashMap) Search(bidId string) (bid Bid, err error) {
	bucketNo, err := B.GetBucketNo(bidId)
	if err != nil {
		err = fmt.Errorf("error while searching bid: %w", err)
		return
	}

	iter := newChainRecords(B.buckets[bucketNo])
	for iter.hasNext() {
		n := iter.next()
		if n.bid.BidId == bidId {
			bid = n.bid
			return
		}
	}

	err = bhmerrors.NoRecordFound{}

	return
}

// Remove - Unlinks the first bid, in insertion order, that has the given id.
// Removing an id that is not in the table is a no-op and returns no error, use Pop to learn whether anything
// was removed.
//   - bidId is the id of the bid, it has to be a non-negative integer
//
// It returns:
//   - err is of type bhmerrors.ParseError if the bid id is not numeric
func (B *BidHashMap) Remove(bidId string) (err error) {
	_, err = B.Pop(bidId)
	if errors.Is(err, bhmerrors.NoRecordFound{}) {
		err = nil
	}

	return
}

// Pop - Returns the first bid, in insertion order, that has the given id and removes it from the table.
//   - bidId is the id of the bid, it has to be a non-negative integer
//
// It returns:
//   - bid is the removed bid if found, if not found an error of type bhmerrors.NoRecordFound is also returned.
//   - err is either of type bhmerrors.NoRecordFound, bhmerrors.ParseError or a standard error
func (B *BidHashMap) Pop(bidId string) (bid Bid, err error) {
	bucketNo, err := B.GetBucketNo(bidId)
	if err != nil {
		err = fmt.Errorf("error while removing bid: %w", err)
		return
	}

	var prev *node
	iter := newChainRecords(B.buckets[bucketNo])
	for iter.hasNext() {
		n := iter.next()
		if n.bid.BidId == bidId {
			if prev == nil {
				B.buckets[bucketNo] = n.next
			} else {
				prev.next = n.next
			}
			n.next = nil
			B.records--
			bid = n.bid
			return
		}
		prev = n
	}

	err = bhmerrors.NoRecordFound{}

	return
}

// Len - Returns the number of bids stored, duplicates included
func (B *BidHashMap) Len() int64 {
	return B.records
}

// TableSize - Returns the fixed number of buckets
func (B *BidHashMap) TableSize() int64 {
	return B.tableSize
}

// Iterator - Returns a new TableRecords that walks all stored bids in bucket number order and insertion order
// within each bucket. Each call starts over from the first bucket.
func (B *BidHashMap) Iterator() *TableRecords {
	return newTableRecords(B.buckets)
}

// Bids - Returns all stored bids in the same order as Iterator
func (B *BidHashMap) Bids() (bids []Bid) {
	bids = make([]Bid, 0, B.records)
	iter := B.Iterator()
	for iter.HasNext() {
		bid, _ := iter.Next()
		bids = append(bids, bid)
	}

	return
}

// PrintAll - Writes every stored bid, one per line, in the same order as Iterator.
//   - w is the writer to print to
func (B *BidHashMap) PrintAll(w io.Writer) (err error) {
	iter := B.Iterator()
	for iter.HasNext() {
		var bid Bid
		bid, err = iter.Next()
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(w, bid.String())
		if err != nil {
			err = fmt.Errorf("error while printing bids: %w", err)
			return
		}
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length TableSize with number of bids per bucket, false will set HashMapStat.BucketDistribution to nil.
func (B *BidHashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	var hms HashMapStat

	if includeDistribution {
		hms.BucketDistribution = make([]int64, B.tableSize)
	}

	// Iterate over every available bucket
	for i, head := range B.buckets {
		var chainLength int64
		iter := newChainRecords(head)
		for iter.hasNext() {
			_ = iter.next()
			chainLength++
		}

		if chainLength > 0 {
			hms.UsedBuckets++
		}
		if chainLength > hms.LongestChain {
			hms.LongestChain = chainLength
		}
		hms.Records += chainLength
		if includeDistribution {
			hms.BucketDistribution[i] = chainLength
		}
	}

	hms.LoadFactor = float64(hms.Records) / float64(B.tableSize)

	hashMapStat = &hms
	return
}

// GetBucketNo - Returns which bucket number that the given bid id results in
//   - bidId is the identifier of a bid, it has to be a non-negative integer
func (B *BidHashMap) GetBucketNo(bidId string) (bucketNo int64, err error) {
	key, err := utils.ParseBidId(bidId)
	if err != nil {
		return
	}

	bucketNo = B.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= B.tableSize {
		err = fmt.Errorf("received bucket number %d from hash algorithm is outside permitted range", bucketNo)
		return
	}

	return
}
