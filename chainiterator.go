package bidhashmap

import (
	"github.com/gostonefire/bidhashmap/bhmerrors"
)

// chainRecords - Is used to iterate over the nodes of one bucket chain one by one.
type chainRecords struct {
	current *node
}

// newChainRecords - Returns a pointer to a new chainRecords struct starting at the given bucket head
func newChainRecords(head *node) *chainRecords {
	return &chainRecords{current: head}
}

// hasNext - Returns true if there are more nodes to be fetched from a call to next.
func (C *chainRecords) hasNext() bool {
	return C.current != nil
}

// next - Returns the next node in the chain, or nil if the chain is exhausted.
func (C *chainRecords) next() (n *node) {
	n = C.current
	if n != nil {
		C.current = n.next
	}

	return
}

// TableRecords - Is used to iterate over all bids in a BidHashMap, bucket by bucket in bucket number order and
// within a bucket in insertion order. The table must not be modified while iterating.
type TableRecords struct {
	buckets  []*node
	bucketNo int
	chain    *chainRecords
}

// newTableRecords - Returns a pointer to a new TableRecords struct positioned before the first bid
func newTableRecords(buckets []*node) *TableRecords {
	return &TableRecords{buckets: buckets, chain: newChainRecords(nil)}
}

// HasNext - Returns true if there are more bids to be fetched from a call to Next.
func (T *TableRecords) HasNext() bool {
	for !T.chain.hasNext() && T.bucketNo < len(T.buckets) {
		T.chain = newChainRecords(T.buckets[T.bucketNo])
		T.bucketNo++
	}

	return T.chain.hasNext()
}

// Next - Returns bid.
// It returns:
//   - bid is the next bid.
//   - err is of type bhmerrors.NoRecordFound if there are no more bids when calling this function.
func (T *TableRecords) Next() (bid Bid, err error) {
	if !T.HasNext() {
		err = bhmerrors.NoRecordFound{}
		return
	}

	bid = T.chain.next().bid

	return
}
