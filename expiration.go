package tempuscache

import "container/heap"

/*
expirationIndex is a time-ordered priority collection of expiration
candidates, implemented as a binary min-heap over container/heap ordered
by ascending expiry.

A single key may have multiple records in the heap: expire and set can
both push a fresh expiry for a key without anyone purging the key's
earlier records. Purging old records on every TTL extension would add a
linear scan to an otherwise O(log n) operation, so stale records are
simply tolerated instead. The Primary Map's current expiry is always
authoritative: the Facade's sweep removes keys based on the Primary
Map's own expiries and discards the keys drained here, so a stale record
never causes a removal.
*/

type expirationRecord struct {
	key    string
	expiry int64
}

type expirationHeap []expirationRecord

func (h expirationHeap) Len() int            { return len(h) }
func (h expirationHeap) Less(i, j int) bool  { return h[i].expiry < h[j].expiry }
func (h expirationHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *expirationHeap) Push(x interface{}) { *h = append(*h, x.(expirationRecord)) }
func (h *expirationHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

type expirationIndex struct {
	records expirationHeap
}

func newExpirationIndex() *expirationIndex {
	return &expirationIndex{records: make(expirationHeap, 0)}
}

// add inserts a record. Duplicates for the same key are permitted.
func (idx *expirationIndex) add(key string, expiry int64) {
	heap.Push(&idx.records, expirationRecord{key: key, expiry: expiry})
}

// peekMin returns the record with the smallest expiry, if any.
func (idx *expirationIndex) peekMin() (expirationRecord, bool) {
	if len(idx.records) == 0 {
		return expirationRecord{}, false
	}
	return idx.records[0], true
}

// drainExpired removes every record whose expiry <= now and returns their
// keys in ascending-expiry order. Ties among equal expiries may break
// arbitrarily.
func (idx *expirationIndex) drainExpired(now int64) []string {
	var drained []string
	for len(idx.records) > 0 && idx.records[0].expiry <= now {
		rec := heap.Pop(&idx.records).(expirationRecord)
		drained = append(drained, rec.key)
	}
	return drained
}

// clear removes every record.
func (idx *expirationIndex) clear() {
	idx.records = make(expirationHeap, 0)
}

// size returns the number of pending (possibly stale) records.
func (idx *expirationIndex) size() int {
	return len(idx.records)
}
