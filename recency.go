package tempuscache

/*
recencyIndex tracks relative access order over the cache's key
population: O(1) touch, remove, and tail eviction.

The doubly linked list is an owning slice arena addressed by integer
index rather than individually heap-allocated nodes linked by pointers:
prev/next are index fields into the same slice, and two reserved
sentinel slots (headSentinel, tailSentinel) bound the list so every real
node always has both neighbors. Freed slots go on a free list and get
reused by later touches, so the arena never grows unboundedly relative
to capacity. No node address ever escapes recencyIndex — the only public
view of a node is its key.

touch evicts the current tail *before* linking a new head whenever the
index is already at capacity, and reports the evicted key back to the
caller so the Facade can remove it from the Primary Map and decrement
the byte counter in the same step. Evicting only after the insert would
leave the list transiently (or, without a subsequent correction,
permanently) over capacity, so the order here matters: evict first,
then insert.
*/

const (
	headSentinel int32 = 0
	tailSentinel int32 = 1
	firstRealIdx int32 = 2
)

type recencyNode struct {
	key        string
	prev, next int32
}

type recencyIndex struct {
	nodes    []recencyNode
	free     []int32
	lookup   map[string]int32
	capacity int
}

func newRecencyIndex(capacity int) *recencyIndex {
	idx := &recencyIndex{
		nodes:    make([]recencyNode, firstRealIdx),
		lookup:   make(map[string]int32),
		capacity: capacity,
	}
	idx.nodes[headSentinel] = recencyNode{prev: -1, next: tailSentinel}
	idx.nodes[tailSentinel] = recencyNode{prev: headSentinel, next: -1}
	return idx
}

func (idx *recencyIndex) unlink(i int32) {
	n := idx.nodes[i]
	idx.nodes[n.prev].next = n.next
	idx.nodes[n.next].prev = n.prev
}

func (idx *recencyIndex) linkFront(i int32) {
	headNext := idx.nodes[headSentinel].next
	idx.nodes[i].prev = headSentinel
	idx.nodes[i].next = headNext
	idx.nodes[headNext].prev = i
	idx.nodes[headSentinel].next = i
}

func (idx *recencyIndex) moveToFront(i int32) {
	idx.unlink(i)
	idx.linkFront(i)
}

func (idx *recencyIndex) alloc(key string) int32 {
	if n := len(idx.free); n > 0 {
		i := idx.free[n-1]
		idx.free = idx.free[:n-1]
		idx.nodes[i] = recencyNode{key: key}
		return i
	}
	i := int32(len(idx.nodes))
	idx.nodes = append(idx.nodes, recencyNode{key: key})
	return i
}

// touch records an access to key. If key is already tracked, its node
// moves to the head. Otherwise a new node is inserted at the head; if the
// index was already at capacity, the tail is evicted first and returned
// as (evictedKey, true).
func (idx *recencyIndex) touch(key string) (evictedKey string, evicted bool) {
	if i, ok := idx.lookup[key]; ok {
		idx.moveToFront(i)
		return "", false
	}

	if idx.capacity > 0 && len(idx.lookup) >= idx.capacity {
		evictedKey, evicted = idx.evictTail()
	}

	i := idx.alloc(key)
	idx.linkFront(i)
	idx.lookup[key] = i
	return evictedKey, evicted
}

// evictTail removes and returns the least-recently-used key, or ("",
// false) if the index is empty.
func (idx *recencyIndex) evictTail() (string, bool) {
	last := idx.nodes[tailSentinel].prev
	if last == headSentinel {
		return "", false
	}
	key := idx.nodes[last].key
	idx.unlink(last)
	delete(idx.lookup, key)
	idx.free = append(idx.free, last)
	return key, true
}

// remove unlinks and discards the node for key, if present. No-op
// otherwise.
func (idx *recencyIndex) remove(key string) {
	i, ok := idx.lookup[key]
	if !ok {
		return
	}
	idx.unlink(i)
	delete(idx.lookup, key)
	idx.free = append(idx.free, i)
}

// clear removes all nodes, resetting the list to empty.
func (idx *recencyIndex) clear() {
	idx.nodes = make([]recencyNode, firstRealIdx)
	idx.nodes[headSentinel] = recencyNode{prev: -1, next: tailSentinel}
	idx.nodes[tailSentinel] = recencyNode{prev: headSentinel, next: -1}
	idx.free = nil
	idx.lookup = make(map[string]int32)
}

// isFull reports whether the tracked size has reached capacity. A
// non-positive capacity means unbounded.
func (idx *recencyIndex) isFull() bool {
	return idx.capacity > 0 && len(idx.lookup) >= idx.capacity
}

// size returns the number of tracked keys.
func (idx *recencyIndex) size() int {
	return len(idx.lookup)
}
