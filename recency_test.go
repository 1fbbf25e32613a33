package tempuscache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecencyIndex_TouchOrdersByRecency(t *testing.T) {
	idx := newRecencyIndex(3)

	idx.touch("a")
	idx.touch("b")
	idx.touch("c")

	key, ok := idx.evictTail()
	require.True(t, ok)
	assert.Equal(t, "a", key, "a is least recently used")
}

func TestRecencyIndex_TouchPromotesExistingKey(t *testing.T) {
	idx := newRecencyIndex(3)

	idx.touch("a")
	idx.touch("b")
	idx.touch("a") // re-touch promotes a ahead of b
	idx.touch("c")

	key, ok := idx.evictTail()
	require.True(t, ok)
	assert.Equal(t, "b", key, "b is now least recently used")
}

func TestRecencyIndex_TouchEvictsTailWhenFull(t *testing.T) {
	idx := newRecencyIndex(2)

	idx.touch("a")
	idx.touch("b")

	evictedKey, evicted := idx.touch("c")
	require.True(t, evicted, "touch on a new key at capacity must evict")
	assert.Equal(t, "a", evictedKey)
	assert.Equal(t, 2, idx.size())

	key, ok := idx.evictTail()
	require.True(t, ok)
	assert.Equal(t, "b", key)
}

func TestRecencyIndex_TouchWithinCapacityDoesNotEvict(t *testing.T) {
	idx := newRecencyIndex(2)

	_, evicted := idx.touch("a")
	assert.False(t, evicted)

	_, evicted = idx.touch("a") // re-touch, still within capacity
	assert.False(t, evicted)
}

func TestRecencyIndex_EvictTailOnEmpty(t *testing.T) {
	idx := newRecencyIndex(2)
	_, ok := idx.evictTail()
	assert.False(t, ok)
}

func TestRecencyIndex_Remove(t *testing.T) {
	idx := newRecencyIndex(3)
	idx.touch("a")
	idx.touch("b")

	idx.remove("a")
	assert.Equal(t, 1, idx.size())

	idx.remove("does-not-exist") // no-op, must not panic

	key, ok := idx.evictTail()
	require.True(t, ok)
	assert.Equal(t, "b", key)
}

func TestRecencyIndex_ClearResetsState(t *testing.T) {
	idx := newRecencyIndex(2)
	idx.touch("a")
	idx.touch("b")

	idx.clear()
	assert.Equal(t, 0, idx.size())
	assert.False(t, idx.isFull())

	_, evicted := idx.touch("c")
	assert.False(t, evicted, "freshly cleared index has room")
}

func TestRecencyIndex_IsFull(t *testing.T) {
	idx := newRecencyIndex(1)
	assert.False(t, idx.isFull())

	idx.touch("a")
	assert.True(t, idx.isFull())
}

func TestRecencyIndex_UnboundedCapacity(t *testing.T) {
	idx := newRecencyIndex(0)
	for i := 0; i < 1000; i++ {
		idx.touch(string(rune('a' + i%26)))
	}
	assert.False(t, idx.isFull(), "capacity <= 0 means unbounded")
}

func TestRecencyIndex_NodesAreReusedAfterEviction(t *testing.T) {
	idx := newRecencyIndex(2)
	idx.touch("a")
	idx.touch("b")
	startLen := len(idx.nodes)

	idx.touch("c") // evicts a, should reuse its freed slot
	assert.Equal(t, startLen, len(idx.nodes), "freed arena slots must be reused, not leaked")
}
