package tempuscache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpirationIndex_PeekMinReturnsSmallestExpiry(t *testing.T) {
	idx := newExpirationIndex()
	idx.add("c", 300)
	idx.add("a", 100)
	idx.add("b", 200)

	rec, ok := idx.peekMin()
	require.True(t, ok)
	assert.Equal(t, "a", rec.key)
	assert.Equal(t, int64(100), rec.expiry)
}

func TestExpirationIndex_PeekMinOnEmpty(t *testing.T) {
	idx := newExpirationIndex()
	_, ok := idx.peekMin()
	assert.False(t, ok)
}

func TestExpirationIndex_DrainExpiredOrdersAscending(t *testing.T) {
	idx := newExpirationIndex()
	idx.add("c", 300)
	idx.add("a", 100)
	idx.add("b", 200)

	drained := idx.drainExpired(250)
	assert.Equal(t, []string{"a", "b"}, drained)
	assert.Equal(t, 1, idx.size())
}

func TestExpirationIndex_DrainExpiredLeavesFutureRecords(t *testing.T) {
	idx := newExpirationIndex()
	idx.add("a", 100)
	idx.add("b", 500)

	drained := idx.drainExpired(100)
	assert.Equal(t, []string{"a"}, drained)

	rec, ok := idx.peekMin()
	require.True(t, ok)
	assert.Equal(t, "b", rec.key)
}

func TestExpirationIndex_TolerateDuplicateRecordsForSameKey(t *testing.T) {
	idx := newExpirationIndex()
	idx.add("a", 100)
	idx.add("a", 200) // simulates expire() extending TTL without purging

	assert.Equal(t, 2, idx.size())

	drained := idx.drainExpired(150)
	assert.Equal(t, []string{"a"}, drained, "only the first, stale record is due")
	assert.Equal(t, 1, idx.size())
}

func TestExpirationIndex_Clear(t *testing.T) {
	idx := newExpirationIndex()
	idx.add("a", 100)
	idx.clear()
	assert.Equal(t, 0, idx.size())
	_, ok := idx.peekMin()
	assert.False(t, ok)
}
