package tempuscache

import (
	"sync"

	"github.com/rs/zerolog"
)

/*
Cache is the Facade: it owns the byte counter, the (maxMemory, maxKeys)
configuration, and the operation counter, and it sequences every public
operation across the Primary Map, Recency Index, and Expiration Index so
their combined state stays consistent.

Set, Get, Del, Exists and Expire begin with a passive expiration sweep.
Flush clears unconditionally and so has nothing to sweep; the observers
KeyCount, MemoryUsage and OpsPerSecond do not sweep either. A
single mutex spans all three substructures and the byte counter: locking
each substructure independently would let one operation observe the
others mid-update, so there is exactly one lock here, not one per
substructure.
*/
type Cache struct {
	mu sync.Mutex

	primary *primaryMap
	recency *recencyIndex
	expiry  *expirationIndex

	bytes     int64
	maxMemory int64
	maxKeys   int

	clock     Clock
	logger    zerolog.Logger
	metrics   MetricsRecorder
	startTime int64
	opsCount  uint64
}

// MetricsRecorder is the observer interface Cache reports through.
// *metrics.Collector satisfies it; the core never imports the metrics
// package, so embedding Prometheus in a caller's binary is opt-in.
type MetricsRecorder interface {
	SetKeyCount(n int)
	SetBytesUsed(n int64)
	IncOps()
	IncHit()
	IncMiss()
	IncEviction(reason string)
}

// New constructs a Cache. Defaults are 100 MiB and 10,000 keys.
// ErrInvalidConfig is returned if an option describes an impossible
// budget (a negative byte limit).
func New(opts ...Option) (*Cache, error) {
	c := &Cache{
		primary:   newPrimaryMap(),
		expiry:    newExpirationIndex(),
		maxMemory: defaultMaxMemory,
		maxKeys:   defaultMaxKeys,
		clock:     SystemClock{},
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.maxMemory < 0 {
		return nil, ErrInvalidConfig
	}

	c.recency = newRecencyIndex(c.maxKeys)
	c.startTime = c.clock.NowSeconds()
	return c, nil
}

// observe is called at the end of Set, Get, Del, Exists, Expire and Flush.
// It always bumps the op counter and, iff metrics are attached, also
// reports the operation and pushes the current gauges.
func (c *Cache) observe() {
	c.opsCount++
	if c.metrics == nil {
		return
	}
	c.metrics.IncOps()
	c.metrics.SetKeyCount(c.primary.size())
	c.metrics.SetBytesUsed(c.bytes)
}

// sweep performs the passive expiration sweep: every key the Primary Map
// considers expired right now is removed from the Primary Map and the
// Recency Index, with the byte counter decremented to match. The
// Expiration Index is then drained of anything <= now; those keys are
// discarded because their authoritative removal, if any, already
// happened via the Primary Map check above — the Primary Map's current
// expiry, not the heap record, is authority.
func (c *Cache) sweep(now int64) {
	expiredKeys := c.primary.collectExpired(now)
	for _, key := range expiredKeys {
		if e, ok := c.primary.rawGet(key); ok {
			c.bytes -= estimate(key, e.value)
		}
		c.primary.remove(key)
		c.recency.remove(key)
	}
	if len(expiredKeys) > 0 {
		c.logger.Debug().Int("count", len(expiredKeys)).Msg("passive expiration sweep")
	}
	c.expiry.drainExpired(now)
}

// evictTail removes the current LRU tail from the Recency Index and the
// Primary Map together, decrementing the byte counter, and reports
// whether anything was evicted.
func (c *Cache) evictTail(reason string) bool {
	key, ok := c.recency.evictTail()
	if !ok {
		return false
	}
	if e, ok := c.primary.remove(key); ok {
		c.bytes -= estimate(key, e.value)
	}
	if c.metrics != nil {
		c.metrics.IncEviction(reason)
	}
	c.logger.Debug().Str("key", key).Str("reason", reason).Msg("evicted")
	return true
}

// Set stores value under key. A non-positive ttlSeconds means no TTL.
// Set always succeeds; budget overflow is resolved by eviction, never by
// rejecting the write.
func (c *Cache) Set(key, value string, ttlSeconds int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.observe()

	now := c.clock.NowSeconds()
	c.sweep(now)

	// An overwritten key leaves both structures before budgets are
	// enforced, so the eviction loop can neither evict it (and subtract
	// its old size a second time) nor evict another key to make room for it.
	if old, existed := c.primary.remove(key); existed {
		c.bytes -= estimate(key, old.value)
		c.recency.remove(key)
	}
	c.bytes += estimate(key, value)

	for (c.bytes > c.maxMemory || c.recency.isFull()) && c.recency.size() > 0 {
		reason := "capacity"
		if c.bytes > c.maxMemory {
			reason = "memory"
		}
		if !c.evictTail(reason) {
			break
		}
	}

	var newExpiry int64 = noExpiry
	if ttlSeconds > 0 {
		newExpiry = now + int64(ttlSeconds)
		c.expiry.add(key, newExpiry)
	}

	c.primary.insert(key, value, newExpiry)

	if evictedKey, evicted := c.recency.touch(key); evicted {
		if e, ok := c.primary.remove(evictedKey); ok {
			c.bytes -= estimate(evictedKey, e.value)
		}
		if c.metrics != nil {
			c.metrics.IncEviction("capacity")
		}
		c.logger.Debug().Str("key", evictedKey).Str("reason", "capacity").Msg("evicted")
	}

	return true
}

// Get returns the value for key, iff present and not expired. A
// successful Get promotes key to most-recently-used.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.observe()

	now := c.clock.NowSeconds()
	c.sweep(now)

	value, ok := c.primary.get(key, now)
	if !ok {
		if c.metrics != nil {
			c.metrics.IncMiss()
		}
		return "", false
	}

	c.recency.touch(key)
	if c.metrics != nil {
		c.metrics.IncHit()
	}
	return value, true
}

// Del removes key unconditionally and reports whether it was present.
func (c *Cache) Del(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.observe()

	c.sweep(c.clock.NowSeconds())

	e, ok := c.primary.remove(key)
	if !ok {
		return false
	}
	c.bytes -= estimate(key, e.value)
	c.recency.remove(key)
	return true
}

// Exists reports whether key is present and not expired, without
// promoting its recency.
func (c *Cache) Exists(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.observe()

	now := c.clock.NowSeconds()
	c.sweep(now)
	return c.primary.exists(key, now)
}

// Expire sets a new TTL (in whole seconds from now) on an existing,
// non-expired key. seconds must be positive; an absent or already-expired
// key is reported as failure, matching the "absent" failure shape the
// rest of the API uses.
func (c *Cache) Expire(key string, seconds int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.observe()

	now := c.clock.NowSeconds()
	c.sweep(now)

	if seconds <= 0 {
		return false
	}

	if !c.primary.exists(key, now) {
		return false
	}

	newExpiry := now + int64(seconds)
	c.expiry.add(key, newExpiry)
	return c.primary.updateExpiry(key, newExpiry, now)
}

// Flush clears all three substructures and resets the byte counter to
// zero. The operation counter is incremented but start time is not
// reset, so OpsPerSecond reflects cumulative throughput across flushes.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.observe()

	keysCleared := c.primary.size()
	c.primary.clear()
	c.recency.clear()
	c.expiry.clear()
	c.bytes = 0
	c.logger.Info().Int("keys_cleared", keysCleared).Msg("flush")
}

// KeyCount returns the current number of retained keys.
func (c *Cache) KeyCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.primary.size()
}

// MemoryUsage returns the current estimated byte usage.
func (c *Cache) MemoryUsage() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// OpsPerSecond returns total operations served divided by elapsed wall
// time since construction (not since the last flush — see Flush).
func (c *Cache) OpsPerSecond() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	elapsed := c.clock.NowSeconds() - c.startTime
	if elapsed <= 0 {
		return 0
	}
	return float64(c.opsCount) / float64(elapsed)
}
