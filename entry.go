package tempuscache

// noExpiry is the sentinel expiry value meaning "never expires". Real
// expiries are computed as now() + ttlSeconds against a Unix-seconds
// clock, which is always strictly positive on any reachable NowSeconds
// implementation, so 0 never collides with a genuine expiry.
const noExpiry int64 = 0

// entry is the value side of the Primary Map: a stored value plus its
// absolute expiry (noExpiry meaning no TTL).
type entry struct {
	value  string
	expiry int64
}

// hasExpiry reports whether e carries a TTL at all.
func (e entry) hasExpiry() bool {
	return e.expiry != noExpiry
}

// expired reports whether e is expired at the given time. The rule is
// strict: expired iff now > expiry, so a key whose expiry equals now
// remains visible for one final second (spec open question, resolved
// here and used by every Primary Map check of an entry's expiry).
func (e entry) expired(now int64) bool {
	return e.hasExpiry() && now > e.expiry
}

// entryOverhead is the fixed, documented per-entry bookkeeping cost used
// by estimate. It stands in for the Primary Map's map-bucket overhead,
// the Recency Index's arena node (two int32 links plus a string header),
// and the Expiration Index's heap slot. The exact figure is not
// load-bearing — what matters is that it is constant and portable, unlike
// the original C++ implementation's sizeof(HashNode)+sizeof(LRUNode),
// which varies by platform and struct padding.
const entryOverhead = 56

// estimate is the deterministic, pure size approximation used only for
// budgeting. It must stay identical across calls for the same inputs and
// consistent with every decrement site, or the byte counter drifts.
func estimate(key, value string) int64 {
	return int64(len(key)) + int64(len(value)) + entryOverhead
}
