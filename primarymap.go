package tempuscache

/*
primaryMap is the authoritative key -> (value, expiry) store.

Go's built-in map already resizes on an internal load-factor trigger and
gives amortized O(1) insert/lookup/delete, which is exactly what a
hash-based mapping with load-factor-driven resize needs to provide.
Laying a second, hand-rolled hash table underneath it, with its own
separate chaining and load factor, would only reimplement what the
runtime already does correctly, so primaryMap is a thin, purpose-named
wrapper instead — see DESIGN.md for the standard-library justification.
*/
type primaryMap struct {
	entries map[string]entry
}

func newPrimaryMap() *primaryMap {
	return &primaryMap{entries: make(map[string]entry)}
}

// insert overwrites value and expiry in place if key is present, or adds
// a new entry otherwise. It never fails for well-formed input.
func (m *primaryMap) insert(key, value string, expiry int64) bool {
	m.entries[key] = entry{value: value, expiry: expiry}
	return true
}

// rawGet returns the stored entry for key regardless of expiry. Internal
// callers use this when they need the old value for byte accounting, or
// when they already know (via a prior sweep) that anything still present
// is live.
func (m *primaryMap) rawGet(key string) (entry, bool) {
	e, ok := m.entries[key]
	return e, ok
}

// get returns the value for key iff it is present and not expired at now.
// It never mutates the map — passive removal of expired entries is the
// Facade's job.
func (m *primaryMap) get(key string, now int64) (string, bool) {
	e, ok := m.entries[key]
	if !ok || e.expired(now) {
		return "", false
	}
	return e.value, true
}

// remove deletes key unconditionally, expired or not, and reports whether
// it was present along with whatever entry was there.
func (m *primaryMap) remove(key string) (entry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return entry{}, false
	}
	delete(m.entries, key)
	return e, true
}

// exists is equivalent to get(key, now) succeeding, without returning the
// value.
func (m *primaryMap) exists(key string, now int64) bool {
	_, ok := m.get(key, now)
	return ok
}

// updateExpiry sets a new expiry for key iff it is present and not
// already expired at now. It returns false without mutation otherwise.
func (m *primaryMap) updateExpiry(key string, expiry, now int64) bool {
	e, ok := m.entries[key]
	if !ok || e.expired(now) {
		return false
	}
	e.expiry = expiry
	m.entries[key] = e
	return true
}

// clear removes every entry.
func (m *primaryMap) clear() {
	m.entries = make(map[string]entry)
}

// size returns the current key count.
func (m *primaryMap) size() int {
	return len(m.entries)
}

// collectExpired enumerates keys whose expiry is set and now > expiry.
func (m *primaryMap) collectExpired(now int64) []string {
	var expired []string
	for key, e := range m.entries {
		if e.expired(now) {
			expired = append(expired, key)
		}
	}
	return expired
}
