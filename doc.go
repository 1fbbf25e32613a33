/*
Package tempuscache implements an in-process, single-node key-value cache
with three coupled admission and retention policies:

  - an LRU bound on the number of retained keys
  - a byte-budget bound on estimated memory usage
  - per-key TTL expiration

The cache answers a fixed vocabulary of operations — Set, Get, Del, Exists,
Expire, Flush — over string keys and string values.

================================================================================
ARCHITECTURAL OVERVIEW
================================================================================

The core is the coordinated state among three auxiliary structures, all
orchestrated by a single Facade (the Cache type):

 1. Primary Map (primarymap.go)
    Authoritative store of key -> (value, expiry). Wraps a native Go map;
    Go's map already grows on a load-factor trigger, so no custom hash
    table is layered on top of it.

 2. Recency Index (recency.go)
    A doubly linked list of keys ordered from most-recent (head) to
    least-recent (tail), addressed through an owning slice arena rather
    than individually heap-allocated nodes, so no node pointer ever
    escapes the structure.

 3. Expiration Index (expiration.go)
    A min-heap of (key, expiry) records ordered by ascending expiry.
    Because a key's expiry can be extended without purging earlier
    records, nothing is removed from the cache on the strength of a
    drained record: the sweep decides what to remove from the Primary
    Map's own expiries and then discards whatever the heap drains — the
    map is authority.

The Cache Facade (cache.go) owns the byte counter and sequences every
public operation across these three structures. For Set: passive
expiration sweep first, then byte accounting and budget enforcement
(evicting from the recency tail), then the mutation, then recency
bookkeeping.

Expiration is purely passive: there is no background goroutine scanning
for expired keys. Set, Get, Del, Exists and Expire begin by sweeping
whatever has already expired, which is sufficient to bound memory growth
without owning a ticker or a goroutine.
*/
package tempuscache
