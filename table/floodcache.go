/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import (
	"time"

	"github.com/named-data/optoflood/pqueue"
)

// maxPurgePerSweep bounds how many stale entries purgeExpired will walk
// in a single call, the same way the dead nonce list's expiry scan caps
// its per-tick work.
const maxPurgePerSweep = 100

// FloodIdCache is the flood dedup cache (§4.3): a bounded, time-windowed
// set of flood ids already handled, so a second Data or Interest copy of
// the same flood is dropped rather than re-flooded.
//
// The backing priority queue has no external index tracking cheap enough
// to survive concurrent heap mutations, so Remember always pushes a new
// entry rather than updating one in place; stale duplicates are
// recognized and discarded lazily at pop time by comparing against the
// live map.
type FloodIdCache struct {
	ttl     time.Duration
	maxSize int

	seenAt map[uint64]time.Time
	expiry pqueue.Queue[uint64, int64]
}

// NewFloodIdCache creates an empty cache with the given entry TTL and
// maximum size (§6 flood_id_ttl_ms, max_flood_ids).
func NewFloodIdCache(ttl time.Duration, maxSize int) *FloodIdCache {
	return &FloodIdCache{
		ttl:     ttl,
		maxSize: maxSize,
		seenAt:  make(map[uint64]time.Time),
		expiry:  pqueue.New[uint64, int64](),
	}
}

// Seen reports whether id is already in the cache and not expired.
func (c *FloodIdCache) Seen(id uint64, now time.Time) bool {
	at, ok := c.seenAt[id]
	if !ok {
		return false
	}
	return now.Sub(at) < c.ttl
}

// Remember records id as seen at now, evicting the oldest entry first if
// the cache is at capacity and id is genuinely new (§4.3 bounded size).
func (c *FloodIdCache) Remember(id uint64, now time.Time) {
	_, existed := c.seenAt[id]
	c.seenAt[id] = now
	c.expiry.Push(id, now.UnixNano())

	if !existed && len(c.seenAt) > c.maxSize {
		c.evictOldest()
	}
}

// evictOldest pops the queue until it removes one entry still live in
// the map, discarding any stale duplicates it finds along the way.
func (c *FloodIdCache) evictOldest() {
	for c.expiry.Len() > 0 {
		id := c.expiry.Peek()
		ts := c.expiry.PeekPriority()
		c.expiry.Pop()

		at, ok := c.seenAt[id]
		if !ok || at.UnixNano() != ts {
			continue // stale duplicate from an earlier Remember
		}
		delete(c.seenAt, id)
		return
	}
}

// purgeExpired pops up to maxPurgePerSweep entries whose timestamp has
// aged past ttl, stopping early once the queue front is still fresh, and
// returns the count actually removed from the map.
func (c *FloodIdCache) purgeExpired(now time.Time) int {
	removed := 0
	for removed < maxPurgePerSweep && c.expiry.Len() > 0 {
		id := c.expiry.Peek()
		ts := c.expiry.PeekPriority()

		at, ok := c.seenAt[id]
		if !ok || at.UnixNano() != ts {
			c.expiry.Pop() // stale duplicate, discard and keep scanning
			continue
		}
		if now.Sub(at) < c.ttl {
			return removed // queue front is fresh; nothing older remains
		}
		c.expiry.Pop()
		delete(c.seenAt, id)
		removed++
	}
	return removed
}

// Sweep purges every expired entry, looping purgeExpired to exhaustion.
// Driven periodically by the forwarder hook's ScopedTicker (§5).
func (c *FloodIdCache) Sweep(now time.Time) int {
	total := 0
	for {
		n := c.purgeExpired(now)
		total += n
		if n < maxPurgePerSweep {
			return total
		}
	}
}

// Size returns the number of live entries.
func (c *FloodIdCache) Size() int {
	return len(c.seenAt)
}
