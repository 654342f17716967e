/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package table holds the three OptoFlood tables: the TFIB, the flood-id
// dedup cache, and the rate limiter (§4.2-§4.4).
package table

import (
	"time"

	"github.com/named-data/optoflood/face"
	"github.com/named-data/optoflood/ndn"
)

// TfibEntry is one reverse-path route learned from a mobility-flagged
// Data (§3, §4.2).
type TfibEntry struct {
	Prefix     ndn.Name
	Face       face.ID
	NewFaceSeq uint32
	FloodID    uint64
	Expiry     time.Time
}

func (e *TfibEntry) isExpired(now time.Time) bool {
	return !now.Before(e.Expiry)
}

func (e *TfibEntry) refresh(lifetime time.Duration, now time.Time) {
	e.Expiry = now.Add(lifetime)
}

// InsertListener is notified after an entry is inserted or replaced.
type InsertListener func(e *TfibEntry)

// RemoveListener is notified before an entry is removed, whether by
// expiry, explicit erase, or the owning face going down.
type RemoveListener func(e *TfibEntry)

// Tfib is the Temporary FIB (§4.2): short-lived, per-prefix reverse
// routes toward a producer that has just moved. Entries are keyed by
// their exact prefix; lookup does its own longest-prefix-match by
// stripping components one at a time, mirroring the original's
// findLongestPrefixMatch.
type Tfib struct {
	lifetime time.Duration
	entries  map[string]*TfibEntry

	afterInsert  []InsertListener
	beforeRemove []RemoveListener
}

// NewTfib creates an empty TFIB with the given entry lifetime (§6
// default_lifetime_ms, default DefaultLifetimeDefault).
func NewTfib(lifetime time.Duration) *Tfib {
	return &Tfib{
		lifetime: lifetime,
		entries:  make(map[string]*TfibEntry),
	}
}

// OnAfterInsert registers a listener fired after every insert or replace.
func (t *Tfib) OnAfterInsert(fn InsertListener) {
	t.afterInsert = append(t.afterInsert, fn)
}

// OnBeforeRemove registers a listener fired before every removal.
func (t *Tfib) OnBeforeRemove(fn RemoveListener) {
	t.beforeRemove = append(t.beforeRemove, fn)
}

// Insert adds or refreshes a route for prefix (§4.2 insert semantics): a
// higher NewFaceSeq, or any change of FloodID, replaces the entry
// (face, lifetime, and sequence numbers all reset); otherwise the
// existing entry is only refreshed, extending its lifetime without
// firing afterInsert.
func (t *Tfib) Insert(prefix ndn.Name, f face.ID, seq uint32, floodID uint64, now time.Time) {
	key := prefix.Key()
	existing, ok := t.entries[key]
	if ok && seq <= existing.NewFaceSeq && floodID == existing.FloodID {
		existing.refresh(t.lifetime, now)
		return
	}

	e := &TfibEntry{
		Prefix:     prefix,
		Face:       f,
		NewFaceSeq: seq,
		FloodID:    floodID,
	}
	e.refresh(t.lifetime, now)
	t.entries[key] = e

	for _, fn := range t.afterInsert {
		fn(e)
	}
}

// Lookup performs longest-prefix-match against name, skipping expired
// entries and continuing to shorter prefixes rather than stopping at the
// first (possibly stale) match (§4.2, §9 open question 3).
func (t *Tfib) Lookup(name ndn.Name, now time.Time) (*TfibEntry, bool) {
	for k := name.Size(); k >= 0; k-- {
		e, ok := t.entries[name.Prefix(name.Size()-k).Key()]
		if !ok {
			continue
		}
		if e.isExpired(now) {
			continue
		}
		return e, true
	}
	return nil, false
}

// FindExactMatch returns the live entry for exactly prefix, if any.
func (t *Tfib) FindExactMatch(prefix ndn.Name, now time.Time) (*TfibEntry, bool) {
	e, ok := t.entries[prefix.Key()]
	if !ok || e.isExpired(now) {
		return nil, false
	}
	return e, true
}

// Erase removes the entry for exactly prefix, firing beforeRemove before
// the entry disappears, matching the original's erase() ordering.
func (t *Tfib) Erase(prefix ndn.Name) {
	key := prefix.Key()
	e, ok := t.entries[key]
	if !ok {
		return
	}
	for _, fn := range t.beforeRemove {
		fn(e)
	}
	delete(t.entries, key)
}

// Sweep removes every entry expired as of now, firing beforeRemove for
// each, and returns the count removed. Driven periodically by the forwarder
// hook's ScopedTicker (§5, §6 cleanup_interval_ms).
func (t *Tfib) Sweep(now time.Time) int {
	var toRemove []*TfibEntry
	for _, e := range t.entries {
		if e.isExpired(now) {
			toRemove = append(toRemove, e)
		}
	}
	for _, e := range toRemove {
		t.Erase(e.Prefix)
	}
	return len(toRemove)
}

// OnFaceDown removes every entry routed through f, e.g. when the host
// forwarder reports the face has gone down (§4.2 edge case).
func (t *Tfib) OnFaceDown(f face.ID) {
	var toRemove []*TfibEntry
	for _, e := range t.entries {
		if e.Face == f {
			toRemove = append(toRemove, e)
		}
	}
	for _, e := range toRemove {
		t.Erase(e.Prefix)
	}
}

// Size returns the number of stored entries, including expired ones the
// sweep has not yet removed, used as the TfibEntries gauge (§6).
func (t *Tfib) Size() int {
	return len(t.entries)
}

// Clear drops every entry without firing beforeRemove, for use only on
// shutdown.
func (t *Tfib) Clear() {
	t.entries = make(map[string]*TfibEntry)
}
