/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package fw wires the OptoFlood tables into the host forwarder: the
// flood controller (§4.5), the forwarder hook (§4.6), and the
// supporting scheduler glue (§5).
package fw

import "sync/atomic"

// Counters holds every external counter in §6, safe for concurrent read
// from a management command while mutated only from the single reactor
// goroutine that owns the FloodController.
type Counters struct {
	FloodDataIngested      atomic.Uint64
	FloodDuplicatesDropped atomic.Uint64
	FloodCopiesEmitted     atomic.Uint64
	RateLimitDrops         atomic.Uint64
	TfibExpires            atomic.Uint64
}

// CountersSnapshot is a point-in-time read of Counters plus the live
// TfibEntries gauge, which is not itself a counter (§6).
type CountersSnapshot struct {
	FloodDataIngested      uint64
	FloodDuplicatesDropped uint64
	FloodCopiesEmitted     uint64
	RateLimitDrops         uint64
	TfibExpires            uint64
	TfibEntries            int
}

// Snapshot reads every field of c plus the current TFIB size.
func (c *Counters) Snapshot(tfibEntries int) CountersSnapshot {
	return CountersSnapshot{
		FloodDataIngested:      c.FloodDataIngested.Load(),
		FloodDuplicatesDropped: c.FloodDuplicatesDropped.Load(),
		FloodCopiesEmitted:     c.FloodCopiesEmitted.Load(),
		RateLimitDrops:         c.RateLimitDrops.Load(),
		TfibExpires:            c.TfibExpires.Load(),
		TfibEntries:            tfibEntries,
	}
}
