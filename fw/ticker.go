/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import (
	"sync"
	"time"

	"github.com/named-data/optoflood/dispatch"
)

// ScopedTicker self-reschedules task on sched every interval until
// Stop is called. The TFIB sweep and the FloodIdCache sweep each run on
// their own ScopedTicker (§5).
type ScopedTicker struct {
	sched    dispatch.Scheduler
	interval time.Duration
	task     func()

	mu      sync.Mutex
	handle  any
	stopped bool
}

// StartScopedTicker creates a ticker and schedules its first tick.
func StartScopedTicker(sched dispatch.Scheduler, interval time.Duration, task func()) *ScopedTicker {
	t := &ScopedTicker{sched: sched, interval: interval, task: task}
	t.scheduleNext()
	return t
}

func (t *ScopedTicker) scheduleNext() {
	t.handle = t.sched.Schedule(t.interval, t.fire)
}

func (t *ScopedTicker) fire() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	t.task()

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.stopped {
		t.scheduleNext()
	}
}

// Stop cancels the pending tick and prevents any further rescheduling.
// Idempotent.
func (t *ScopedTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	t.sched.Cancel(t.handle)
}
