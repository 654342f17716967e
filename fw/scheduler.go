/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import "time"

// TimerScheduler implements dispatch.Scheduler on top of time.AfterFunc,
// for use by the cmd/optoflood entrypoint when the host forwarder does
// not already provide its own single-goroutine timer.
//
// §5 requires every C2-C5 mutation to happen on one reactor goroutine, but
// a bare time.AfterFunc callback runs on a goroutine of its own per fire,
// racing whatever goroutine calls OnIncomingData/OnInterestCSMiss.
// TimerScheduler instead hands a fired task to Run's channel, so the one
// goroutine that calls Run is the only goroutine that ever touches the
// TFIB or dedup cache -- the same serialization
// _examples/named-data-YaNFD/fw/thread.go gets from pumping
// pendingInterests/pendingDatas off channels in a single select loop.
type TimerScheduler struct {
	tasks chan func()
}

// NewTimerScheduler creates a TimerScheduler whose fired tasks queue up to
// queueDepth deep awaiting Run.
func NewTimerScheduler(queueDepth int) *TimerScheduler {
	return &TimerScheduler{tasks: make(chan func(), queueDepth)}
}

// Schedule starts a timer that, after delay, hands task to Run rather than
// executing it on the timer's own goroutine. The *time.Timer is the
// opaque handle.
func (s *TimerScheduler) Schedule(delay time.Duration, task func()) any {
	return time.AfterFunc(delay, func() {
		s.tasks <- task
	})
}

// Cancel stops the timer produced by a prior Schedule call, if handle is
// one. A task already handed off to Run's queue still runs once.
func (s *TimerScheduler) Cancel(handle any) {
	if t, ok := handle.(*time.Timer); ok {
		t.Stop()
	}
}

// Run drains fired tasks one at a time until stop is closed. The caller
// must invoke Run from the same goroutine that drives the Hook's
// packet-handling methods, so a sweep never runs concurrently with an
// OnIncomingData/OnInterestCSMiss call.
func (s *TimerScheduler) Run(stop <-chan struct{}) {
	for {
		select {
		case task := <-s.tasks:
			task()
		case <-stop:
			return
		}
	}
}
