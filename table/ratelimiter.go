/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table

import "time"

// RateLimiter is a fixed-window flood-admission limiter (§4.4): at most
// limit floods may be admitted per window; the window resets, rather
// than slides, once it has elapsed, matching the original's
// m_floodRateWindowStart reset behavior.
type RateLimiter struct {
	window time.Duration
	limit  uint32

	windowStart time.Time
	count       uint32
}

// NewRateLimiter creates a limiter admitting at most limit calls per
// window (§6 rate_limit, rate_window_ms).
func NewRateLimiter(window time.Duration, limit uint32) *RateLimiter {
	return &RateLimiter{window: window, limit: limit}
}

// Admit reports whether one more flood may be started at now, resetting
// the window if it has elapsed and counting the admission if allowed.
func (r *RateLimiter) Admit(now time.Time) bool {
	if r.windowStart.IsZero() || now.Sub(r.windowStart) > r.window {
		r.windowStart = now
		r.count = 0
	}
	if r.count >= r.limit {
		return false
	}
	r.count++
	return true
}
