/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"time"

	"github.com/named-data/optoflood/utils/comparison"
)

// Defaults for every OptoFlood configuration knob (§6).
const (
	DefaultHopLimitDefault = 3
	DefaultLifetimeDefault = 1 * time.Second
	CleanupIntervalDefault = 100 * time.Millisecond
	FloodIDTTLDefault      = 5 * time.Second
	MaxFloodIDsDefault     = 4096
	RateLimitDefault       = 100
	RateWindowDefault      = 1 * time.Second
)

// OptoFloodConfig holds the resolved value of every §6 knob.
type OptoFloodConfig struct {
	DefaultHopLimit uint8
	DefaultLifetime time.Duration
	CleanupInterval time.Duration
	FloodIDTTL      time.Duration
	MaxFloodIDs     int
	RateLimit       uint32
	RateWindow      time.Duration
}

// LoadOptoFloodConfig resolves every §6 knob from the config tree loaded
// by LoadConfig, falling back to the spec's defaults. Integer knobs are
// clamped from below: the hop limit to 0, max_flood_ids and rate_limit to
// 1. A negative duration falls back to its default; a zero duration is
// used as given.
func LoadOptoFloodConfig() OptoFloodConfig {
	return OptoFloodConfig{
		DefaultHopLimit: uint8(comparison.Max(0, GetConfigIntDefault("optoflood.default_hop_limit", DefaultHopLimitDefault))),
		DefaultLifetime: GetConfigDurationMsDefault("optoflood.default_lifetime_ms", DefaultLifetimeDefault),
		CleanupInterval: GetConfigDurationMsDefault("optoflood.cleanup_interval_ms", CleanupIntervalDefault),
		FloodIDTTL:      GetConfigDurationMsDefault("optoflood.flood_id_ttl_ms", FloodIDTTLDefault),
		MaxFloodIDs:     comparison.Max(1, GetConfigIntDefault("optoflood.max_flood_ids", MaxFloodIDsDefault)),
		RateLimit:       uint32(comparison.Max(1, GetConfigIntDefault("optoflood.rate_limit", RateLimitDefault))),
		RateWindow:      GetConfigDurationMsDefault("optoflood.rate_window_ms", RateWindowDefault),
	}
}
