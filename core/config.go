/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"
	"time"

	"github.com/pelletier/go-toml"
)

var config *toml.Tree

// LoadConfig loads the OptoFlood configuration from the specified TOML file.
// Absence of a file is not fatal: all knobs have defaults from §6.
func LoadConfig(file string) {
	if file == "" {
		config = emptyConfig()
		return
	}

	tree, err := toml.LoadFile(file)
	if err != nil {
		LogWarn("Config", "Unable to load configuration file "+file+": "+err.Error()+"; using defaults")
		config = emptyConfig()
		return
	}
	config = tree
}

func emptyConfig() *toml.Tree {
	tree, _ := toml.Load("")
	return tree
}

// GetConfigIntDefault returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigIntDefault(key string, def int) int {
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(int64)
	if ok && val >= math.MinInt32 && val <= math.MaxInt32 {
		return int(val)
	}
	return def
}

// GetConfigStringDefault returns the string configuration value at the specified key or the specified default value if it does not exist.
func GetConfigStringDefault(key string, def string) string {
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(string)
	if ok {
		return val
	}
	return def
}

// GetConfigDurationMsDefault returns a millisecond-valued configuration key as a time.Duration,
// falling back to def (already a time.Duration) if absent.
func GetConfigDurationMsDefault(key string, def time.Duration) time.Duration {
	ms := GetConfigIntDefault(key, -1)
	if ms < 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
