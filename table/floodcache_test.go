/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package table_test

import (
	"testing"
	"time"

	"github.com/named-data/optoflood/table"
	"github.com/stretchr/testify/assert"
)

func TestFloodIdCacheSeenAndRemember(t *testing.T) {
	c := table.NewFloodIdCache(time.Second, 100)
	now := time.Unix(0, 0)

	assert.False(t, c.Seen(1, now))
	c.Remember(1, now)
	assert.True(t, c.Seen(1, now))
}

func TestFloodIdCacheEntryExpiresAfterTTL(t *testing.T) {
	c := table.NewFloodIdCache(time.Second, 100)
	now := time.Unix(0, 0)
	c.Remember(1, now)

	assert.False(t, c.Seen(1, now.Add(2*time.Second)))
}

func TestFloodIdCacheSweepRemovesExpired(t *testing.T) {
	c := table.NewFloodIdCache(time.Second, 100)
	now := time.Unix(0, 0)
	c.Remember(1, now)
	c.Remember(2, now)

	removed := c.Sweep(now.Add(2 * time.Second))
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, c.Size())
}

func TestFloodIdCacheRememberAgainRefreshesWithoutDoubleCounting(t *testing.T) {
	c := table.NewFloodIdCache(time.Second, 100)
	now := time.Unix(0, 0)
	c.Remember(1, now)
	c.Remember(1, now.Add(500*time.Millisecond))

	assert.Equal(t, 1, c.Size())
	assert.True(t, c.Seen(1, now.Add(1200*time.Millisecond)))

	removed := c.Sweep(now.Add(2 * time.Second))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, c.Size())
}

func TestFloodIdCacheEvictsOldestWhenOverCapacity(t *testing.T) {
	c := table.NewFloodIdCache(time.Hour, 2)
	now := time.Unix(0, 0)

	c.Remember(1, now)
	c.Remember(2, now.Add(time.Millisecond))
	c.Remember(3, now.Add(2*time.Millisecond))

	assert.Equal(t, 2, c.Size())
	assert.False(t, c.Seen(1, now.Add(2*time.Millisecond)))
	assert.True(t, c.Seen(3, now.Add(2*time.Millisecond)))
}
