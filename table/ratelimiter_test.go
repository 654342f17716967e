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

func TestRateLimiterAdmitsUpToLimit(t *testing.T) {
	r := table.NewRateLimiter(time.Second, 2)
	now := time.Unix(0, 0)

	assert.True(t, r.Admit(now))
	assert.True(t, r.Admit(now))
	assert.False(t, r.Admit(now))
}

func TestRateLimiterResetsAfterWindowElapses(t *testing.T) {
	r := table.NewRateLimiter(time.Second, 1)
	now := time.Unix(0, 0)

	assert.True(t, r.Admit(now))
	assert.False(t, r.Admit(now.Add(500*time.Millisecond)))
	assert.True(t, r.Admit(now.Add(1100*time.Millisecond)))
}
