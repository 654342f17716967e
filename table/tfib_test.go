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

	"github.com/named-data/optoflood/face"
	"github.com/named-data/optoflood/ndn"
	"github.com/named-data/optoflood/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTfibInsertAndLookup(t *testing.T) {
	tf := table.NewTfib(time.Second)
	now := time.Unix(0, 0)
	name := ndn.NameFromString("/a/b/c")

	tf.Insert(name, face.ID(1), 1, 100, now)

	e, ok := tf.Lookup(ndn.NameFromString("/a/b/c/d"), now)
	require.True(t, ok)
	assert.Equal(t, face.ID(1), e.Face)
	assert.True(t, name.Equals(e.Prefix))
}

func TestTfibLookupSkipsExpiredAndFallsBackToShorterPrefix(t *testing.T) {
	tf := table.NewTfib(time.Second)
	now := time.Unix(0, 0)

	tf.Insert(ndn.NameFromString("/a"), face.ID(9), 1, 1, now)
	tf.Insert(ndn.NameFromString("/a/b"), face.ID(2), 1, 1, now)

	// /a/b expires, /a does not.
	later := now.Add(2 * time.Second)
	tf.Insert(ndn.NameFromString("/a"), face.ID(9), 1, 1, later.Add(-500*time.Millisecond))

	e, ok := tf.Lookup(ndn.NameFromString("/a/b/c"), later)
	require.True(t, ok)
	assert.Equal(t, face.ID(9), e.Face)
}

func TestTfibInsertReplacesOnHigherSeq(t *testing.T) {
	tf := table.NewTfib(time.Second)
	now := time.Unix(0, 0)
	name := ndn.NameFromString("/p")

	var inserted []face.ID
	tf.OnAfterInsert(func(e *table.TfibEntry) { inserted = append(inserted, e.Face) })

	tf.Insert(name, face.ID(1), 1, 10, now)
	tf.Insert(name, face.ID(2), 2, 10, now)

	e, ok := tf.FindExactMatch(name, now)
	require.True(t, ok)
	assert.Equal(t, face.ID(2), e.Face)
	assert.Equal(t, []face.ID{1, 2}, inserted)
}

func TestTfibInsertReplacesOnDifferentFloodID(t *testing.T) {
	tf := table.NewTfib(time.Second)
	now := time.Unix(0, 0)
	name := ndn.NameFromString("/p")

	tf.Insert(name, face.ID(1), 5, 10, now)
	tf.Insert(name, face.ID(2), 5, 11, now)

	e, ok := tf.FindExactMatch(name, now)
	require.True(t, ok)
	assert.Equal(t, face.ID(2), e.Face)
}

func TestTfibInsertRefreshesWithoutReplaceOnLowerSeqAndSameFloodID(t *testing.T) {
	tf := table.NewTfib(time.Second)
	now := time.Unix(0, 0)
	name := ndn.NameFromString("/p")

	var inserted int
	tf.OnAfterInsert(func(*table.TfibEntry) { inserted++ })

	tf.Insert(name, face.ID(1), 5, 10, now)
	tf.Insert(name, face.ID(9), 3, 10, now.Add(100*time.Millisecond))

	e, ok := tf.FindExactMatch(name, now)
	require.True(t, ok)
	assert.Equal(t, face.ID(1), e.Face, "refresh must not change the face")
	assert.Equal(t, 1, inserted)
}

func TestTfibSweepRemovesExpiredAndFiresBeforeRemove(t *testing.T) {
	tf := table.NewTfib(time.Second)
	now := time.Unix(0, 0)
	name := ndn.NameFromString("/p")
	tf.Insert(name, face.ID(1), 1, 1, now)

	var removed []ndn.Name
	tf.OnBeforeRemove(func(e *table.TfibEntry) { removed = append(removed, e.Prefix) })

	count := tf.Sweep(now.Add(2 * time.Second))
	assert.Equal(t, 1, count)
	require.Len(t, removed, 1)
	assert.True(t, name.Equals(removed[0]))
	assert.Equal(t, 0, tf.Size())
}

func TestTfibOnFaceDownRemovesOnlyThatFacesEntries(t *testing.T) {
	tf := table.NewTfib(time.Second)
	now := time.Unix(0, 0)
	tf.Insert(ndn.NameFromString("/a"), face.ID(1), 1, 1, now)
	tf.Insert(ndn.NameFromString("/b"), face.ID(2), 1, 1, now)

	tf.OnFaceDown(face.ID(1))

	assert.Equal(t, 1, tf.Size())
	_, ok := tf.FindExactMatch(ndn.NameFromString("/b"), now)
	assert.True(t, ok)
}
