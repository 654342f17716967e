/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw_test

import (
	"testing"
	"time"

	"github.com/named-data/optoflood/face"
	"github.com/named-data/optoflood/fw"
	"github.com/named-data/optoflood/ndn"
	"github.com/named-data/optoflood/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFIB struct {
	hits map[string]face.ID
}

func (f *fakeFIB) FindLongestPrefixMatch(name ndn.Name) (face.ID, bool) {
	id, ok := f.hits[name.String()]
	return id, ok
}

type fakeScheduler struct {
	tasks []func()
}

func (s *fakeScheduler) Schedule(delay time.Duration, task func()) any {
	s.tasks = append(s.tasks, task)
	return len(s.tasks) - 1
}

func (s *fakeScheduler) Cancel(handle any) {}

func (s *fakeScheduler) runAll() {
	pending := s.tasks
	s.tasks = nil
	for _, task := range pending {
		task()
	}
}

// S7: a TFIB hit for a shorter prefix forwards an Interest bypassing the
// FIB, and records a PIT in-record for the ingress face.
func TestOnInterestCSMissPrefersTfibOverFib(t *testing.T) {
	faces := threeFaceTable()
	sender := &fakeSender{}
	fib := &fakeFIB{hits: map[string]face.ID{}}
	pit := &fakePIT{}
	sched := &fakeScheduler{}

	hook := fw.NewHook(testConfig(), faces, sender, fib, pit, sched, nil)
	now := time.Unix(0, 0)
	hook.Now = func() time.Time { return now }

	hook.Controller.Tfib().Insert(ndn.NameFromString("/a/b"), face.ID(1), 1, 1, now)

	pkt := fw.FloodInterest{Name: ndn.NameFromString("/a/b/c/d"), Wire: []byte("interest")}
	handled := hook.OnInterestCSMiss(pkt, face.ID(2))

	assert.True(t, handled)
	require.Len(t, pit.inRecords, 1)
	assert.Equal(t, face.ID(2), pit.inRecords[0].Face)
	require.Len(t, sender.interestCopies, 1)
	assert.Equal(t, face.ID(1), sender.interestCopies[0].Face)
}

func TestOnInterestCSMissFallsThroughToFibWhenTfibMisses(t *testing.T) {
	faces := threeFaceTable()
	sender := &fakeSender{}
	fib := &fakeFIB{hits: map[string]face.ID{"/x/y": face.ID(3)}}
	pit := &fakePIT{}
	sched := &fakeScheduler{}

	hook := fw.NewHook(testConfig(), faces, sender, fib, pit, sched, nil)

	pkt := fw.FloodInterest{Name: ndn.NameFromString("/x/y"), Wire: []byte("interest")}
	handled := hook.OnInterestCSMiss(pkt, face.ID(2))

	assert.False(t, handled, "a normal FIB hit is left to the host strategy")
}

func TestOnInterestCSMissDispatchesFloodOnFibMiss(t *testing.T) {
	faces := threeFaceTable()
	sender := &fakeSender{}
	fib := &fakeFIB{hits: map[string]face.ID{}}
	pit := &fakePIT{}
	sched := &fakeScheduler{}

	hook := fw.NewHook(testConfig(), faces, sender, fib, pit, sched, nil)

	pkt := fw.FloodInterest{
		Name:       ndn.NameFromString("/producer/content"),
		ParamBytes: wire.EncodeFloodParams(3, nil),
		Wire:       []byte("interest"),
	}
	handled := hook.OnInterestCSMiss(pkt, face.ID(1))

	assert.True(t, handled)
	require.Len(t, sender.interestCopies, 2)
}

func TestOnInterestCSMissWithoutFloodParamsLeavesToStrategy(t *testing.T) {
	faces := threeFaceTable()
	sender := &fakeSender{}
	fib := &fakeFIB{hits: map[string]face.ID{}}
	pit := &fakePIT{}
	sched := &fakeScheduler{}

	hook := fw.NewHook(testConfig(), faces, sender, fib, pit, sched, nil)

	pkt := fw.FloodInterest{Name: ndn.NameFromString("/producer/content"), Wire: []byte("interest")}
	handled := hook.OnInterestCSMiss(pkt, face.ID(1))

	assert.False(t, handled)
	assert.Empty(t, sender.interestCopies)
}

// §4.6 failure table: a TFIB entry whose face has gone down (or was
// never registered) is skipped and scheduled for erase, not used.
func TestOnInterestCSMissSkipsTfibEntryWithDownFace(t *testing.T) {
	faces := threeFaceTable()
	faces.SetState(face.ID(1), face.Down)
	sender := &fakeSender{}
	fib := &fakeFIB{hits: map[string]face.ID{}}
	pit := &fakePIT{}
	sched := &fakeScheduler{}

	hook := fw.NewHook(testConfig(), faces, sender, fib, pit, sched, nil)
	now := time.Unix(0, 0)
	hook.Now = func() time.Time { return now }
	hook.Controller.Tfib().Insert(ndn.NameFromString("/a"), face.ID(1), 1, 1, now)

	pkt := fw.FloodInterest{Name: ndn.NameFromString("/a/b"), Wire: []byte("interest")}
	handled := hook.OnInterestCSMiss(pkt, face.ID(2))

	assert.False(t, handled, "falls through past the stale TFIB entry")
	assert.Empty(t, sender.interestCopies)

	sched.runAll()
	_, ok := hook.Controller.Tfib().FindExactMatch(ndn.NameFromString("/a"), now)
	assert.False(t, ok, "scheduled erase removed the dangling entry")
}

func TestOnIncomingDataIgnoresNonMobilityData(t *testing.T) {
	faces := threeFaceTable()
	sender := &fakeSender{}
	fib := &fakeFIB{}
	pit := &fakePIT{}
	sched := &fakeScheduler{}
	hook := fw.NewHook(testConfig(), faces, sender, fib, pit, sched, nil)

	pkt := fw.MobileData{Name: ndn.NameFromString("/a/b"), Wire: []byte("data")}
	require.NoError(t, hook.OnIncomingData(pkt, face.ID(1)))
	assert.Empty(t, sender.dataCopies)
	assert.Equal(t, 0, hook.Controller.Tfib().Size())
}

func TestOnIncomingDataDispatchesMobilityFlaggedData(t *testing.T) {
	faces := threeFaceTable()
	sender := &fakeSender{}
	fib := &fakeFIB{}
	pit := &fakePIT{}
	sched := &fakeScheduler{}
	hook := fw.NewHook(testConfig(), faces, sender, fib, pit, sched, nil)

	pkt := fw.MobileData{Name: ndn.NameFromString("/a/b"), MetaBytes: mobilityMeta(5, 1), Wire: []byte("data")}
	require.NoError(t, hook.OnIncomingData(pkt, face.ID(1)))
	assert.Len(t, sender.dataCopies, 2)
	assert.Equal(t, 1, hook.Controller.Tfib().Size())
}

func TestHookStopCancelsTickersAndClearsTfib(t *testing.T) {
	faces := threeFaceTable()
	sender := &fakeSender{}
	fib := &fakeFIB{}
	pit := &fakePIT{}
	sched := &fakeScheduler{}
	cfg := testConfig()
	hook := fw.NewHook(cfg, faces, sender, fib, pit, sched, nil)

	now := time.Unix(0, 0)
	hook.Now = func() time.Time { return now }
	hook.Controller.Tfib().Insert(ndn.NameFromString("/a"), face.ID(1), 1, 1, now)
	hook.Start(cfg)

	hook.Stop()
	assert.Equal(t, 0, hook.Controller.Tfib().Size())

	sched.runAll()
	assert.Empty(t, sched.tasks, "stopped tickers do not reschedule")
}
