/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"github.com/named-data/optoflood/core"
	"github.com/named-data/optoflood/ndn"

	"github.com/named-data/optoflood/face"
)

// hostStub stands in for the real host forwarder's Sender, PIT and FIB
// (§1 "deliberately out of scope"). It only logs what it would have done,
// so running `optoflood` is a demonstration harness for the core wiring, not
// a working NDN forwarder on its own -- the real FIB/PIT/packet I/O are
// supplied by whatever forwarder embeds this package.
type hostStub struct{}

func (hostStub) SendData(f face.ID, pkt []byte, hopLimit uint8) error {
	core.LogTrace("HostStub", "would send Data copy to face with new hop limit")
	_ = f
	_ = pkt
	_ = hopLimit
	return nil
}

func (hostStub) SendInterest(f face.ID, pkt []byte, hopLimit uint8) error {
	core.LogTrace("HostStub", "would send Interest copy to face with new hop limit")
	_ = f
	_ = pkt
	_ = hopLimit
	return nil
}

func (hostStub) InsertOrUpdateInRecord(name ndn.Name, in face.ID) {
	core.LogTrace("HostStub", "would record in-record for "+name.String())
}

func (hostStub) FindLongestPrefixMatch(name ndn.Name) (face.ID, bool) {
	// No general FIB in the stub: every name is a miss, so the hook
	// always falls through to the TFIB/flood path when one applies.
	return 0, false
}
