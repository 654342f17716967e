/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package dispatch holds the minimal interfaces the OptoFlood core needs
// from its host forwarder -- the face sender, the PIT, the FIB and the
// scheduler -- the same way the original dispatch.Face/dispatch.FWThread
// pair let faces and forwarding threads talk to each other without an
// import cycle. The real implementations (packet I/O, the general FIB,
// PIT expiry, an event-loop timer) are out of scope for the core; only
// their call shape is.
package dispatch

import (
	"time"

	"github.com/named-data/optoflood/face"
	"github.com/named-data/optoflood/ndn"
)

// Sender is the host forwarder's outgoing pipeline (§6 "Face table: ...
// send(face, packet)"). The core never owns a socket -- it hands the
// unmodified ingress wire encoding back with the hop limit this hop
// decided on, and the host is responsible for actually writing it out.
type Sender interface {
	SendData(f face.ID, pkt []byte, hopLimit uint8) error
	SendInterest(f face.ID, pkt []byte, hopLimit uint8) error
}

// PIT is the subset of Pending Interest Table operations the forwarder
// hook needs (§6, §4.6): recording an in-record before forwarding, either
// via a TFIB hit or a flood-triggered emission.
type PIT interface {
	InsertOrUpdateInRecord(name ndn.Name, in face.ID)
}

// FIB is the longest-prefix-match the forwarder hook falls back to once
// the TFIB has been consulted (§4.6, §9 open question 3: TFIB-preferred).
type FIB interface {
	FindLongestPrefixMatch(name ndn.Name) (nextHop face.ID, ok bool)
}

// Scheduler abstracts the host forwarder's event-loop timer (§6) so the
// core's two sweep tasks (§5) never reach for a concrete timer type.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) (handle any)
	Cancel(handle any)
}
