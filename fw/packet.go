/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import "github.com/named-data/optoflood/ndn"

// MobileData is the forwarder hook's view of a mobility-flagged Data
// (§4.5, §6): enough to drive the flood controller without the core ever
// touching Data encoding, signing, or the rest of packet parsing (§1).
type MobileData struct {
	// Name is the Data's full name, including its implicit digest
	// component; OnMobileData strips the last component itself (§4.5
	// step 4, mirroring the original's getPrefix(-1)).
	Name ndn.Name

	// MetaBytes is the encoded OptoFlood metadata TLV block extracted by
	// the host packet layer from this Data (§4.1, §6). The controller
	// only decodes it; it never re-parses the rest of the Data.
	MetaBytes []byte

	// Wire is the unmodified ingress encoding, reused verbatim for every
	// egress copy (§4.1 "egress copies reuse the ingress encoding").
	Wire []byte

	// HopLimit is the packet's current best-effort link-layer HopLimit
	// tag (§6), if the host forwarder attached one. Nil means "absent",
	// in which case DEFAULT_HOP_LIMIT is used (§4.5 step 6).
	HopLimit *uint8
}

// FloodInterest is the forwarder hook's view of a flood-flagged Interest
// on a FIB miss (§4.5 onFloodInterest, §6).
type FloodInterest struct {
	// Name is the Interest's name.
	Name ndn.Name

	// ParamBytes is the encoded flood parameters extracted from the
	// Interest's Application Parameters (§4.1, §6): FloodHopLimit
	// (required) and an optional TraceHint.
	ParamBytes []byte

	// Wire is the unmodified ingress encoding, reused verbatim for every
	// egress copy.
	Wire []byte
}
