/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import (
	"time"

	"github.com/named-data/optoflood/core"
	"github.com/named-data/optoflood/dispatch"
	"github.com/named-data/optoflood/face"
	"github.com/named-data/optoflood/wire"
)

// Hook is the Forwarder Hook (§4.6): it inserts OptoFlood into the host
// forwarder's Data-ingress and CS-miss pipelines, owns the Controller and
// the two periodic sweep tasks (§5), and decides TFIB-vs-FIB precedence
// on a CS miss (§9 open question 3, TFIB-preferred).
type Hook struct {
	Controller *Controller

	fib   dispatch.FIB
	pit   dispatch.PIT
	sched dispatch.Scheduler

	tfibSweep  *ScopedTicker
	dedupSweep *ScopedTicker

	// Now is the hook's clock, overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// NewHook wires a Controller over faces/sender/guided and attaches it to
// the host forwarder's FIB, PIT and scheduler (§6 consumed collaborators).
// Call Start to begin the two sweep timers.
func NewHook(cfg core.OptoFloodConfig, faces *face.Table, sender dispatch.Sender, fib dispatch.FIB, pit dispatch.PIT, sched dispatch.Scheduler, guided GuidedFloodingFilter) *Hook {
	return &Hook{
		Controller: NewController(cfg, faces, sender, guided),
		fib:        fib,
		pit:        pit,
		sched:      sched,
		Now:        time.Now,
	}
}

// Start begins the TFIB sweep (§6 cleanup_interval_ms) and the FloodIdCache
// sweep (§5, FLOOD_ID_TTL/5), both cancellable via Stop.
func (h *Hook) Start(cfg core.OptoFloodConfig) {
	h.tfibSweep = StartScopedTicker(h.sched, cfg.CleanupInterval, func() {
		h.Controller.SweepTfib(h.Now())
	})
	h.dedupSweep = StartScopedTicker(h.sched, cfg.FloodIDTTL/5, func() {
		h.Controller.SweepDedup(h.Now())
	})
}

// Stop cancels both sweep timers deterministically and empties the TFIB
// (§5 shutdown: "drops all in-flight writes to the external layer, and
// empties the TFIB"). Idempotent via ScopedTicker.Stop.
func (h *Hook) Stop() {
	if h.tfibSweep != nil {
		h.tfibSweep.Stop()
	}
	if h.dedupSweep != nil {
		h.dedupSweep.Stop()
	}
	h.Controller.tfib.Clear()
}

// OnIncomingData is invoked by the host's Data-ingress pipeline for every
// Data, mobility-marked or not (§4.6). metaBytes is whatever the host
// extracted from the Data's application-level metadata block; an empty
// slice decodes to an all-absent Meta and is a cheap no-op. The host's
// normal content-delivery path to waiting PIT consumers is untouched --
// this hook only ever adds the OptoFlood side effect.
func (h *Hook) OnIncomingData(pkt MobileData, ingress face.ID) error {
	meta, err := wire.DecodeMeta(pkt.MetaBytes)
	if err != nil {
		core.LogWarn("ForwarderHook", "malformed OptoFlood metadata on "+pkt.Name.String()+": "+err.Error())
		return err
	}
	if !meta.MobilityFlag {
		return nil
	}
	return h.Controller.OnMobileData(pkt, ingress, h.Now())
}

// OnInterestCSMiss is invoked by the host's Interest pipeline after a
// Content Store miss, before the normal FIB/strategy path runs (§4.6).
// It returns true if it fully handled the Interest (either a TFIB hit or
// a flood dispatch), in which case the host must not also consult its
// strategy for this Interest.
func (h *Hook) OnInterestCSMiss(pkt FloodInterest, ingress face.ID) (handled bool) {
	now := h.Now()

	if entry, ok := h.Controller.tfib.Lookup(pkt.Name, now); ok {
		info, known := h.Controller.faces.Get(entry.Face)
		if !known || info.State != face.Up {
			// §4.6 failure table: TFIB entry for missing face - skip and
			// schedule erase rather than mutate the table mid-lookup.
			prefix := entry.Prefix
			h.sched.Schedule(0, func() { h.Controller.tfib.Erase(prefix) })
		} else {
			h.pit.InsertOrUpdateInRecord(pkt.Name, ingress)
			if err := h.Controller.sender.SendInterest(entry.Face, pkt.Wire, 0); err != nil {
				core.LogWarn("ForwarderHook", "TFIB-guided send to face "+faceString(entry.Face)+" failed: "+err.Error())
			}
			return true
		}
	}

	if _, ok := h.fib.FindLongestPrefixMatch(pkt.Name); ok {
		return false // normal FIB hit: let the host's strategy handle it
	}

	if len(pkt.ParamBytes) == 0 {
		return false // FIB miss, not flood-flagged: normal strategy decides (e.g. Nack)
	}

	if err := h.Controller.OnFloodInterest(pkt, ingress, h.pit, now); err != nil {
		core.LogDebug("ForwarderHook", "flood Interest dispatch for "+pkt.Name.String()+" did not forward: "+err.Error())
	}
	return true
}

// OnFaceDown must be called by the host's face manager before a face is
// torn down, so TFIB entries referencing it are dropped immediately
// rather than surviving until the next sweep (§3 Lifecycle, §4.2, P7).
func (h *Hook) OnFaceDown(f face.ID) {
	h.Controller.OnFaceDown(f)
}
