/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import (
	"strconv"
	"time"

	"github.com/named-data/optoflood/core"
	"github.com/named-data/optoflood/dispatch"
	"github.com/named-data/optoflood/face"
	"github.com/named-data/optoflood/table"
	"github.com/named-data/optoflood/wire"
)

// GuidedFloodingFilter is the pluggable predicate behind shouldUseGuidedFlooding
// (§4.5.1): given a candidate face and the Data's TraceHint, it reports
// whether that face should be included in a hint-guided flood. The
// controller applies the graceful-degradation clause itself -- a filter
// never needs to special-case "eliminated every candidate".
type GuidedFloodingFilter func(f *face.Info, hint []byte) bool

// Controller is the Flood Controller (§4.5): it orchestrates dedup (C3),
// TFIB update (C2), rate limiting (C4), hop-limit bookkeeping and egress
// fan-out for both mobility-marked Data and flood-triggered Interests. It
// owns no socket; every emission is handed to a dispatch.Sender.
//
// A Controller is single-reactor per §5: every exported method must be
// called from the same goroutine, normally the forwarder hook's.
type Controller struct {
	cfg core.OptoFloodConfig

	tfib    *table.Tfib
	dedup   *table.FloodIdCache
	limiter *table.RateLimiter
	faces   *face.Table
	sender  dispatch.Sender

	guided GuidedFloodingFilter

	Counters Counters
}

// NewController wires a Controller over already-constructed tables and a
// host-provided face table and sender. cfg supplies every §6 knob; guided
// may be nil, in which case TraceHint never restricts egress selection.
func NewController(cfg core.OptoFloodConfig, faces *face.Table, sender dispatch.Sender, guided GuidedFloodingFilter) *Controller {
	return &Controller{
		cfg:     cfg,
		tfib:    table.NewTfib(cfg.DefaultLifetime),
		dedup:   table.NewFloodIdCache(cfg.FloodIDTTL, cfg.MaxFloodIDs),
		limiter: table.NewRateLimiter(cfg.RateWindow, cfg.RateLimit),
		faces:   faces,
		sender:  sender,
		guided:  guided,
	}
}

// Tfib returns the controller's TFIB, for the forwarder hook's CS-miss
// lookup (§4.6) and for registering afterInsert/beforeRemove listeners.
func (c *Controller) Tfib() *table.Tfib { return c.tfib }

// SweepTfib and SweepDedup are invoked periodically by the two
// ScopedTickers started by Hook.Start (§5); each returns the
// count of entries removed, for logging.
func (c *Controller) SweepTfib(now time.Time) int {
	n := c.tfib.Sweep(now)
	if n > 0 {
		c.Counters.TfibExpires.Add(uint64(n))
	}
	return n
}

func (c *Controller) SweepDedup(now time.Time) int {
	return c.dedup.Sweep(now)
}

// OnFaceDown forwards a face-down notification to the TFIB (§4.2
// OnFaceDown, P7).
func (c *Controller) OnFaceDown(f face.ID) {
	c.tfib.OnFaceDown(f)
}

// OnMobileData is the canonical path for a mobility-marked Data (§4.5).
func (c *Controller) OnMobileData(pkt MobileData, ingress face.ID, now time.Time) error {
	meta, err := wire.DecodeMeta(pkt.MetaBytes)
	if err != nil {
		core.LogWarn("FloodController", "malformed OptoFlood metadata on "+pkt.Name.String()+": "+err.Error())
		return err
	}
	if meta.FloodID == nil || meta.NewFaceSeq == nil {
		core.LogWarn("FloodController", "mobility Data "+pkt.Name.String()+" missing FloodID or NewFaceSeq - DROP")
		return ErrMissingField
	}
	floodID := *meta.FloodID

	c.Counters.FloodDataIngested.Add(1)

	if c.dedup.Seen(floodID, now) {
		c.Counters.FloodDuplicatesDropped.Add(1)
		core.LogDebug("FloodController", "duplicate FloodID on "+pkt.Name.String()+" - DROP")
		return nil
	}
	c.dedup.Remember(floodID, now)

	c.tfib.Insert(pkt.Name.Prefix(-1), ingress, *meta.NewFaceSeq, floodID, now)

	if !c.limiter.Admit(now) {
		c.Counters.RateLimitDrops.Add(1)
		core.LogWarn("FloodController", "rate limit exceeded - suppressing flood copies for "+pkt.Name.String())
		return nil
	}

	hopLimit := c.cfg.DefaultHopLimit
	if pkt.HopLimit != nil {
		hopLimit = *pkt.HopLimit
	}
	if hopLimit <= 1 {
		// A copy would carry hopLimit-1 == 0 (or hopLimit was already 0):
		// the flood stops here.
		core.LogDebug("FloodController", "hop limit exhausted on arrival for "+pkt.Name.String()+" - TFIB updated, no copies")
		return nil
	}

	targets := c.selectEgressFaces(ingress, meta.TraceHint)
	for _, f := range targets {
		if err := c.sender.SendData(f.ID, pkt.Wire, hopLimit-1); err != nil {
			core.LogWarn("FloodController", "egress send to face "+faceString(f.ID)+" failed: "+err.Error())
			continue
		}
		c.Counters.FloodCopiesEmitted.Add(1)
	}
	return nil
}

// OnFloodInterest is called by the forwarder hook when a FIB miss
// coincides with a flood-flagged Interest (§4.5 onFloodInterest). pit
// must already hold (or be given) an in-record for ingress before any
// copy is emitted (§5 ordering guarantee).
func (c *Controller) OnFloodInterest(pkt FloodInterest, ingress face.ID, pit dispatch.PIT, now time.Time) error {
	fp, err := wire.DecodeFloodParams(pkt.ParamBytes)
	if err != nil {
		core.LogWarn("FloodController", "malformed flood parameters on "+pkt.Name.String()+": "+err.Error())
		return err
	}
	if !fp.HasHopLimit {
		core.LogWarn("FloodController", "flood Interest "+pkt.Name.String()+" missing FloodHopLimit - DROP")
		return ErrMissingField
	}

	if !c.limiter.Admit(now) {
		c.Counters.RateLimitDrops.Add(1)
		core.LogWarn("FloodController", "rate limit exceeded - suppressing flood Interest copies for "+pkt.Name.String())
		return nil
	}

	if fp.HopLimit == 0 {
		core.LogDebug("FloodController", "hop limit exhausted on arrival for flood Interest "+pkt.Name.String())
		return nil
	}

	pit.InsertOrUpdateInRecord(pkt.Name, ingress)

	targets := c.selectEgressFaces(ingress, fp.TraceHint)
	for _, f := range targets {
		if err := c.sender.SendInterest(f.ID, pkt.Wire, fp.HopLimit-1); err != nil {
			core.LogWarn("FloodController", "egress send to face "+faceString(f.ID)+" failed: "+err.Error())
			continue
		}
		c.Counters.FloodCopiesEmitted.Add(1)
	}
	return nil
}

// selectEgressFaces implements §4.5 step 7 / §4.5.1: every UP face other
// than ingress, optionally narrowed by TraceHint with graceful
// degradation back to "all" if the filter would otherwise black-hole the
// flood (§4.5.1, P6 no-self-loop).
func (c *Controller) selectEgressFaces(ingress face.ID, hint []byte) []*face.Info {
	var all []*face.Info
	for _, f := range c.faces.GetAll() {
		if f.ID == ingress || f.State != face.Up {
			continue
		}
		all = append(all, f)
	}
	if len(all) == 0 || c.guided == nil || hint == nil {
		return all
	}

	var guided []*face.Info
	for _, f := range all {
		if c.guided(f, hint) {
			guided = append(guided, f)
		}
	}
	if len(guided) == 0 {
		// Graceful degradation (§4.5.1): a misconfigured hint must never
		// black-hole the flood.
		return all
	}
	return guided
}

func faceString(id face.ID) string {
	return strconv.FormatUint(uint64(id), 10)
}
