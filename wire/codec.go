/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package wire implements the OptoFlood TLV fields (§4.1): the four
// metadata fields carried on mobility-marked Data, and the flood
// parameters carried in an Interest's Application Parameters. It never
// touches the rest of the Data/Interest encoding -- that stays with the
// (out-of-scope) packet layer.
package wire

import (
	"sort"

	"github.com/named-data/optoflood/ndn/tlv"
)

// Assigned TLV type numbers (§4.1). Part of the on-wire contract; never
// renumber.
const (
	TypeMobilityFlag  uint32 = 201
	TypeFloodID       uint32 = 202
	TypeNewFaceSeq    uint32 = 203
	TypeTraceHint     uint32 = 204
	TypeFloodHopLimit uint32 = 205
)

// maxTraceHintLen is the §3 bound on TraceHint: 0-255 bytes.
const maxTraceHintLen = 255

// Meta is the decoded form of the OptoFlood Data metadata block (§4.1,
// §6). Unknown carries every TLV the decoder didn't recognize, verbatim,
// so a re-encode emits them again byte for byte, placed in ascending
// type-number order among the known fields.
type Meta struct {
	MobilityFlag bool
	FloodID      *uint64
	NewFaceSeq   *uint32
	TraceHint    []byte
	Unknown      []*tlv.Block
}

// EncodeMeta appends present fields in ascending type-number order, with
// MobilityFlag always emitted first when present (§4.1).
func EncodeMeta(m Meta) []byte {
	var mobility *tlv.Block
	if m.MobilityFlag {
		mobility = tlv.NewEmptyBlock(TypeMobilityFlag)
	}

	rest := make([]*tlv.Block, 0, 3+len(m.Unknown))
	if m.FloodID != nil {
		rest = append(rest, tlv.EncodeNNIBlock(TypeFloodID, *m.FloodID))
	}
	if m.NewFaceSeq != nil {
		rest = append(rest, tlv.EncodeNNIBlock(TypeNewFaceSeq, uint64(*m.NewFaceSeq)))
	}
	if m.TraceHint != nil {
		rest = append(rest, tlv.NewBlock(TypeTraceHint, m.TraceHint))
	}
	rest = append(rest, m.Unknown...)
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Type() < rest[j].Type() })

	var out []byte
	if mobility != nil {
		w, _ := mobility.Wire()
		out = append(out, w...)
	}
	for _, b := range rest {
		w, _ := b.Wire()
		out = append(out, w...)
	}
	return out
}

// DecodeMeta tolerates unknown TLVs (preserved in Unknown, verbatim) and
// fails with ErrMalformedField on a truncated length or an integer wider
// than 8 bytes (§4.1).
func DecodeMeta(data []byte) (Meta, error) {
	var m Meta
	pos := 0
	for pos < len(data) {
		block, size, err := tlv.DecodeBlock(data[pos:])
		if err != nil {
			return Meta{}, ErrMalformedField
		}
		switch block.Type() {
		case TypeMobilityFlag:
			m.MobilityFlag = true
		case TypeFloodID:
			v, err := tlv.DecodeNNI(block.Value())
			if err != nil {
				return Meta{}, ErrMalformedField
			}
			m.FloodID = &v
		case TypeNewFaceSeq:
			v, err := tlv.DecodeNNI(block.Value())
			if err != nil {
				return Meta{}, ErrMalformedField
			}
			seq := uint32(v)
			m.NewFaceSeq = &seq
		case TypeTraceHint:
			if len(block.Value()) > maxTraceHintLen {
				return Meta{}, ErrMalformedField
			}
			m.TraceHint = append([]byte(nil), block.Value()...)
		default:
			m.Unknown = append(m.Unknown, block)
		}
		pos += int(size)
	}
	return m, nil
}

// FloodParams is the decoded form of an Interest's flood-flagging
// Application Parameters (§4.1, §6).
type FloodParams struct {
	HopLimit    uint8
	HasHopLimit bool
	TraceHint   []byte
	Unknown     []*tlv.Block
}

// EncodeFloodParams lays out FloodHopLimit then TraceHint, matching the
// wire layout in §6.
func EncodeFloodParams(hopLimit uint8, traceHint []byte) []byte {
	hb := tlv.NewBlock(TypeFloodHopLimit, []byte{hopLimit})
	out, _ := hb.Wire()
	if traceHint != nil {
		tb := tlv.NewBlock(TypeTraceHint, traceHint)
		w, _ := tb.Wire()
		out = append(out, w...)
	}
	return out
}

// DecodeFloodParams is symmetric with EncodeFloodParams and round-trips
// exactly, preserving unknown TLVs verbatim.
func DecodeFloodParams(data []byte) (FloodParams, error) {
	var fp FloodParams
	pos := 0
	for pos < len(data) {
		block, size, err := tlv.DecodeBlock(data[pos:])
		if err != nil {
			return FloodParams{}, ErrMalformedField
		}
		switch block.Type() {
		case TypeFloodHopLimit:
			if len(block.Value()) != 1 {
				return FloodParams{}, ErrMalformedField
			}
			fp.HopLimit = block.Value()[0]
			fp.HasHopLimit = true
		case TypeTraceHint:
			if len(block.Value()) > maxTraceHintLen {
				return FloodParams{}, ErrMalformedField
			}
			fp.TraceHint = append([]byte(nil), block.Value()...)
		default:
			fp.Unknown = append(fp.Unknown, block)
		}
		pos += int(size)
	}
	return fp, nil
}
