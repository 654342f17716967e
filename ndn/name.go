/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// Component is an opaque NDN name component. The core never interprets a
// component's bytes (marker-typed components, segment/version/timestamp
// conventions, signing, and the rest of packet parsing stay outside the
// core -- see §1).
type Component []byte

// Equals reports whether two components hold the same bytes.
func (c Component) Equals(other Component) bool {
	return bytes.Equal(c, other)
}

// Compare orders components by their TLV-encoded value, byte for byte.
func (c Component) Compare(other Component) int {
	return bytes.Compare(c, other)
}

func (c Component) String() string {
	return string(c)
}

// Name is an immutable, hierarchical sequence of opaque components.
type Name []Component

// NameFromString builds a Name from a "/"-delimited string, e.g. "/a/b/c".
// Used by tests and by the cmd entrypoint; never by the wire codec, which
// only ever sees Names already carried on a Data or Interest from the
// (out-of-scope) packet layer.
func NameFromString(s string) Name {
	s = strings.Trim(s, "/")
	if s == "" {
		return Name{}
	}
	parts := strings.Split(s, "/")
	name := make(Name, len(parts))
	for i, p := range parts {
		name[i] = Component(p)
	}
	return name
}

// Size returns the number of components in the name.
func (n Name) Size() int {
	return len(n)
}

// At returns the component at the given depth.
func (n Name) At(i int) Component {
	if i < 0 {
		i += len(n)
	}
	return n[i]
}

// Prefix drops the last k components. Prefix(0) returns the name unchanged;
// a negative k drops -k components, so Prefix(-1) drops exactly one, matching
// the original implementation's getPrefix(-1) used to strip a Data's final
// (implicit digest) component before a TFIB insert.
func (n Name) Prefix(k int) Name {
	if k <= 0 {
		k = -k
	}
	if k >= len(n) {
		return Name{}
	}
	return n[:len(n)-k]
}

// Equals reports whether two names hold the same components in the same order.
func (n Name) Equals(other Name) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if !n[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

// Compare orders names component-wise lexicographically, then by length
// (a proper prefix sorts before any name it prefixes).
func (n Name) Compare(other Name) int {
	for i := 0; i < len(n) && i < len(other); i++ {
		if c := n[i].Compare(other[i]); c != 0 {
			return c
		}
	}
	return len(n) - len(other)
}

// IsPrefixOf reports whether n is a proper or improper prefix of other.
func (n Name) IsPrefixOf(other Name) bool {
	if len(n) > len(other) {
		return false
	}
	for i := range n {
		if !n[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

func (n Name) String() string {
	var b strings.Builder
	for _, c := range n {
		b.WriteByte('/')
		b.Write(c)
	}
	if len(n) == 0 {
		return "/"
	}
	return b.String()
}

// Key returns a canonical map key for the name, used by the TFIB's prefix
// index. Components are length-prefixed so no component's bytes can be
// mistaken for a separator.
func (n Name) Key() string {
	var b strings.Builder
	for _, c := range n {
		b.Write(binary.AppendUvarint(nil, uint64(len(c))))
		b.Write(c)
	}
	return b.String()
}
