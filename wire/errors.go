/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package wire

import "errors"

// ErrMalformedField covers every on-wire decoding failure for an OptoFlood
// field: a truncated TLV length, an integer wider than 8 bytes, a
// TraceHint longer than 255 bytes, or a FloodHopLimit whose value is not
// exactly one byte (§4.1, §7).
var ErrMalformedField = errors.New("optoflood/wire: malformed field")
