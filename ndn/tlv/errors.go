/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

import "errors"

// TLV errors.
var (
	ErrBufferTooShort = errors.New("TLV length exceeds buffer size")
	ErrMissingLength  = errors.New("missing TLV length")
	ErrTooShort       = errors.New("buffer too short to decode TLV field")
	ErrTooLong        = errors.New("non-negative integer exceeds 8 bytes")
	ErrNonExistent    = errors.New("TLV block does not exist")
	ErrOutOfRange     = errors.New("TLV type out of range")
)
