/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package fw

import "errors"

// ErrMissingField is returned when a mobility-marked Data lacks FloodID or
// NewFaceSeq (§4.5 step 1, §7 MissingField), or when a flood Interest's
// parameters lack FloodHopLimit. The caller drops the packet and logs a
// warning; it is not an invariant violation.
var ErrMissingField = errors.New("optoflood/fw: missing required OptoFlood field")
