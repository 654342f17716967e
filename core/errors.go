/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "errors"

// ErrInvariant is returned by internal bookkeeping that detects a state that
// should be impossible under the core's own invariants (e.g. negative
// sequence arithmetic). Per the error taxonomy, callers log it with
// FatalInvariant and do not attempt self-recovery.
var ErrInvariant = errors.New("optoflood: invariant violation")

// FatalInvariant logs an invariant violation at FATAL level and terminates
// the process. It is never used for expected conditions (MalformedField,
// MissingField, Duplicate, RateExceeded) -- only for bugs in the core itself.
func FatalInvariant(module interface{}, err error) {
	LogFatal(module, "invariant violation: "+err.Error())
}
