/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import "sync"

// ID is the 64-bit opaque identifier of a face (§3). The core never owns
// the face itself -- only this id, plus whatever the Table reports about
// its current state.
type ID uint64

// Info is the face-table's view of one face: its id and UP/DOWN state.
// Face I/O transports (Ethernet, UDP, Unix sockets, ...) are out of scope
// for the core and live entirely in the host forwarder.
type Info struct {
	ID    ID
	State State
}

// Table is the forwarder's face table, consulted by the flood controller
// for egress candidate selection (§4.5) and by the forwarder hook when a
// TFIB entry's face has gone away (§4.2, §4.6).
type Table struct {
	mu    sync.RWMutex
	faces map[ID]*Info
}

// NewTable creates an empty face table.
func NewTable() *Table {
	return &Table{faces: make(map[ID]*Info)}
}

// Add registers a face as UP.
func (t *Table) Add(id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.faces[id] = &Info{ID: id, State: Up}
}

// Remove unregisters a face entirely, e.g. on transport teardown.
func (t *Table) Remove(id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.faces, id)
}

// SetState updates a registered face's state.
func (t *Table) SetState(id ID, state State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.faces[id]; ok {
		f.State = state
	}
}

// Get returns the face with the given id, if registered.
func (t *Table) Get(id ID) (*Info, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.faces[id]
	return f, ok
}

// GetAll returns a snapshot of every registered face.
func (t *Table) GetAll() []*Info {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Info, 0, len(t.faces))
	for _, f := range t.faces {
		out = append(out, f)
	}
	return out
}
