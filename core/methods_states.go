// File: methods_states.go
// Role: State arena lifecycle (mint, designate reject, promote, query).
// Concurrency:
//   - Mutators take the write lock; queries take the read lock.

package core

import "fmt"

// AddState mints a fresh state with the given label and accepting flag and
// returns its handle. Labels are not required to be unique; identity is the
// returned StateID.
// Complexity: O(1) amortized.
func (t *Table) AddState(label string, accepting bool) StateID {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := StateID(len(t.states))
	t.states = append(t.states, State{ID: id, Label: label, Accepting: accepting})
	t.outgoing = append(t.outgoing, nil)

	return id
}

// SetReject designates id as the reject sink.
// Returns ErrStateNotFound for unknown ids, ErrRejectPromotion if the state is
// already accepting, ErrRejectAssigned if another state holds the role.
// Re-designating the same state is a no-op.
func (t *Table) SetReject(id StateID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.hasState(id) {
		return fmt.Errorf("SetReject(%d): %w", id, ErrStateNotFound)
	}
	if t.reject == id {
		return nil
	}
	if t.reject != NoState {
		return fmt.Errorf("SetReject(%d): held by %d: %w", id, t.reject, ErrRejectAssigned)
	}
	if t.states[id].Accepting {
		return fmt.Errorf("SetReject(%d): %w", id, ErrRejectPromotion)
	}
	t.reject = id

	return nil
}

// Reject returns the reject sink, or NoState if none was designated.
func (t *Table) Reject() StateID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.reject
}

// Promote marks id as accepting. The flag is monotonic: promoting an
// accepting state is a no-op and reports changed=false.
// Returns ErrStateNotFound or ErrRejectPromotion.
// Complexity: O(1).
func (t *Table) Promote(id StateID) (changed bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.hasState(id) {
		return false, fmt.Errorf("Promote(%d): %w", id, ErrStateNotFound)
	}
	if id == t.reject {
		return false, fmt.Errorf("Promote(%d): %w", id, ErrRejectPromotion)
	}
	if t.states[id].Accepting {
		return false, nil
	}
	t.states[id].Accepting = true

	return true, nil
}

// State returns a copy of the state behind id.
func (t *Table) State(id StateID) (State, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.hasState(id) {
		return State{}, fmt.Errorf("State(%d): %w", id, ErrStateNotFound)
	}

	return t.states[id], nil
}

// HasState reports whether id was minted by this table.
func (t *Table) HasState(id StateID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.hasState(id)
}

// Accepting reports the accepting flag of id; unknown ids are non-accepting.
func (t *Table) Accepting(id StateID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.hasState(id) {
		return false
	}

	return t.states[id].Accepting
}

// Label returns the label of id, or "" for unknown ids.
func (t *Table) Label(id StateID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.hasState(id) {
		return ""
	}

	return t.states[id].Label
}

// States returns a copy of every state in creation order.
// Complexity: O(V)
func (t *Table) States() []State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]State, len(t.states))
	copy(out, t.states)

	return out
}

// StateCount returns the number of minted states. O(1).
func (t *Table) StateCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.states)
}

// hasState expects the caller to hold t.mu.
func (t *Table) hasState(id StateID) bool {
	return id >= 0 && int(id) < len(t.states)
}
