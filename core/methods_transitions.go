// File: methods_transitions.go
// Role: Transition catalog (connect / rewire / lookup).
// Determinism:
//   - Transitions() preserves insertion order; a rewired edge keeps its slot.
//   - Outgoing() is sorted by Symbol.
// Concurrency:
//   - Connect takes the write lock; lookups take the read lock.

package core

import (
	"fmt"
	"sort"
)

// Connect installs the edge (from, sym) → to following the catch-all rules:
//
//	existing target == to        → Unchanged
//	existing target == reject    → Rewired (slot updated in place)
//	no transition for the pair   → Added
//	real target and to == reject → Kept
//	real target != to            → ErrEdgeConflict
//
// A transition out of the reject sink must be a self-loop (ErrRejectSource).
// Unknown endpoints yield ErrStateNotFound.
// Complexity: O(1) amortized.
func (t *Table) Connect(from StateID, sym Symbol, to StateID) (ConnectOutcome, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.hasState(from) {
		return Unchanged, fmt.Errorf("Connect(%d,%q,%d): from: %w", from, sym, to, ErrStateNotFound)
	}
	if !t.hasState(to) {
		return Unchanged, fmt.Errorf("Connect(%d,%q,%d): to: %w", from, sym, to, ErrStateNotFound)
	}
	if from == t.reject && to != t.reject {
		return Unchanged, fmt.Errorf("Connect(%d,%q,%d): %w", from, sym, to, ErrRejectSource)
	}

	key := edgeKey{from: from, sym: sym}
	slot, ok := t.index[key]
	if !ok {
		t.index[key] = len(t.transitions)
		t.outgoing[from] = append(t.outgoing[from], len(t.transitions))
		t.transitions = append(t.transitions, Transition{From: from, Symbol: sym, To: to})
		return Added, nil
	}

	current := t.transitions[slot].To
	switch {
	case current == to:
		return Unchanged, nil
	case current == t.reject:
		t.transitions[slot].To = to
		return Rewired, nil
	case to == t.reject:
		return Kept, nil
	default:
		return Unchanged, fmt.Errorf("Connect(%d,%q,%d): occupied by %d: %w",
			from, sym, to, current, ErrEdgeConflict)
	}
}

// Target returns the destination of (from, sym) if a transition exists.
// Complexity: O(1).
func (t *Table) Target(from StateID, sym Symbol) (StateID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	slot, ok := t.index[edgeKey{from: from, sym: sym}]
	if !ok {
		return NoState, false
	}

	return t.transitions[slot].To, true
}

// HasTransition reports whether (from, sym) has any transition.
func (t *Table) HasTransition(from StateID, sym Symbol) bool {
	_, ok := t.Target(from, sym)
	return ok
}

// Transitions returns a copy of the catalog in insertion order.
// Complexity: O(E)
func (t *Table) Transitions() []Transition {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Transition, len(t.transitions))
	copy(out, t.transitions)

	return out
}

// Outgoing returns every transition leaving from, sorted by Symbol.
// Unknown states yield an empty slice.
// Complexity: O(d log d) where d is the out-degree of from.
func (t *Table) Outgoing(from StateID) []Transition {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.hasState(from) {
		return nil
	}
	out := make([]Transition, 0, len(t.outgoing[from]))
	for _, slot := range t.outgoing[from] {
		out = append(out, t.transitions[slot])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })

	return out
}

// TransitionCount returns the number of catalogued transitions. O(1).
func (t *Table) TransitionCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.transitions)
}
