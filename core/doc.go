// Package core provides the thread-safe state and transition storage that
// backs an incrementally built deterministic finite automaton.
//
// A Table holds an arena of States addressed by StateID handles and a
// transition catalog keyed by (from, symbol):
//
//   - States compare by StateID only; two states with identical flags are
//     still distinct nodes.
//   - The accepting flag is monotonic: Promote flips false→true once and is a
//     no-op afterwards. There is no demotion API.
//   - One state may be designated as the reject sink (SetReject). The sink is
//     never accepting and may only carry self-loops.
//   - At most one Transition exists per (from, symbol) pair. The pair index
//     makes this hold by construction rather than by scan-and-check.
//
// Connect rules:
//
//	existing target == to       → Unchanged (idempotent)
//	existing target == reject   → Rewired   (placeholder edge repurposed in place)
//	no transition for the pair  → Added
//	existing real target, to == reject → Kept (a catch-all never shadows a real edge)
//	existing real target != to  → ErrEdgeConflict
//	from == reject, to != reject → ErrRejectSource
//
// Core Methods:
//
//	AddState(label string, accepting bool) StateID   // O(1)
//	SetReject(id StateID) error                      // O(1)
//	Promote(id StateID) (bool, error)                // O(1)
//	State(id StateID) (State, error)                 // O(1)
//	Connect(from, sym, to) (ConnectOutcome, error)   // O(1)
//	Target(from, sym) (StateID, bool)                // O(1)
//	Transitions() []Transition                       // O(E), insertion order
//	Outgoing(from) []Transition                      // O(d log d), sorted by symbol
//	Clone() *Table                                   // O(V + E)
//
// Errors:
//
//	ErrStateNotFound    – unknown StateID
//	ErrRejectPromotion  – attempt to make the reject sink accepting
//	ErrRejectSource     – non-loop transition out of the reject sink
//	ErrEdgeConflict     – second real target for an occupied (from, symbol) pair
//	ErrRejectAssigned   – SetReject called twice with different states
package core
