package dfa

import "github.com/LadyLoBentley/AdaptableDFA/core"

// Snapshot is a read-only copy of the automaton's structure.
type Snapshot struct {
	Start    core.StateID
	Reject   core.StateID
	Alphabet []core.Symbol

	// States in creation order; each carries its outgoing edges sorted by symbol.
	States []StateView

	// RejectLoops are the reject self-loops, one per alphabet symbol.
	RejectLoops []core.Transition

	// Transitions in insertion order, the reject self-loops included.
	Transitions []core.Transition

	Language []string
}

// StateView is one state with its outgoing transitions.
type StateView struct {
	core.State
	Outgoing []core.Transition
}

// Dump returns a Snapshot. Nothing in it aliases automaton storage.
func (a *Automaton) Dump() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snap := Snapshot{
		Start:       a.start,
		Reject:      a.reject,
		Alphabet:    append([]core.Symbol(nil), a.alphabet...),
		Transitions: a.table.Transitions(),
		Language:    append([]string(nil), a.language...),
	}
	for _, st := range a.table.States() {
		snap.States = append(snap.States, StateView{State: st, Outgoing: a.table.Outgoing(st.ID)})
	}
	for _, sym := range a.alphabet {
		snap.RejectLoops = append(snap.RejectLoops, core.Transition{From: a.reject, Symbol: sym, To: a.reject})
	}

	return snap
}

// Label returns the label of id, or "" if it is not a state of the snapshot.
func (s Snapshot) Label(id core.StateID) string {
	if id < 0 || int(id) >= len(s.States) {
		return ""
	}
	return s.States[id].Label
}
