// Package core defines the Symbol, State, Transition and Table types,
// and the sentinel errors shared by every Table operation.
//
// All Table APIs take the table's sync.RWMutex internally so a Table may be
// read from many goroutines while a single writer mutates it.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core table operations.
var (
	// ErrStateNotFound indicates an operation referenced a StateID the table never minted.
	ErrStateNotFound = errors.New("core: state not found")

	// ErrRejectPromotion indicates an attempt to mark the reject sink as accepting.
	ErrRejectPromotion = errors.New("core: reject state cannot be accepting")

	// ErrRejectSource indicates a transition out of the reject sink that is not a self-loop.
	ErrRejectSource = errors.New("core: reject state may only loop to itself")

	// ErrEdgeConflict indicates a second real target for an occupied (from, symbol) pair.
	ErrEdgeConflict = errors.New("core: conflicting transition for (state, symbol)")

	// ErrRejectAssigned indicates the reject sink was already designated.
	ErrRejectAssigned = errors.New("core: reject state already assigned")
)

// Symbol is one atomic unit of the alphabet: a single Unicode code point.
type Symbol rune

// String renders the symbol as its character.
func (s Symbol) String() string { return string(rune(s)) }

// Word joins symbols into their string form.
func Word(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for i, s := range symbols {
		runes[i] = rune(s)
	}

	return string(runes)
}

// MarshalText encodes the symbol as its character, so JSON shows "a" not 97.
func (s Symbol) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// StateID is an opaque handle into a Table's state arena.
// IDs are dense and start at 0 in creation order.
type StateID int

// NoState is the zero handle returned when no state applies.
const NoState StateID = -1

// State is a node of the automaton.
type State struct {
	// ID is the arena handle; equality between states is by ID only.
	ID StateID

	// Label is the human-readable name, e.g. "q_start", "q_rej", "q_3".
	Label string

	// Accepting reports whether input ending here is accepted.
	Accepting bool
}

// Transition is one (From, Symbol) → To edge of the automaton.
type Transition struct {
	From   StateID
	Symbol Symbol
	To     StateID
}

// ConnectOutcome reports what Connect did to the transition catalog.
type ConnectOutcome int

const (
	// Unchanged means the pair already pointed at the requested target.
	Unchanged ConnectOutcome = iota
	// Added means a new transition was appended.
	Added
	// Rewired means a placeholder edge into reject was pointed at a real state.
	Rewired
	// Kept means a catch-all into reject was skipped because a real edge exists.
	Kept
)

// String returns a short name for the outcome.
func (o ConnectOutcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Rewired:
		return "rewired"
	case Kept:
		return "kept"
	default:
		return "unknown"
	}
}

// edgeKey indexes the transition catalog.
type edgeKey struct {
	from StateID
	sym  Symbol
}

// TableOption configures a Table before first use.
type TableOption func(t *Table)

// WithCapacity pre-sizes the state arena and transition catalog.
// Panics on negative hints.
func WithCapacity(states, transitions int) TableOption {
	if states < 0 || transitions < 0 {
		panic("core: WithCapacity(negative)")
	}
	return func(t *Table) {
		t.states = make([]State, 0, states)
		t.outgoing = make([][]int, 0, states)
		t.transitions = make([]Transition, 0, transitions)
		t.index = make(map[edgeKey]int, transitions)
	}
}

// Table is the state arena plus transition catalog of one automaton.
//
// transitions keeps insertion order for presentation; index maps each
// (from, symbol) pair to its slot in transitions.
type Table struct {
	mu sync.RWMutex // guards every field below

	states      []State         // StateID → State
	transitions []Transition    // insertion order; targets rewritten in place
	index       map[edgeKey]int // (from, symbol) → slot in transitions
	outgoing    [][]int         // StateID → slots of its transitions
	reject      StateID         // NoState until SetReject
}

// NewTable creates an empty Table with the given options.
// Complexity: O(1)
func NewTable(opts ...TableOption) *Table {
	t := &Table{
		index:  make(map[edgeKey]int),
		reject: NoState,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}
