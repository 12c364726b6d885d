package dfa

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// Automaton owns the alphabet, the language list and the transition table
// of one incrementally built DFA.
//
// mu serializes mutations (AddAcceptedString, RegisterSymbol, AddNovelString)
// and lets any number of readers (Classify, Trace, Dump, Validate) run once no
// mutation is in flight.
type Automaton struct {
	mu sync.RWMutex

	table  *core.Table
	start  core.StateID
	reject core.StateID

	alphabet []core.Symbol            // registration order
	known    map[core.Symbol]struct{} // alphabet membership

	language   []string            // accepted strings in insertion order
	inLanguage map[string]struct{} // language membership

	minted int // fresh-state counter feeding opts.label
	opts   options
	log    logrus.FieldLogger
}

// New creates an automaton and adds every seed as an accepted string, in
// order, registering its symbols first. An empty seed set is valid: the
// result accepts nothing until strings are added.
// Returns ErrInvalidSymbol if a seed is not valid UTF-8.
func New(seeds []string, opts ...Option) (*Automaton, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := core.NewTable()
	a := &Automaton{
		table:      t,
		start:      t.AddState(StartLabel, false),
		reject:     t.AddState(RejectLabel, false),
		known:      make(map[core.Symbol]struct{}),
		inLanguage: make(map[string]struct{}),
		opts:       o,
		log:        o.logger,
	}
	if err := t.SetReject(a.reject); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	for _, seed := range seeds {
		if err := a.AddAcceptedString(seed); err != nil {
			return nil, fmt.Errorf("New: seed %q: %w", seed, err)
		}
	}
	a.log.WithFields(logrus.Fields{
		"seeds":       len(seeds),
		"states":      t.StateCount(),
		"transitions": t.TransitionCount(),
		"alphabet":    len(a.alphabet),
	}).Debug("automaton built")

	return a, nil
}

// Start returns the start state handle.
func (a *Automaton) Start() core.StateID { return a.start }

// Reject returns the reject sink handle.
func (a *Automaton) Reject() core.StateID { return a.reject }

// StateCount returns the number of states including start and reject.
func (a *Automaton) StateCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.table.StateCount()
}

// TransitionCount returns the number of transitions including reject self-loops.
func (a *Automaton) TransitionCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.table.TransitionCount()
}

// Table returns a deep copy of the transition table for read-only
// traversal; mutating the copy never affects the automaton.
func (a *Automaton) Table() *core.Table {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.table.Clone()
}

// Language returns the accepted strings in the order they were added.
func (a *Automaton) Language() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.language))
	copy(out, a.language)

	return out
}

// InLanguage reports whether s was added as an accepted string.
func (a *Automaton) InLanguage(s string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.inLanguage[s]

	return ok
}

// Symbols converts s to symbols, one per code point.
// Returns ErrInvalidSymbol at the first byte that is not valid UTF-8.
func Symbols(s string) ([]core.Symbol, error) {
	out := make([]core.Symbol, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("%w: byte %#x at offset %d", ErrInvalidSymbol, s[i], i)
		}
		out = append(out, core.Symbol(r))
		i += size
	}

	return out, nil
}


// checkSymbols rejects symbols that are not valid code points.
func checkSymbols(word []core.Symbol) error {
	for i, s := range word {
		if !utf8.ValidRune(rune(s)) {
			return fmt.Errorf("%w: %U at position %d", ErrInvalidSymbol, rune(s), i)
		}
	}
	return nil
}
