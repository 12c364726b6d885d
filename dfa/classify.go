// File: classify.go
// Role: Evaluation (walk existing transitions, fall back to reject on a gap).
// Concurrency:
//   - Read lock only; any number of classifications may run together.

package dfa

import (
	"fmt"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// Verdict is the outcome of classifying a string.
type Verdict int

const (
	// Reject means the walk ended on a non-accepting state.
	Reject Verdict = iota
	// Accept means the walk ended on an accepting state.
	Accept
)

// String returns "accept" or "reject".
func (v Verdict) String() string {
	if v == Accept {
		return "accept"
	}
	return "reject"
}

// Step is one consumed symbol of a classification walk.
type Step struct {
	From      core.StateID
	FromLabel string
	Symbol    core.Symbol
	To        core.StateID
	ToLabel   string

	// Fallback marks the step where no transition existed and the walk
	// settled on reject without consuming further input.
	Fallback bool
}

// Trace is the full record of one classification.
type Trace struct {
	Input      string
	Steps      []Step
	Final      core.StateID
	FinalLabel string
	Verdict    Verdict
}

// Classify decides whether input is accepted. Symbols never registered
// simply have no transition and lead to Reject.
// Returns ErrInvalidSymbol if input is not valid UTF-8.
func (a *Automaton) Classify(input string) (Verdict, error) {
	word, err := Symbols(input)
	if err != nil {
		return Reject, fmt.Errorf("Classify(%q): %w", input, err)
	}

	return a.ClassifySymbols(word), nil
}

// ClassifySymbols decides whether word is accepted. It is total: every
// sequence, including the empty one, yields a verdict.
// Complexity: O(len(word)).
func (a *Automaton) ClassifySymbols(word []core.Symbol) Verdict {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.verdict(a.walk(word, nil))
}

// Accepts reports whether input is accepted; invalid UTF-8 is never accepted.
func (a *Automaton) Accepts(input string) bool {
	v, err := a.Classify(input)
	return err == nil && v == Accept
}

// Trace classifies input and records every step taken.
// Returns ErrInvalidSymbol if input is not valid UTF-8.
func (a *Automaton) Trace(input string) (*Trace, error) {
	word, err := Symbols(input)
	if err != nil {
		return nil, fmt.Errorf("Trace(%q): %w", input, err)
	}
	a.mu.RLock()
	defer a.mu.RUnlock()

	tr := &Trace{Input: input, Steps: make([]Step, 0, len(word))}
	tr.Final = a.walk(word, func(st Step) {
		st.FromLabel = a.table.Label(st.From)
		st.ToLabel = a.table.Label(st.To)
		tr.Steps = append(tr.Steps, st)
	})
	tr.FinalLabel = a.table.Label(tr.Final)
	tr.Verdict = a.verdict(tr.Final)

	return tr, nil
}

// walk consumes word from start and returns the landing state. A missing
// transition short-circuits to reject. record, if non-nil, sees each step.
// Expects a.mu held for reading.
func (a *Automaton) walk(word []core.Symbol, record func(Step)) core.StateID {
	current := a.start
	for _, sym := range word {
		next, ok := a.table.Target(current, sym)
		if !ok {
			if record != nil {
				record(Step{From: current, Symbol: sym, To: a.reject, Fallback: true})
			}
			return a.reject
		}
		if record != nil {
			record(Step{From: current, Symbol: sym, To: next})
		}
		current = next
	}

	return current
}

func (a *Automaton) verdict(id core.StateID) Verdict {
	if a.table.Accepting(id) {
		return Accept
	}
	return Reject
}
