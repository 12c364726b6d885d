// File: construct.go
// Role: Online construction (add accepted string → resolve → connect → catch-all).
// Concurrency:
//   - Every public entry point holds a.mu for writing for the whole walk, so a
//     reader never observes a half-installed path or a pending placeholder.

package dfa

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// AddAcceptedString makes the automaton accept s. Its symbols are registered
// first. Adding a string already in the language re-walks the existing path
// and changes nothing.
// Returns ErrInvalidSymbol if s is not valid UTF-8.
func (a *Automaton) AddAcceptedString(s string) error {
	word, err := Symbols(s)
	if err != nil {
		return fmt.Errorf("AddAcceptedString(%q): %w", s, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.addLocked(word)
}

// AddAcceptedSymbols is AddAcceptedString over an explicit symbol sequence.
// Returns ErrInvalidSymbol if any symbol is not a valid code point.
func (a *Automaton) AddAcceptedSymbols(word []core.Symbol) error {
	if err := checkSymbols(word); err != nil {
		return fmt.Errorf("AddAcceptedSymbols: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.addLocked(word)
}

// addLocked walks word from start, sharing existing prefixes and extending
// past catch-alls, then installs the catch-all edges on the landing state.
// Expects a.mu held for writing.
func (a *Automaton) addLocked(word []core.Symbol) error {
	for _, sym := range word {
		if err := a.registerLocked(sym); err != nil {
			return err
		}
	}

	current := a.start
	for i, sym := range word {
		wantFinal := i == len(word)-1
		if current == a.reject {
			// a walk that fell into the sink never lands as accepting
			wantFinal = false
		}
		next, err := a.resolveTarget(current, sym, wantFinal)
		if err != nil {
			return err
		}
		if err := a.connect(current, sym, next); err != nil {
			return err
		}
		current = next
	}

	if len(word) == 0 {
		if err := a.promote(a.start); err != nil {
			return err
		}
	}

	for _, sym := range a.alphabet {
		if err := a.connect(current, sym, a.reject); err != nil {
			return err
		}
	}

	s := core.Word(word)
	if _, ok := a.inLanguage[s]; !ok {
		a.inLanguage[s] = struct{}{}
		a.language = append(a.language, s)
	}

	return a.checkStrictLocked()
}

// resolveTarget returns the state reached from current on sym while adding
// a string. A real edge is reused (prefix sharing), promoting its target when
// wantFinal. A missing edge or a placeholder into reject mints a fresh state.
func (a *Automaton) resolveTarget(current core.StateID, sym core.Symbol, wantFinal bool) (core.StateID, error) {
	if to, ok := a.table.Target(current, sym); ok && to != a.reject {
		if wantFinal {
			if err := a.promote(to); err != nil {
				return core.NoState, err
			}
		}
		return to, nil
	}

	label := a.opts.label(a.minted)
	a.minted++
	id := a.table.AddState(label, wantFinal)
	a.log.WithFields(logrus.Fields{
		"state":     label,
		"from":      a.table.Label(current),
		"symbol":    sym.String(),
		"accepting": wantFinal,
	}).Debug("state created")

	return id, nil
}

// connect installs from --sym--> to and logs rewires of placeholder edges.
func (a *Automaton) connect(from core.StateID, sym core.Symbol, to core.StateID) error {
	outcome, err := a.table.Connect(from, sym, to)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	if outcome == core.Rewired {
		a.log.WithFields(logrus.Fields{
			"from":   a.table.Label(from),
			"symbol": sym.String(),
			"to":     a.table.Label(to),
		}).Debug("catch-all rewired")
	}

	return nil
}

// promote flips id to accepting and logs the first flip only.
func (a *Automaton) promote(id core.StateID) error {
	changed, err := a.table.Promote(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	if changed {
		a.log.WithField("state", a.table.Label(id)).Debug("state promoted")
	}

	return nil
}

// checkStrictLocked runs the invariant checks when WithStrictInvariants is set.
func (a *Automaton) checkStrictLocked() error {
	if !a.opts.strict {
		return nil
	}
	if err := a.validateLocked(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}

	return nil
}
