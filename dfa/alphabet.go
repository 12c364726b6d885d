package dfa

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// RegisterSymbol adds sym to the alphabet and gives the reject sink a
// self-loop on it, keeping reject total over the alphabet. Known symbols are
// a no-op. Returns ErrInvalidSymbol for values that are not code points.
func (a *Automaton) RegisterSymbol(sym core.Symbol) error {
	if err := checkSymbols([]core.Symbol{sym}); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.registerLocked(sym); err != nil {
		return err
	}

	return a.checkStrictLocked()
}

// Alphabet returns the registered symbols in registration order.
func (a *Automaton) Alphabet() []core.Symbol {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]core.Symbol, len(a.alphabet))
	copy(out, a.alphabet)

	return out
}

// HasSymbol reports whether sym is in the alphabet.
func (a *Automaton) HasSymbol(sym core.Symbol) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.known[sym]

	return ok
}

// registerLocked expects a.mu held for writing.
func (a *Automaton) registerLocked(sym core.Symbol) error {
	if _, ok := a.known[sym]; ok {
		return nil
	}
	a.known[sym] = struct{}{}
	a.alphabet = append(a.alphabet, sym)
	if _, err := a.table.Connect(a.reject, sym, a.reject); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	a.log.WithFields(logrus.Fields{
		"symbol":   sym.String(),
		"alphabet": len(a.alphabet),
	}).Debug("symbol registered")

	return nil
}
