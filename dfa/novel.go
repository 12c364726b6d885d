package dfa

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// Source draws candidate strings over an alphabet.
// generator.Generator satisfies it.
type Source interface {
	Candidate(alphabet []core.Symbol) string
}

// AddNovelString draws candidates from src until one is outside the
// language, then adds it as an accepted string and returns it.
//
// The alphabet snapshot and the add happen under one write lock, so a
// concurrent add can never make the returned string a duplicate.
// Returns ErrNilSource for a nil src. Returns ErrNoNovelString once the
// attempt budget (WithMaxAttempts) is spent, or at once while the alphabet
// is empty: "" is the only string over it and must be added explicitly.
func (a *Automaton) AddNovelString(src Source) (string, error) {
	if src == nil {
		return "", ErrNilSource
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.alphabet) == 0 {
		return "", fmt.Errorf("%w: alphabet is empty", ErrNoNovelString)
	}
	for attempt := 1; attempt <= a.opts.maxAttempts; attempt++ {
		s := src.Candidate(a.alphabet)
		if s == "" {
			continue
		}
		if _, dup := a.inLanguage[s]; dup {
			continue
		}
		word, err := Symbols(s)
		if err != nil {
			return "", fmt.Errorf("AddNovelString: candidate %q: %w", s, err)
		}
		if err := a.addLocked(word); err != nil {
			return "", fmt.Errorf("AddNovelString(%q): %w", s, err)
		}
		a.log.WithFields(logrus.Fields{
			"string":   s,
			"attempts": attempt,
			"states":   a.table.StateCount(),
		}).Info("novel string added")

		return s, nil
	}

	return "", fmt.Errorf("%w after %d attempts", ErrNoNovelString, a.opts.maxAttempts)
}
