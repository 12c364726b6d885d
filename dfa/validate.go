// File: validate.go
// Role: Structural invariant checks and language enumeration.
// Concurrency:
//   - Read lock only; the strict-mode path reuses validateLocked under the
//     caller's write lock.

package dfa

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/LadyLoBentley/AdaptableDFA/bfs"
	"github.com/LadyLoBentley/AdaptableDFA/core"
	"github.com/LadyLoBentley/AdaptableDFA/dfs"
)

// Validate checks that:
//   - every symbol of every accepted string is in the alphabet;
//   - reject has a self-loop for every alphabet symbol;
//   - every non-reject state is reachable from start without entering reject;
//   - the only transitions leaving reject are its self-loops;
//   - reject is non-accepting.
//
// All violations are reported together; each is wrapped in ErrInvariant.
// Complexity: O(S + T + L) for S states, T transitions, L language symbols.
func (a *Automaton) Validate() error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.validateLocked()
}

// validateLocked expects a.mu held (read or write).
func (a *Automaton) validateLocked() error {
	var errs error
	violation := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
	}

	for _, s := range a.language {
		for _, r := range s {
			if _, ok := a.known[core.Symbol(r)]; !ok {
				violation("symbol %q of %q not in alphabet", r, s)
			}
		}
	}

	for _, sym := range a.alphabet {
		if to, ok := a.table.Target(a.reject, sym); !ok || to != a.reject {
			violation("reject has no self-loop on %q", sym)
		}
	}

	for _, tr := range a.table.Outgoing(a.reject) {
		if tr.To != a.reject {
			violation("reject leaks to %s on %q", a.table.Label(tr.To), tr.Symbol)
		}
	}

	if a.table.Accepting(a.reject) {
		violation("reject is accepting")
	}

	res, err := bfs.BFS(a.table, a.start, bfs.SkipState(a.reject))
	if err != nil {
		return multierr.Append(errs, fmt.Errorf("%w: reachability: %w", ErrInvariant, err))
	}
	for _, st := range a.table.States() {
		if st.ID != a.reject && !res.Reached(st.ID) {
			violation("state %s unreachable from start", st.Label)
		}
	}

	return errs
}

// Violations splits an error returned by Validate into its individual checks.
func Violations(err error) []error {
	if err == nil {
		return nil
	}
	return multierr.Errors(err)
}

// Enumerate lists every accepted string of length at most maxLen in
// lexicographic symbol order, derived from the transition table rather than
// the language list. A negative maxLen means no bound.
// Returns ErrInvariant if the live part of the automaton has a cycle and no
// bound was given.
func (a *Automaton) Enumerate(ctx context.Context, maxLen int) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithSkipState(a.reject)}
	if maxLen >= 0 {
		opts = append(opts, dfs.WithMaxDepth(maxLen))
	}
	res, err := dfs.Enumerate(a.table, a.start, opts...)
	if err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
		}
		return nil, fmt.Errorf("Enumerate: %w", err)
	}

	return res.Words, nil
}
