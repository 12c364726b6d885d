// Package dfs enumerates, depth-first, every string accepted by an automaton
// stored in a core.Table.
//
// Key features:
//   - Enumerate(t, start, opts...): lexicographic walk over outgoing transitions
//   - Skip states (the reject sink) so only live paths are explored
//   - Hooks: OnAccept per accepted string, with error aborts
//   - Limits: MaxDepth bounds string length; cycles without a limit fail fast
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(P · L) where P is explored paths and L their length.
//   - Memory: O(L) for the recursion stack and the current word.
package dfs

import (
	"fmt"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// enumWalker encapsulates state during enumeration.
type enumWalker struct {
	table   *core.Table
	opts    Options
	res     *Result
	word    []core.Symbol
	onStack map[core.StateID]bool
}

// Enumerate lists every accepted string reachable from start, in
// lexicographic symbol order, without entering skipped states.
// Returns ErrCycleDetected if a live cycle exists and no MaxDepth was set.
func Enumerate(t *core.Table, start core.StateID, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrTableNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !t.HasState(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartStateNotFound, start)
	}

	w := &enumWalker{
		table:   t,
		opts:    o,
		res:     &Result{},
		onStack: make(map[core.StateID]bool),
	}
	if err := w.traverse(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// traverse records id's verdict for the current word, then recurses into
// each outgoing transition in symbol order.
func (w *enumWalker) traverse(id core.StateID) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited++
	if w.table.Accepting(id) {
		w.res.Words = append(w.res.Words, core.Word(w.word))
		if w.opts.OnAccept != nil {
			if err := w.opts.OnAccept(w.word); err != nil {
				return fmt.Errorf("dfs: OnAccept hook for %q: %w", core.Word(w.word), err)
			}
		}
	}

	out := w.table.Outgoing(id)
	if w.opts.MaxDepth >= 0 && len(w.word) >= w.opts.MaxDepth {
		for _, tr := range out {
			if !w.opts.Skip[tr.To] {
				w.res.Truncated = true
				break
			}
		}
		return nil
	}

	w.onStack[id] = true
	defer delete(w.onStack, id)

	for _, tr := range out {
		if w.opts.Skip[tr.To] {
			continue
		}
		if w.onStack[tr.To] && w.opts.MaxDepth < 0 {
			return fmt.Errorf("%w: via %q from %d", ErrCycleDetected, tr.Symbol, id)
		}
		w.word = append(w.word, tr.Symbol)
		err := w.traverse(tr.To)
		w.word = w.word[:len(w.word)-1]
		if err != nil {
			return err
		}
	}

	return nil
}
