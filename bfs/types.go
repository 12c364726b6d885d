// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Table.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartStateNotFound is returned when the start handle is absent.
	ErrStartStateNotFound = errors.New("bfs: start state not found")

	// ErrTableNil is returned if a nil table pointer is passed.
	ErrTableNil = errors.New("bfs: table is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for states the search never reached.
	ErrNoPath = errors.New("bfs: no path to state")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, before visiting.
	OnEnqueue func(id core.StateID, depth int)

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.StateID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterTransition can skip edges by returning false.
	FilterTransition func(tr core.Transition) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		OnEnqueue:        func(core.StateID, int) {},
		OnVisit:          func(core.StateID, int) error { return nil },
		FilterTransition: func(core.Transition) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.StateID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.StateID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterTransition skips transitions when fn returns false.
func WithFilterTransition(fn func(tr core.Transition) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterTransition = fn
		}
	}
}

// SkipState returns a filter that never enters the given state.
// Typical use: SkipState(t.Reject()) to walk only the live part of an automaton.
func SkipState(id core.StateID) Option {
	return WithFilterTransition(func(tr core.Transition) bool { return tr.To != id })
}

// Result holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: distance in transitions from the start.
//   - Parent: predecessor in the BFS tree.
//   - Via: symbol consumed on the tree edge into each state.
type Result struct {
	Start  core.StateID
	Order  []core.StateID
	Depth  map[core.StateID]int
	Parent map[core.StateID]core.StateID
	Via    map[core.StateID]core.Symbol
}

// Reached reports whether id was visited.
func (r *Result) Reached(id core.StateID) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the shortest symbol sequence that drives the automaton
// from the start state to dest. The start state itself yields an empty path.
func (r *Result) PathTo(dest core.StateID) ([]core.Symbol, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	path := make([]core.Symbol, 0, r.Depth[dest])
	for cur := dest; cur != r.Start; cur = r.Parent[cur] {
		path = append(path, r.Via[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
