// Package dfs defines types and options for depth-first enumeration of the
// strings an automaton accepts.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

var (
	// ErrTableNil is returned when a nil *core.Table is passed to Enumerate.
	ErrTableNil = errors.New("dfs: table is nil")

	// ErrStartStateNotFound indicates that the start handle does not exist.
	ErrStartStateNotFound = errors.New("dfs: start state not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrCycleDetected indicates the live part of the automaton loops, so the
	// accepted language is infinite and MaxDepth must bound the walk.
	ErrCycleDetected = errors.New("dfs: cycle detected without depth limit")
)

// Option configures optional behavior of Enumerate.
type Option func(*Options)

// Options holds configurable parameters for enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnAccept, if non-nil, is invoked for every accepted string found.
	// Returning an error aborts the walk with that error.
	OnAccept func(word []core.Symbol) error

	// MaxDepth, if non-negative, limits the length of enumerated strings.
	// Default is -1 (no limit).
	MaxDepth int

	// Skip lists states the walk never enters (typically the reject sink).
	Skip map[core.StateID]bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and nothing skipped.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		Skip:     make(map[core.StateID]bool),
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

// WithOnAccept registers a callback run for each accepted string.
// The slice is only valid for the duration of the call.
func WithOnAccept(fn func(word []core.Symbol) error) Option {
	return func(o *Options) {
		o.OnAccept = fn
	}
}

// WithMaxDepth bounds enumerated string length; negative values are rejected.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithSkipState prevents the walk from entering id.
func WithSkipState(id core.StateID) Option {
	return func(o *Options) {
		o.Skip[id] = true
	}
}

// Result holds the outcome of an enumeration.
type Result struct {
	// Words are the accepted strings in lexicographic symbol order.
	Words []string

	// Visited counts state entries along all explored paths.
	Visited int

	// Truncated reports that MaxDepth cut at least one path short.
	Truncated bool
}
