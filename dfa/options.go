package dfa

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/LadyLoBentley/AdaptableDFA/logging"
)

// DefaultMaxAttempts bounds AddNovelString draws.
const DefaultMaxAttempts = 1000

// Option configures an Automaton at construction time.
// Option constructors panic on meaningless inputs; automaton operations never do.
type Option func(*options)

type options struct {
	logger      logrus.FieldLogger
	label       LabelFn
	strict      bool
	maxAttempts int
}

func defaultOptions() options {
	return options{
		logger:      logging.Discard(),
		label:       DefaultLabel,
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithLogger routes construction events to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("dfa: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithStateLabels sets the naming scheme for minted states. Panics on nil.
func WithStateLabels(fn LabelFn) Option {
	if fn == nil {
		panic("dfa: WithStateLabels(nil)")
	}
	return func(o *options) {
		o.label = fn
	}
}

// WithStrictInvariants re-runs Validate after every mutation and fails the
// mutation with ErrInvariant if any check breaks.
func WithStrictInvariants() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithMaxAttempts bounds the number of candidates AddNovelString draws.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("dfa: WithMaxAttempts(%d)", n))
	}
	return func(o *options) {
		o.maxAttempts = n
	}
}
