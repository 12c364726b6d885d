// SPDX-License-Identifier: MIT
// Package: AdaptableDFA/dfa
//
// errors.go: sentinel errors for the dfa package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the call site.
//   • "string not in language" is a Reject verdict, never an error.

package dfa

import "errors"

// ErrInvalidSymbol indicates input outside the character domain: a string
// that is not valid UTF-8, or a Symbol that is not a valid code point.
var ErrInvalidSymbol = errors.New("dfa: invalid symbol")

// ErrInvariant indicates a structural invariant of the automaton broke
// (for example two targets for one (state, symbol) pair). It wraps the
// underlying core error and signals a programming fault, not bad input.
var ErrInvariant = errors.New("dfa: invariant violated")

// ErrNoNovelString indicates AddNovelString exhausted its attempt budget
// without drawing a string outside the language.
var ErrNoNovelString = errors.New("dfa: no novel string found")

// ErrNilSource indicates AddNovelString was called without a Source.
var ErrNilSource = errors.New("dfa: source is nil")
