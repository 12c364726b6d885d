// Package dfa builds a deterministic finite automaton online, one accepted
// string at a time, and classifies arbitrary input against it.
//
// The automaton starts with two states, q_start and the reject sink q_rej.
// Adding a string walks it from q_start:
//
//   - an existing real edge is followed (prefixes are shared);
//   - a missing edge, or a placeholder edge into reject, gets a fresh state;
//   - the last state of the walk is promoted to accepting;
//   - the landing state then gets a catch-all edge into reject for every
//     alphabet symbol it has no real edge for.
//
// Adding the empty string promotes q_start itself.
//
// Classification follows existing edges and settles on reject when an edge
// is missing, so unregistered symbols are rejected without error.
// The reject sink loops onto itself on every alphabet symbol.
//
// Example, seeds {"ab"}:
//
//	q_start --a--> q_0 --b--> q_1(accept)
//	q_1 --a,b--> q_rej
//	q_rej --a,b--> q_rej
//
// "b" has no edge from q_start and is rejected by fallback.
//
// Concurrency: one writer at a time (AddAcceptedString, RegisterSymbol,
// AddNovelString); any number of readers (Classify, Trace, Dump, Validate,
// Enumerate) while no write is in flight.
//
// Errors:
//
//	ErrInvalidSymbol  – input not valid UTF-8 / symbol not a code point
//	ErrInvariant      – structural fault, wraps the core error
//	ErrNoNovelString  – AddNovelString attempt budget spent
//	ErrNilSource      – AddNovelString without a Source
package dfa
