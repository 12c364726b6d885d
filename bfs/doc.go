// Package bfs provides breadth-first search over the transition table of an
// automaton (core.Table).
//
// What
//
//   - Explore states in non-decreasing distance (transition count) from a start state.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: state → distance from start
//   - Parent: state → predecessor in the BFS tree
//   - Via: state → symbol consumed on the tree edge
//   - Result.PathTo rebuilds the shortest input that reaches a state.
//
// Why
//
//   - Reachability checks: every live state must be reachable from start.
//   - Witness strings: the shortest input that lands on a given state.
//
// Determinism
//
//	core.Table.Outgoing returns transitions sorted by Symbol, and BFS enqueues
//	successors in that order, so the visit sequence and witness paths are
//	fully reproducible.
//
// Complexity (V = states, E = transitions)
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(table, start,
//	    bfs.WithContext(ctx),
//	    bfs.SkipState(table.Reject()),
//	)
//	path, err := res.PathTo(q)
//
// Errors
//
//   - ErrTableNil             if the table pointer is nil.
//   - ErrStartStateNotFound   if the start state does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for unreached states.
package bfs
