// Package adaptabledfa builds deterministic finite automata online, one
// accepted string at a time, and classifies arbitrary input against them.
//
// What is AdaptableDFA?
//
//	A thread-safe library and command that brings together:
//		• Core storage: states in an arena, transitions keyed by (state, symbol)
//		• Online construction: prefix sharing, catch-all edges into a reject sink
//		• Classification: total over every input, with per-step traces
//		• Growth: novel strings drawn from a seeded generator
//		• Traversals: BFS (reachability, shortest input), DFS (language enumeration)
//
// Subpackages:
//
//	core/      Table, State, Transition and the Connect rules
//	dfa/       Automaton: construction, classification, validation, snapshots
//	bfs/       breadth-first search over a Table
//	dfs/       depth-first enumeration of accepted strings
//	generator/ random candidate strings over an alphabet
//	logging/   logrus logger construction
//	config/    viper-backed settings for the adfa command
//	cmd/adfa/  the command-line front end
//
// Quick ASCII example, seeds {"abc", "abcaa"}:
//
//	q_start ─a→ q_0 ─b→ q_1 ─c→ (q_2) ─a→ q_3 ─a→ (q_4)
//	                            q_2 ─b,c→ q_rej
//	                            q_4 ─a,b,c→ q_rej
//
// Parenthesized states accept. q_2 first got a catch-all on "a" into q_rej;
// adding "abcaa" repointed that edge to the fresh q_3.
//
//	go install github.com/LadyLoBentley/AdaptableDFA/cmd/adfa@latest
package adaptabledfa
