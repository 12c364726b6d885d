// Package generator produces random candidate strings over an alphabet.
//
// Generate(alphabet, length) draws each position uniformly from the alphabet.
// Candidate(alphabet) first draws a length from the configured range, so a
// *Generator can feed Automaton.AddNovelString directly. Neither call
// deduplicates; uniqueness is the caller's concern.
//
// A Generator is not safe for concurrent use: *rand.Rand is unsynchronized.
package generator

import "github.com/LadyLoBentley/AdaptableDFA/core"

// Generator draws random strings from a seeded or clock-seeded RNG.
type Generator struct {
	cfg config
}

// New creates a Generator with the given options.
func New(opts ...Option) *Generator {
	return &Generator{cfg: newConfig(opts...)}
}

// Generate returns a string of exactly length symbols drawn uniformly from
// alphabet. An empty alphabet or a non-positive length yields "".
// Complexity: O(length).
func (g *Generator) Generate(alphabet []core.Symbol, length int) string {
	if len(alphabet) == 0 || length <= 0 {
		return ""
	}
	out := make([]rune, length)
	for i := range out {
		out[i] = rune(alphabet[g.cfg.rng.Intn(len(alphabet))])
	}

	return string(out)
}

// Length draws a string length from the configured inclusive range.
func (g *Generator) Length() int {
	span := g.cfg.maxLength - g.cfg.minLength + 1

	return g.cfg.minLength + g.cfg.rng.Intn(span)
}

// Candidate draws a length with Length and generates a string of that size.
func (g *Generator) Candidate(alphabet []core.Symbol) string {
	return g.Generate(alphabet, g.Length())
}

// Bounds reports the configured inclusive length range.
func (g *Generator) Bounds() (min, max int) {
	return g.cfg.minLength, g.cfg.maxLength
}
