package dfa_test

import (
	"testing"
	"unicode/utf8"

	"github.com/LadyLoBentley/AdaptableDFA/dfa"
)

// FuzzClassifySoundness checks a two-word automaton accepts exactly its
// words and keeps its invariants.
func FuzzClassifySoundness(f *testing.F) {
	f.Add("abc", "abcaa", "abca")
	f.Add("", "a", "")
	f.Add("ab", "ab", "b")
	f.Add("héllo", "日本", "hé")

	f.Fuzz(func(t *testing.T, first, second, probe string) {
		if !utf8.ValidString(first) || !utf8.ValidString(second) || len(first)+len(second) > 256 {
			return
		}

		a, err := dfa.New([]string{first, second}, dfa.WithStrictInvariants())
		if err != nil {
			t.Fatalf("New(%q, %q): %v", first, second, err)
		}
		if !a.Accepts(first) || !a.Accepts(second) {
			t.Fatalf("seeds %q, %q not accepted", first, second)
		}

		want := probe == first || probe == second
		got, err := a.Classify(probe)
		if !utf8.ValidString(probe) {
			if err == nil {
				t.Fatalf("Classify(%q): expected error", probe)
			}
			return
		}
		if err != nil {
			t.Fatalf("Classify(%q): %v", probe, err)
		}
		if (got == dfa.Accept) != want {
			t.Fatalf("Classify(%q) = %s with seeds %q, %q", probe, got, first, second)
		}
	})
}
