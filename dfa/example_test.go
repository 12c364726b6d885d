package dfa_test

import (
	"fmt"

	"github.com/LadyLoBentley/AdaptableDFA/dfa"
)

func ExampleAutomaton_Classify() {
	a, _ := dfa.New([]string{"abc", "acb", "bcb", "abcaa"})
	for _, in := range []string{"abc", "abcaa", "ab", "cba"} {
		v, _ := a.Classify(in)
		fmt.Println(in, v)
	}
	fmt.Println(a.StateCount(), a.TransitionCount())
	// Output:
	// abc accept
	// abcaa accept
	// ab reject
	// cba reject
	// 12 24
}

func ExampleAutomaton_Trace() {
	a, _ := dfa.New([]string{"ab"})
	tr, _ := a.Trace("abb")
	for _, st := range tr.Steps {
		fmt.Printf("%s --%s--> %s\n", st.FromLabel, st.Symbol, st.ToLabel)
	}
	fmt.Println(tr.Verdict)
	// Output:
	// q_start --a--> q_0
	// q_0 --b--> q_1
	// q_1 --b--> q_rej
	// reject
}
