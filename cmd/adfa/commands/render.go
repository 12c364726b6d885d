/*
File: render.go
Description: Text rendering of automaton snapshots and classification traces.
*/

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/LadyLoBentley/AdaptableDFA/dfa"
)

const rule = "------------------------------------------------------------------------------"

// renderSnapshot prints every state with its outgoing edges, then the reject
// sink with one self-loop per alphabet symbol.
func renderSnapshot(w io.Writer, snap dfa.Snapshot) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "DFA States and Transitions:")
	for _, st := range snap.States {
		if st.ID == snap.Reject {
			continue
		}
		status := "Non-Final"
		if st.Accepting {
			status = "Final"
		}
		fmt.Fprintf(w, "State: %s (%s)\n", st.Label, status)
		for _, tr := range st.Outgoing {
			fmt.Fprintf(w, "\t--[ %s ]--> %s\n", tr.Symbol, snap.Label(tr.To))
		}
		fmt.Fprintln(w)
	}

	rej := snap.Label(snap.Reject)
	fmt.Fprintf(w, "Reject State: %s\n", rej)
	for _, tr := range snap.RejectLoops {
		fmt.Fprintf(w, "\t--[ %s ]--> %s\t(self-loop)\n", tr.Symbol, rej)
	}
	fmt.Fprintln(w, rule)
}

// renderTrace prints one classification walk step by step.
func renderTrace(w io.Writer, tr *dfa.Trace) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Processing the string: %q\n", tr.Input)
	for _, st := range tr.Steps {
		fmt.Fprintf(w, "Current State: %s, Input: %s\n", st.FromLabel, st.Symbol)
		if st.Fallback {
			fmt.Fprintln(w, "No transition is found, moving to the reject State.")
			continue
		}
		fmt.Fprintf(w, "--> Next State: %s\n", st.ToLabel)
	}
	if tr.Verdict == dfa.Accept {
		fmt.Fprintf(w, "Final State: %s (Accepting). The string is accepted.\n", tr.FinalLabel)
	} else {
		fmt.Fprintf(w, "Final State: %s (Non-Accepting). The string is rejected.\n", tr.FinalLabel)
	}
	fmt.Fprintln(w, rule)
}

// renderVerdict prints the one-line form used without --trace.
func renderVerdict(w io.Writer, input string, v dfa.Verdict) {
	fmt.Fprintf(w, "%-12q %s\n", input, strings.ToUpper(v.String()))
}
