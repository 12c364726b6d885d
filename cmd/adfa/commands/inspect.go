package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LadyLoBentley/AdaptableDFA/bfs"
	"github.com/LadyLoBentley/AdaptableDFA/core"
	"github.com/LadyLoBentley/AdaptableDFA/dfa"
)

// Inspect implements "adfa inspect": breadth-first over the live states,
// printing each state's depth and the shortest input that reaches it.
func Inspect(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	t := s.dfa.Table()

	res, err := bfs.BFS(t, s.dfa.Start(), bfs.WithContext(cmd.Context()), bfs.SkipState(s.dfa.Reject()))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-10s %-6s %-9s %s\n", "STATE", "DEPTH", "ACCEPTING", "SHORTEST INPUT")
	for _, id := range res.Order {
		path, err := res.PathTo(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-10s %-6d %-9t %q\n", t.Label(id), res.Depth[id], t.Accepting(id), core.Word(path))
	}
	if err := s.dfa.Validate(); err != nil {
		for _, v := range dfa.Violations(err) {
			fmt.Fprintf(out, "violation: %v\n", v)
		}
		return err
	}

	return nil
}
