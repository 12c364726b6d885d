package commands

import (
	"github.com/spf13/cobra"
)

// Classify implements "adfa classify".
func Classify(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	trace, _ := cmd.Flags().GetBool("trace")
	out := cmd.OutOrStdout()

	for _, in := range args {
		if trace {
			tr, err := s.dfa.Trace(in)
			if err != nil {
				return err
			}
			renderTrace(out, tr)
			continue
		}
		v, err := s.dfa.Classify(in)
		if err != nil {
			return err
		}
		renderVerdict(out, in, v)
	}

	return nil
}
