package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Language implements "adfa language". Strings come from walking the
// transition table, so the output cross-checks the recorded language.
func Language(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	words, err := s.dfa.Enumerate(cmd.Context(), limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, w := range words {
		fmt.Fprintf(out, "%q\n", w)
	}
	s.log.WithField("count", len(words)).Debug("language enumerated")

	return nil
}
