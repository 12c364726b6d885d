package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// Dump implements "adfa dump".
func Dump(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	snap := s.dfa.Dump()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	renderSnapshot(cmd.OutOrStdout(), snap)

	return nil
}
