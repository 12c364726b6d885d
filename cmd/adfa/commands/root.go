/*
File: root.go
Description: Command tree of adfa. Persistent flags carry the settings every
subcommand needs (seeds, logging, strictness); run-specific flags live on
their own subcommand. All flags are resolved through config.Load.
*/

package commands

import (
	"github.com/spf13/cobra"

	"github.com/LadyLoBentley/AdaptableDFA/config"
)

// NewRootCommand assembles the adfa command tree.
func NewRootCommand() *cobra.Command {
	d := config.Default()

	rootCmd := &cobra.Command{
		Use:   "adfa",
		Short: "Adaptable DFA - build, inspect and grow a DFA from accepted strings",
		Long: `adfa builds a deterministic finite automaton online from a set of seed
strings, classifies arbitrary input against it, and extends it with randomly
generated strings that are not yet in its language.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Configuration file path (yaml, json or toml)")
	pf.StringSlice("seeds", d.Seeds, "Accepted strings the automaton is built from")
	pf.String("log-level", d.Log.Level, "Logging level (debug, info, warn, error)")
	pf.String("log-format", d.Log.Format, "Log format (text, json)")
	pf.Bool("strict", d.Strict, "Re-validate invariants after every mutation")
	pf.Int("max-attempts", d.Generator.MaxAttempts, "Draws allowed per novel string")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full demonstration",
		Long: `Build the automaton from the seeds, display it, classify the seeds and the
probe strings, then add novel strings one at a time, displaying the automaton
and classifying each new string after it is added.`,
		Args: cobra.NoArgs,
		RunE: RunDemo,
	}
	runCmd.Flags().StringSlice("probes", d.Probes, "Strings to classify after the seeds")
	runCmd.Flags().Int("additions", d.Additions, "Number of novel strings to add")
	runCmd.Flags().Int64("seed", d.Generator.Seed, "Generator seed (0 seeds from the clock)")
	runCmd.Flags().Int("min-length", d.Generator.MinLength, "Shortest generated string")
	runCmd.Flags().Int("max-length", d.Generator.MaxLength, "Longest generated string")
	rootCmd.AddCommand(runCmd)

	classifyCmd := &cobra.Command{
		Use:   "classify [strings...]",
		Short: "Classify strings against the seeded automaton",
		Args:  cobra.MinimumNArgs(1),
		RunE:  Classify,
	}
	classifyCmd.Flags().Bool("trace", false, "Print every step of each walk")
	rootCmd.AddCommand(classifyCmd)

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Display states and transitions",
		Args:  cobra.NoArgs,
		RunE:  Dump,
	}
	dumpCmd.Flags().Bool("json", false, "Emit the snapshot as JSON")
	rootCmd.AddCommand(dumpCmd)

	languageCmd := &cobra.Command{
		Use:   "language",
		Short: "List the accepted strings read back from the transition table",
		Args:  cobra.NoArgs,
		RunE:  Language,
	}
	languageCmd.Flags().Int("limit", -1, "Longest string to enumerate (-1 for no bound)")
	rootCmd.AddCommand(languageCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "inspect",
		Short: "Show depth and shortest input reaching every live state",
		Args:  cobra.NoArgs,
		RunE:  Inspect,
	})

	return rootCmd
}
