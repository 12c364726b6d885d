/*
File: run.go
Description: The demonstration flow: build, display, classify seeds and
probes, then grow the automaton with novel strings.
*/

package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LadyLoBentley/AdaptableDFA/generator"
)

// RunDemo implements "adfa run".
func RunDemo(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	renderSnapshot(out, s.dfa.Dump())
	for _, in := range append(append([]string(nil), s.cfg.Seeds...), s.cfg.Probes...) {
		tr, err := s.dfa.Trace(in)
		if err != nil {
			return err
		}
		renderTrace(out, tr)
	}

	gen := generator.New(s.cfg.GeneratorOptions()...)
	for i := 0; i < s.cfg.Additions; i++ {
		str, err := s.dfa.AddNovelString(gen)
		if err != nil {
			return fmt.Errorf("addition %d: %w", i+1, err)
		}
		fmt.Fprintf(out, "%q is added to the language!\n", str)
		renderSnapshot(out, s.dfa.Dump())
		tr, err := s.dfa.Trace(str)
		if err != nil {
			return err
		}
		renderTrace(out, tr)
	}

	s.log.WithFields(logrus.Fields{
		"additions": s.cfg.Additions,
		"language":  len(s.dfa.Language()),
		"states":    s.dfa.StateCount(),
	}).Info("demo finished")

	return nil
}
