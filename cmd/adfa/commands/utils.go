/*
File: utils.go
Description: Shared setup for adfa commands: configuration loading, logger
construction and automaton building.
*/

package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LadyLoBentley/AdaptableDFA/config"
	"github.com/LadyLoBentley/AdaptableDFA/dfa"
	"github.com/LadyLoBentley/AdaptableDFA/logging"
)

// session bundles what every command needs.
type session struct {
	cfg *config.Config
	log *logrus.Entry
	dfa *dfa.Automaton
}

// setup loads configuration, builds the logger and the seeded automaton.
func setup(cmd *cobra.Command) (*session, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}

	lc := cfg.LoggingConfig()
	lc.Output = cmd.ErrOrStderr()
	logger, err := logging.New(lc)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	log := logger.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"command": cmd.Name(),
	})

	a, err := dfa.New(cfg.Seeds, cfg.AutomatonOptions(log)...)
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	log.WithFields(logrus.Fields{
		"seeds":       len(cfg.Seeds),
		"states":      a.StateCount(),
		"transitions": a.TransitionCount(),
	}).Info("automaton ready")

	return &session{cfg: cfg, log: log, dfa: a}, nil
}
