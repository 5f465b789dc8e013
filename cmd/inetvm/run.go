package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/inetvm/inet/internal/church"
	"github.com/inetvm/inet/internal/config"
	"github.com/inetvm/inet/internal/inet"
)

func newRunCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Evaluate one of the built-in demo scenarios and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, root, args[0])
		},
	}
	return cmd
}

func runScenario(cmd *cobra.Command, root *rootOptions, name string) error {
	build, err := lookupScenario(name)
	if err != nil {
		return err
	}
	cfg, err := root.resolve()
	if err != nil {
		return err
	}
	log := config.NewLogger(cfg)
	runID := uuid.Must(uuid.NewV7()).String()

	n := inet.NewNet(cfg.NetConfig())
	program, err := build(n)
	if err != nil {
		return fmt.Errorf("building %s: %w", name, err)
	}

	log.WithField("scenario", name).WithField("run_id", runID).Info("evaluating")
	value, stats, err := church.Run(context.Background(), n, program, cfg.Budget())
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s => %s\n", name, value)
	fmt.Fprintf(cmd.OutOrStdout(), "beta=%d dup=%d era=%d anni=%d arena=%d/%d\n",
		stats.BetaReductions, stats.Duplications, stats.Erasures, stats.Annihilations,
		n.ArenaLen(), n.ArenaCap())
	return nil
}
