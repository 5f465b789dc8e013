package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/inetvm/inet/internal/church"
	"github.com/inetvm/inet/internal/config"
	"github.com/inetvm/inet/internal/inet"
	"github.com/inetvm/inet/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func newBenchCommand(root *rootOptions) *cobra.Command {
	var repeat int
	cmd := &cobra.Command{
		Use:   "bench <scenario>",
		Short: "Run a scenario repeatedly and report wall time and reduction counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, root, args[0], repeat)
		},
	}
	cmd.Flags().IntVar(&repeat, "repeat", 10, "number of fresh nets to evaluate")
	return cmd
}

func runBench(cmd *cobra.Command, root *rootOptions, name string, repeat int) error {
	build, err := lookupScenario(name)
	if err != nil {
		return err
	}
	cfg, err := root.resolve()
	if err != nil {
		return err
	}
	log := config.NewLogger(cfg)

	reg := prometheus.NewRegistry()
	collectors := metrics.New(reg)

	var total inet.Statistics
	start := time.Now()
	for i := 0; i < repeat; i++ {
		runID := uuid.Must(uuid.NewV7()).String()
		n := inet.NewNet(cfg.NetConfig())
		program, err := build(n)
		if err != nil {
			return fmt.Errorf("building %s: %w", name, err)
		}
		_, stats, err := church.Run(context.Background(), n, program, cfg.Budget())
		if err != nil {
			return fmt.Errorf("evaluating %s (run %d, id %s): %w", name, i, runID, err)
		}
		total.BetaReductions += stats.BetaReductions
		total.Duplications += stats.Duplications
		total.Erasures += stats.Erasures
		total.Annihilations += stats.Annihilations
		collectors.Observe(stats.BetaReductions, stats.Duplications, stats.Erasures, stats.Annihilations, n.ArenaLen())
	}
	elapsed := time.Since(start)

	log.WithField("scenario", name).WithField("runs", repeat).Info("bench complete")
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d runs in %s (%.1f runs/s)\n", name, repeat, elapsed, float64(repeat)/elapsed.Seconds())
	fmt.Fprintf(cmd.OutOrStdout(), "totals: beta=%d dup=%d era=%d anni=%d\n",
		total.BetaReductions, total.Duplications, total.Erasures, total.Annihilations)
	return nil
}
