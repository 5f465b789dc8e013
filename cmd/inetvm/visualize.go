package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inetvm/inet/internal/church"
	"github.com/inetvm/inet/internal/inet"
)

func newVisualizeCommand(root *rootOptions) *cobra.Command {
	var out string
	var reduce bool
	cmd := &cobra.Command{
		Use:   "visualize <scenario>",
		Short: "Emit a Graphviz DOT graph of a scenario, before or after reduction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisualize(cmd, root, args[0], out, reduce)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write DOT to this file instead of stdout")
	cmd.Flags().BoolVar(&reduce, "reduce", false, "reduce to normal form before rendering")
	return cmd
}

func runVisualize(cmd *cobra.Command, root *rootOptions, name, out string, reduce bool) error {
	build, err := lookupScenario(name)
	if err != nil {
		return err
	}
	cfg, err := root.resolve()
	if err != nil {
		return err
	}

	n := inet.NewNet(cfg.NetConfig())
	program, err := build(n)
	if err != nil {
		return fmt.Errorf("building %s: %w", name, err)
	}
	if reduce {
		if _, err := n.Evaluate(context.Background(), cfg.Budget()); err != nil {
			return fmt.Errorf("evaluating %s: %w", name, err)
		}
	}

	dot := n.Visualize(church.Resolve(n, program))
	if out == "" {
		fmt.Fprint(cmd.OutOrStdout(), dot)
		return nil
	}
	return os.WriteFile(out, []byte(dot), 0o644)
}
