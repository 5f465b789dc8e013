package main

import (
	"github.com/spf13/cobra"

	"github.com/inetvm/inet/internal/config"
)

// rootOptions holds the flags every subcommand shares.
type rootOptions struct {
	configPath string
	workers    int
	arenaWords uint64
	maxSteps   uint64
	logLevel   string
	logFormat  string
}

func (o *rootOptions) resolve() (config.Config, error) {
	cfg, err := config.Load(o.configPath, config.Default())
	if err != nil {
		return cfg, err
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	if o.arenaWords > 0 {
		cfg.ArenaCapacity = o.arenaWords
	}
	if o.maxSteps > 0 {
		cfg.MaxSteps = o.maxSteps
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "inetvm",
		Short:         "inetvm runs Church-encoded lambda terms on an interaction-combinator net",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().IntVar(&opts.workers, "workers", 0, "worker goroutines (0 = config default)")
	cmd.PersistentFlags().Uint64Var(&opts.arenaWords, "arena-words", 0, "arena capacity in words (0 = config default)")
	cmd.PersistentFlags().Uint64Var(&opts.maxSteps, "max-steps", 0, "step budget for Evaluate (0 = config default; a budget of 0 is unbounded)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "logrus level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "text|json")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newBenchCommand(opts))
	cmd.AddCommand(newVisualizeCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}
