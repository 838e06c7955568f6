// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/medalboard/internal/config"
	"github.com/tomtom215/medalboard/internal/dataset"
	"github.com/tomtom215/medalboard/internal/logging"
	"github.com/tomtom215/medalboard/internal/query"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	athletes   string
	regions    string
	logLevel   string
}

// NewRootCmd builds the medalctl command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "medalctl",
		Short: "Query Olympic medal views from the command line",
		Long: `medalctl loads the athlete events and NOC region tables and prints
the same filter-aware views the Medalboard API serves.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Init(logging.Config{
				Level:  opts.logLevel,
				Format: logging.FormatConsole,
				Output: cmd.ErrOrStderr(),
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a config file (default: $CONFIG_PATH or ./config.yaml)")
	flags.StringVar(&opts.athletes, "athletes", "", "athlete events CSV (overrides config)")
	flags.StringVar(&opts.regions, "regions", "", "NOC regions CSV (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(newViewCmd(opts), newKindsCmd(), newOptionsCmd(opts))
	return root
}

// loadEngine reads the configuration, ingests the dataset and returns an
// engine over it.
func loadEngine(ctx context.Context, opts *globalOptions) (*query.Engine, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.athletes != "" {
		cfg.Dataset.AthletesPath = opts.athletes
	}
	if opts.regions != "" {
		cfg.Dataset.RegionsPath = opts.regions
	}

	store, err := dataset.Build(ctx, cfg.Dataset.AthletesPath, cfg.Dataset.RegionsPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	return query.NewEngine(store, query.Options{
		Defaults: query.Defaults{
			TopN:        cfg.Query.DefaultTopN,
			TopK:        cfg.Query.DefaultTopK,
			BucketWidth: cfg.Query.DefaultBucketWidth,
		},
	}), nil
}
