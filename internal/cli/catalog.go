// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the view kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range kindNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newOptionsCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show the regions and year range available for filtering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := loadEngine(cmd.Context(), global)
			if err != nil {
				return err
			}
			opts := engine.FilterOptions()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Years:   %d-%d\n", opts.MinYear, opts.MaxYear)
			fmt.Fprintf(out, "Regions: %d\n", len(opts.Regions))
			fmt.Fprintf(out, "  %s\n", strings.Join(opts.Regions, "\n  "))
			return nil
		},
	}
}
