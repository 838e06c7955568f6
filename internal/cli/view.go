// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/medalboard/internal/filter"
	"github.com/tomtom215/medalboard/internal/models"
	"github.com/tomtom215/medalboard/internal/query"
)

type viewOptions struct {
	year      int
	yearMin   int
	yearMax   int
	region    string
	n         int
	k         int
	bucket    int
	windowMin int
	windowMax int
	asJSON    bool
}

func newViewCmd(global *globalOptions) *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <kind>",
		Short: "Compute one view",
		Long: `Computes one view under the given filter and prints it.

A single --year takes precedence over --year-min/--year-max. A range with
only one end set is closed with the dataset's first or last year.`,
		Example: `  medalctl view top_athletes -n 5 --region norway
  medalctl view medal_timeseries -k 3 --window-min 1990 --json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, global, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.year, "year", 0, "select a single Games year")
	f.IntVar(&opts.yearMin, "year-min", 0, "first year of the range")
	f.IntVar(&opts.yearMax, "year-max", 0, "last year of the range")
	f.StringVar(&opts.region, "region", "", "select one region (case-insensitive)")
	f.IntVarP(&opts.n, "top", "n", 0, "rows for top_athletes and top_regions (default from config)")
	f.IntVarP(&opts.k, "teams", "k", 0, "teams for medal_timeseries (default from config)")
	f.IntVar(&opts.bucket, "bucket-width", 0, "age_histogram bin width (default from config)")
	f.IntVar(&opts.windowMin, "window-min", 0, "first year shown by medal_timeseries")
	f.IntVar(&opts.windowMax, "window-max", 0, "last year shown by medal_timeseries")
	f.BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	return cmd
}

func runView(cmd *cobra.Command, global *globalOptions, opts *viewOptions, name string) error {
	kind, err := query.ParseKind(name)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(kindNames(), ", "))
	}

	engine, err := loadEngine(cmd.Context(), global)
	if err != nil {
		return err
	}

	req := buildRequest(cmd, opts, kind, engine.FilterOptions())
	result, err := engine.View(cmd.Context(), req)
	if err != nil {
		return err
	}

	if opts.asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	printResult(cmd.OutOrStdout(), result)
	return nil
}

// buildRequest maps the flags that were actually set onto a request.
func buildRequest(cmd *cobra.Command, opts *viewOptions, kind query.Kind, bounds models.FilterOptions) query.Request {
	flags := cmd.Flags()
	req := query.Request{Kind: kind}

	if flags.Changed("year") {
		req.Filter = req.Filter.WithYear(opts.year)
	}
	if r := flagRange(cmd, "year-min", "year-max", opts.yearMin, opts.yearMax, bounds); r != nil {
		req.Filter = req.Filter.WithRange(r.Min, r.Max)
	}
	if flags.Changed("region") {
		req.Filter = req.Filter.WithRegion(opts.region)
	}

	req.Params = query.Params{
		N:           opts.n,
		K:           opts.k,
		BucketWidth: opts.bucket,
		Window:      flagRange(cmd, "window-min", "window-max", opts.windowMin, opts.windowMax, bounds),
	}
	return req
}

func flagRange(cmd *cobra.Command, minFlag, maxFlag string, lo, hi int, bounds models.FilterOptions) *filter.YearRange {
	flags := cmd.Flags()
	if !flags.Changed(minFlag) && !flags.Changed(maxFlag) {
		return nil
	}
	r := &filter.YearRange{Min: bounds.MinYear, Max: bounds.MaxYear}
	if flags.Changed(minFlag) {
		r.Min = lo
	}
	if flags.Changed(maxFlag) {
		r.Max = hi
	}
	return r
}

func printResult(w io.Writer, result *query.Result) {
	fmt.Fprintf(w, "%s (%s)\n", result.Kind, result.Filter)
	if result.Empty {
		fmt.Fprintln(w, "No records match the filter.")
		return
	}

	switch data := result.Data.(type) {
	case []models.AthleteMedals:
		for i, a := range data {
			fmt.Fprintf(w, "  %3d. %-40s %s  %d\n", i+1, a.Name, a.Sex, a.MedalCount)
		}
	case []models.RegionMedals:
		for i, r := range data {
			fmt.Fprintf(w, "  %3d. %-32s %d\n", i+1, r.Region, r.MedalCount)
		}
	case models.MedalTimeSeries:
		fmt.Fprintf(w, "  teams: %s\n", strings.Join(data.Teams, ", "))
		for _, p := range data.Points {
			fmt.Fprintf(w, "  %d  %-32s %d\n", p.Year, p.Team, p.MedalCount)
		}
	case []models.AgeBucket:
		for _, b := range data {
			fmt.Fprintf(w, "  %2d-%-2d %d\n", b.Start, b.End, b.Count)
		}
	case []models.CategoryCount:
		for _, c := range data {
			fmt.Fprintf(w, "  %-10s %d\n", c.Category, c.Count)
		}
	case []models.MapPoint:
		for _, p := range data {
			fmt.Fprintf(w, "  %9.4f %10.4f  %d\n", p.Latitude, p.Longitude, p.Count)
		}
	}
}

func kindNames() []string {
	kinds := query.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
