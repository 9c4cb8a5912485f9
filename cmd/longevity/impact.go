// ABOUTME: CLI command showing the per-metric lifespan impact breakdown.
// ABOUTME: Aggregates latest readings into minutes of life per day.
package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/engine"
	"github.com/harperreed/longevity/internal/models"
	"github.com/spf13/cobra"
)

var impactDays int

var impactCmd = &cobra.Command{
	Use:     "impact",
	Aliases: []string{"i"},
	Short:   "Show lifespan impact of your current metrics",
	Long: `Show how many minutes of life expectancy per day each metric is adding
or taking away, based on your latest reading for each kind.

Only the most recent reading per kind counts; metrics you haven't answered
are left out of the total rather than assumed.

EXAMPLES:

  longevity impact              # Impact from all readings
  longevity impact --days 30    # Only consider readings from the last 30 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := currentImpact(impactDays)
		if err != nil {
			return err
		}

		if len(agg.Breakdown) == 0 {
			fmt.Println("No readings yet. Record some with 'longevity answer' or 'longevity add'.")
			return nil
		}

		printBreakdown(agg)

		fmt.Println()
		total := fmt.Sprintf("%+.1f min/day", agg.TotalMinutesPerDay)
		if agg.TotalMinutesPerDay >= 0 {
			color.Green("Total: %s (≈ %+.1f hours/month)", total, agg.HoursPerMonth())
		} else {
			color.Red("Total: %s (≈ %+.1f hours/month)", total, agg.HoursPerMonth())
		}

		return nil
	},
}

// currentImpact aggregates the stored readings, optionally restricted to
// the last N days.
func currentImpact(days int) (models.AggregateImpact, error) {
	readings, err := repo.ListReadings(nil, 0)
	if err != nil {
		return models.AggregateImpact{}, fmt.Errorf("failed to list readings: %w", err)
	}

	period := engine.Period{}
	if days > 0 {
		period = engine.LastDays(days, time.Now())
	}

	calc := engine.NewCalculator(engine.DefaultCoefficients())
	return calc.TotalImpact(readings, period), nil
}

func printBreakdown(agg models.AggregateImpact) {
	kinds := make([]models.MetricKind, 0, len(agg.Breakdown))
	for k := range agg.Breakdown {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return agg.Breakdown[kinds[i]].MinutesPerDay > agg.Breakdown[kinds[j]].MinutesPerDay
	})

	faint := color.New(color.Faint)
	for _, k := range kinds {
		r := agg.Breakdown[k]
		line := fmt.Sprintf("%s %+7.1f min/day", padRight(string(k), 18), r.MinutesPerDay)
		if r.MinutesPerDay >= 0 {
			color.Green("  %s", line)
		} else {
			color.Red("  %s", line)
		}
		if r.Recommendation != "" && r.MinutesPerDay < 0 {
			fmt.Printf("  %s\n", faint.Sprintf("  → %s", r.Recommendation))
		}
	}
}

func init() {
	impactCmd.Flags().IntVar(&impactDays, "days", 0, "only consider readings from the last N days")
	rootCmd.AddCommand(impactCmd)
}
