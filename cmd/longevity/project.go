// ABOUTME: CLI command projecting remaining lifespan and battery percentage.
// ABOUTME: Compares adjusted years against actuarial baseline and optimal habits.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/actuarial"
	"github.com/harperreed/longevity/internal/engine"
	"github.com/spf13/cobra"
)

var projectDays int

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"p"},
	Short:   "Project your remaining lifespan",
	Long: `Project remaining life expectancy from your profile and current metrics.

The baseline comes from an actuarial period life table for your age and
gender. Your metric impacts shift that baseline up or down, and the result
is compared against the best-possible version of your habits to fill the
life battery:

  battery % = adjusted years remaining / optimal years remaining

Requires a profile: longevity profile set --birth-year YYYY

EXAMPLES:

  longevity project
  longevity project --days 90   # Only consider readings from the last 90 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if profile == nil {
			return fmt.Errorf("no profile set: run 'longevity profile set --birth-year YYYY' first")
		}

		agg, err := currentImpact(projectDays)
		if err != nil {
			return err
		}

		calc := engine.NewCalculator(engine.DefaultCoefficients())
		projector := engine.NewProjector(actuarial.NewTable(), calc)
		proj := projector.Project(agg, *profile, time.Now())

		pct := proj.ProjectionPercentage * 100
		fmt.Printf("Life battery: %s %s\n", batteryBar(proj.ProjectionPercentage), color.New(color.Bold).Sprintf("%.0f%%", pct))
		fmt.Println()
		fmt.Printf("  Age:              %d\n", proj.CurrentAge)
		fmt.Printf("  Baseline years:   %.1f\n", proj.BaselineYearsRemaining)
		fmt.Printf("  Adjusted years:   %.1f\n", proj.AdjustedYearsRemaining)
		fmt.Printf("  Optimal years:    %.1f\n", proj.OptimalYearsRemaining)

		gain := engine.GainPercent(proj.AdjustedYearsRemaining, proj.OptimalYearsRemaining)
		if gain > 0 {
			fmt.Println()
			color.Cyan("Optimal habits could extend your remaining years by %.0f%%.", gain*100)
		}

		return nil
	},
}

// batteryBar renders a 20-cell battery gauge for a [0,1] fill fraction.
func batteryBar(fill float64) string {
	const cells = 20
	filled := int(fill*cells + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > cells {
		filled = cells
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
	switch {
	case fill >= 0.8:
		return color.GreenString("[%s]", bar)
	case fill >= 0.5:
		return color.YellowString("[%s]", bar)
	default:
		return color.RedString("[%s]", bar)
	}
}

func init() {
	projectCmd.Flags().IntVar(&projectDays, "days", 0, "only consider readings from the last N days")
	rootCmd.AddCommand(projectCmd)
}
