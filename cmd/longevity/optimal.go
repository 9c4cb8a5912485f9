// ABOUTME: CLI command showing the best-possible metric set and its impact.
// ABOUTME: Lists per-kind optimal targets and the resulting projection ceiling.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/actuarial"
	"github.com/harperreed/longevity/internal/catalog"
	"github.com/harperreed/longevity/internal/engine"
	"github.com/harperreed/longevity/internal/models"
	"github.com/spf13/cobra"
)

var optimalCmd = &cobra.Command{
	Use:   "optimal",
	Short: "Show optimal metric targets",
	Long: `Show the best-possible value for each metric and the total lifespan
impact of hitting all of them. With a profile set, also shows the
optimal-case years remaining, the ceiling the life battery measures
against.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Optimal targets:")
		for _, kind := range models.AllMetricKinds {
			fmt.Printf("  %s %6.1f %s\n",
				padRight(string(kind), 18),
				catalog.OptimalOf(kind),
				models.KindUnits[kind])
		}

		profile, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		var p models.UserProfile
		if profile != nil {
			p = *profile
		}

		now := time.Now()
		calc := engine.NewCalculator(engine.DefaultCoefficients())
		optimal := calc.TotalImpact(engine.OptimalReadingsFor(p, now), engine.Period{})

		fmt.Println()
		color.Green("Optimal impact: %+.1f min/day (≈ %+.1f hours/month)",
			optimal.TotalMinutesPerDay, optimal.HoursPerMonth())

		if profile != nil {
			projector := engine.NewProjector(actuarial.NewTable(), calc)
			proj := projector.Project(optimal, *profile, now)
			fmt.Printf("Optimal years remaining at age %d: %.1f\n",
				proj.CurrentAge, proj.OptimalYearsRemaining)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(optimalCmd)
}
