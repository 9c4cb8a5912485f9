// ABOUTME: CLI command computing the preliminary 0-100 display score.
// ABOUTME: Classifies the latest reading per kind into a level and sums bonuses.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/engine"
	"github.com/harperreed/longevity/internal/models"
	"github.com/harperreed/longevity/internal/resolve"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the preliminary 0-100 score",
	Long: `Show a quick 0-100 display score from your latest answer per metric.

The score starts at 50 and each healthy answer adds its metric's bonus;
unhealthy answers subtract it. Unanswered metrics contribute nothing.
This is a coarse first impression; 'longevity impact' and 'longevity
project' give the real picture.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := make(map[models.MetricKind]models.Level)
		for _, kind := range models.AllMetricKinds {
			latest, err := repo.GetLatestReading(kind)
			if err != nil || latest == nil {
				continue
			}
			answers[kind] = levelOfReading(latest)
		}

		score := engine.PreliminaryScore(answers)

		bold := color.New(color.Bold)
		switch {
		case score >= 75:
			bold.Println(color.GreenString("Score: %d / 100", score))
		case score >= 50:
			bold.Println(color.YellowString("Score: %d / 100", score))
		default:
			bold.Println(color.RedString("Score: %d / 100", score))
		}

		if len(answers) == 0 {
			fmt.Println("No readings yet; the score is the neutral baseline.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, kind := range models.AllMetricKinds {
			level, ok := answers[kind]
			if !ok {
				continue
			}
			fmt.Printf("  %s %s\n", padRight(string(kind), 18), faint.Sprint(level))
		}

		return nil
	},
}

// levelOfReading classifies a stored reading into a level, preferring the
// original categorical label when one was recorded.
func levelOfReading(r *models.MetricReading) models.Level {
	if r.RawLabel != nil && *r.RawLabel != "" {
		if level := resolve.ParseLevel(r.Kind, *r.RawLabel); level != models.LevelUnknown {
			return level
		}
	}
	return resolve.LevelFromValue(r.Kind, r.Value)
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
