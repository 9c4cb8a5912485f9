// ABOUTME: CLI command for recording categorical lifestyle answers.
// ABOUTME: Resolves free-text labels to calibrated values via the level resolver.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/models"
	"github.com/harperreed/longevity/internal/resolve"
	"github.com/spf13/cobra"
)

var answerAt string

var answerCmd = &cobra.Command{
	Use:     "answer <kind> <label>",
	Aliases: []string{"ans"},
	Short:   "Record a categorical lifestyle answer",
	Long: `Record a categorical answer for a metric. The label is matched against
the metric's keyword rules and converted to a calibrated value on the
metric's native scale.

Labels are free text, so onboarding-style answers work directly:

  longevity answer smoking "Never smoked"
  longevity answer stress "Overwhelmed most days"
  longevity answer bp_systolic "130-139 (Stage 1 hypertension)"
  longevity answer alcohol never

An answer that can't be classified is reported and nothing is recorded;
unknown never means zero.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMetricKind(args[0]) {
			return fmt.Errorf("unknown metric kind: %s\nValid kinds: %s", args[0], kindList())
		}
		kind := models.MetricKind(args[0])

		label := strings.Join(args[1:], " ")
		reading := resolve.ReadingFromLabel(kind, label)
		if reading == nil {
			return fmt.Errorf("could not classify answer %q for %s; nothing recorded", label, kind)
		}

		if answerAt != "" {
			t, err := parseTime(answerAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", answerAt)
			}
			reading.WithRecordedAt(t)
		}

		if err := repo.CreateReading(reading); err != nil {
			return fmt.Errorf("failed to record answer: %w", err)
		}

		level := resolve.ParseLevel(kind, label)
		color.Green("✓ Recorded %s: %s", kind, level)
		fmt.Printf("  %s %.1f %s\n",
			color.New(color.Faint).Sprint(reading.ID.String()[:8]),
			reading.Value, reading.Unit)

		return nil
	},
}

func kindList() string {
	kinds := make([]string, len(models.AllMetricKinds))
	for i, k := range models.AllMetricKinds {
		kinds[i] = string(k)
	}
	return strings.Join(kinds, ", ")
}

func init() {
	answerCmd.Flags().StringVar(&answerAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	rootCmd.AddCommand(answerCmd)
}
