// ABOUTME: CLI command for adding numeric metric readings.
// ABOUTME: Handles value parsing, timestamps, notes, and device sourcing.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/catalog"
	"github.com/harperreed/longevity/internal/models"
	"github.com/spf13/cobra"
)

var (
	addAt     string
	addNotes  string
	addDevice bool
)

var addCmd = &cobra.Command{
	Use:     "add <kind> <value>",
	Aliases: []string{"a"},
	Short:   "Add a numeric metric reading",
	Long: `Add a numeric reading for a metric. Wellness metrics use a 1-10 scale
where 10 is healthiest; bp_systolic takes mmHg.

Out-of-range values are clamped to the metric's scale rather than rejected.

Examples:
  longevity add sleep 8
  longevity add bp_systolic 118
  longevity add bp_systolic 124 --device --at "2026-08-29 07:00"
  longevity add nutrition 6 --notes "more vegetables this week"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMetricKind(args[0]) {
			return fmt.Errorf("unknown metric kind: %s\nValid kinds: %s", args[0], kindList())
		}
		kind := models.MetricKind(args[0])

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		clamped := catalog.Clamp(kind, value)
		r := models.NewReading(kind, clamped)

		if addAt != "" {
			t, err := parseTime(addAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", addAt)
			}
			r.WithRecordedAt(t)
		}
		if addNotes != "" {
			r.WithNotes(addNotes)
		}
		if addDevice {
			r.WithSource(models.SourceDevice)
		}

		if err := repo.CreateReading(r); err != nil {
			return fmt.Errorf("failed to create reading: %w", err)
		}

		color.Green("✓ Added %s", kind)
		if clamped != value {
			color.Yellow("  value %.2f clamped to %.2f", value, clamped)
		}
		fmt.Printf("  %s %.2f %s\n",
			color.New(color.Faint).Sprint(r.ID.String()[:8]),
			r.Value, r.Unit)

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	addCmd.Flags().StringVar(&addAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "notes for the reading")
	addCmd.Flags().BoolVar(&addDevice, "device", false, "mark reading as device-sourced")
	rootCmd.AddCommand(addCmd)
}
