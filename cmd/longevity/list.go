// ABOUTME: CLI command for listing metric readings.
// ABOUTME: Supports filtering by kind and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/models"
	"github.com/spf13/cobra"
)

var (
	listKind  string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List metric readings",
	Long: `List recent metric readings.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  KIND  VALUE  UNIT  (LABEL OR NOTES)

  The ID is an 8-character prefix you can use with delete.

FILTERING:

  Use --kind to filter by metric kind:
    stress, anxiety, nutrition, smoking, alcohol, social_connection,
    sleep, activity, bp_systolic

EXAMPLES:

  longevity list                      # Show last 20 readings (all kinds)
  longevity list --kind sleep         # Show only sleep entries
  longevity list -k bp_systolic -n 50 # Show last 50 blood pressure readings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind *models.MetricKind
		if listKind != "" {
			if !models.IsValidMetricKind(listKind) {
				return fmt.Errorf("unknown metric kind: %s", listKind)
			}
			k := models.MetricKind(listKind)
			kind = &k
		}

		readings, err := repo.ListReadings(kind, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list readings: %w", err)
		}

		if len(readings) == 0 {
			fmt.Println("No readings found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range readings {
			annotation := ""
			if r.RawLabel != nil && *r.RawLabel != "" {
				annotation = faint.Sprintf(" (%s)", truncate(*r.RawLabel, 30))
			} else if r.Notes != nil && *r.Notes != "" {
				annotation = faint.Sprintf(" (%s)", truncate(*r.Notes, 30))
			}
			fmt.Printf("%s %s %s %.2f %s%s\n",
				faint.Sprint(r.ID.String()[:8]),
				faint.Sprint(r.RecordedAt.Format("2006-01-02 15:04")),
				padRight(string(r.Kind), 18),
				r.Value,
				r.Unit,
				annotation)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listKind, "kind", "k", "", "filter by metric kind")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
