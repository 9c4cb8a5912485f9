// ABOUTME: CLI command for deleting metric readings.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a metric reading",
	Long: `Delete a metric reading by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'longevity list' output.

EXAMPLES:

  longevity delete abc12345                 # Delete by 8-char prefix
  longevity rm abc1                         # Short prefix (if unique)

CAUTION:

  This permanently deletes the reading. There is no undo.
  If the prefix matches multiple readings, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		reading, err := repo.GetReading(idOrPrefix)
		if err != nil {
			return fmt.Errorf("reading not found: %s", idOrPrefix)
		}

		if err := repo.DeleteReading(idOrPrefix); err != nil {
			return fmt.Errorf("failed to delete reading: %w", err)
		}

		color.Yellow("✗ Deleted %s", reading.Kind)
		fmt.Printf("  %s %.2f %s\n",
			color.New(color.Faint).Sprint(reading.ID.String()[:8]),
			reading.Value, reading.Unit)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
