// ABOUTME: CLI commands for exporting and importing longevity data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/models"
	"github.com/harperreed/longevity/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportKind   string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export longevity data",
	Long: `Export readings and profile in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --kind, -k     Filter by metric kind (markdown only)
  --since        Only include data since this date (YYYY-MM-DD)

EXAMPLES:

  longevity export json                       # Export all data as JSON
  longevity export json -o backup.json        # Save to file
  longevity export yaml                       # Export as YAML
  longevity export markdown --kind sleep      # Export sleep as Markdown
  longevity export markdown --since 2026-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = storage.ExportJSON(repo)
		case "yaml":
			data, err = storage.ExportYAML(repo)
		case "markdown":
			var kind *models.MetricKind
			if exportKind != "" {
				if !models.IsValidMetricKind(exportKind) {
					return fmt.Errorf("unknown metric kind: %s", exportKind)
				}
				k := models.MetricKind(exportKind)
				kind = &k
			}
			var since *time.Time
			if exportSince != "" {
				t, err := time.Parse("2006-01-02", exportSince)
				if err != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			md, err := storage.ExportMarkdown(repo, kind, since)
			if err != nil {
				return err
			}
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import longevity data from JSON",
	Long: `Import readings and profile from a previously exported JSON file.

Duplicate readings (same ID) will cause an error.

EXAMPLES:

  longevity import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := storage.ImportJSON(repo, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportKind, "kind", "k", "", "filter by metric kind (markdown only)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
