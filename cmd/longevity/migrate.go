// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies readings and profile from the active backend to the other one.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/charm"
	"github.com/harperreed/longevity/internal/storage"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <sqlite|charm>",
	Short: "Migrate data to the other storage backend",
	Long: `Copy all readings and the profile from the active backend into the
named target backend.

The active backend is whatever "backend" names in
~/.config/longevity/config.json (sqlite by default). After a successful
migration, update the config to point at the target backend.

IMPORTANT:

  - Existing data in the target is NOT overwritten; duplicate reading IDs
    cause an error, so migrate into a fresh target
  - Run with --dry-run first to see what would be migrated

USAGE:

  longevity migrate charm --dry-run   # Preview a sqlite -> charm migration
  longevity migrate charm             # Perform it
  longevity migrate sqlite            # The reverse direction`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"sqlite", "charm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target != "sqlite" && target != "charm" {
			return fmt.Errorf("unknown backend: %s (use sqlite or charm)", target)
		}
		if target == cfg.GetBackend() {
			return fmt.Errorf("%s is already the active backend; nothing to migrate", target)
		}

		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to read data from %s backend: %w", cfg.GetBackend(), err)
		}

		fmt.Printf("Migrating %s -> %s\n", cfg.GetBackend(), target)
		fmt.Printf("  Readings: %d\n", len(data.Readings))
		if data.Profile != nil {
			fmt.Println("  Profile:  yes")
		} else {
			fmt.Println("  Profile:  no")
		}

		if migrateDryRun {
			color.Yellow("Dry run - no changes made")
			return nil
		}

		var dest storage.Repository
		switch target {
		case "sqlite":
			dest, err = storage.Open(filepath.Join(cfg.GetDataDir(), "longevity.db"))
		case "charm":
			dest, err = charm.InitClient()
		}
		if err != nil {
			return fmt.Errorf("failed to open %s backend: %w", target, err)
		}
		defer dest.Close()

		if err := dest.ImportData(data); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated to %s", target)
		fmt.Printf("Set \"backend\": %q in %s to switch over.\n", target, "~/.config/longevity/config.json")

		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
