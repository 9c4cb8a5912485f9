// ABOUTME: Root Cobra command for longevity CLI.
// ABOUTME: Handles config loading and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/longevity/internal/config"
	"github.com/harperreed/longevity/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "longevity",
	Short: "Lifespan impact tracker",
	Long: `Longevity converts lifestyle answers into minutes of life expectancy
gained or lost per day, and projects how full your "life battery" is
compared to the best possible version of your habits.

WHAT IT TRACKS:

  Wellness (1-10)  stress, anxiety, nutrition, smoking, alcohol,
                   social_connection, sleep, activity
  Clinical         bp_systolic (systolic blood pressure, mmHg)

QUICK START:

  $ longevity profile set --birth-year 1988 --gender male
  $ longevity answer smoking "Never smoked"     # Categorical answer
  $ longevity add bp_systolic 118               # Numeric reading
  $ longevity impact                            # Minutes per day breakdown
  $ longevity project                           # Life battery percentage

HOW IT WORKS:

  Each metric contributes minutes of life expectancy per day, positive or
  negative, based on where your latest reading sits on its scale. Impacts
  add up across metrics; metrics you haven't answered are left out rather
  than assumed. The projection compares your adjusted years remaining
  against an actuarial baseline and against the optimal metric set.

SYNC (OPTIONAL):

  Set "backend": "charm" in ~/.config/longevity/config.json to store data
  in Charm KV with E2E-encrypted cloud sync.

  $ longevity sync link      # Link device to your Charm account
  $ longevity sync status    # Check sync status

MCP INTEGRATION:

  Run 'longevity mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "longevity": { "command": "longevity", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Readings are stored in SQLite at ~/.local/share/longevity/longevity.db
  by default, or in Charm KV when the charm backend is configured.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
