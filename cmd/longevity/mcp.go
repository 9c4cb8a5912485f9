// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/longevity/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your longevity data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "longevity": {
        "command": "longevity",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  record_answer    Record a categorical answer (resolved via keyword rules)
  record_reading   Record a numeric reading
  list_readings    List recent readings
  delete_reading   Delete a reading by ID
  set_profile      Set birth year, gender, height, weight
  get_impact       Per-metric impact breakdown and total minutes/day
  get_projection   Life battery percentage and years remaining
  get_optimal      Optimal metric targets and their impact

AVAILABLE RESOURCES:

  longevity://impact             Current aggregate impact
  longevity://projection         Current life projection
  longevity://readings/recent    Recent readings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
