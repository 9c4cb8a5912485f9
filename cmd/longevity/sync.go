// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, reset, and wipe operations.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/harperreed/longevity/internal/charm"
	"github.com/spf13/cobra"
)

// charmRepo returns the charm client backing the repository, or an error
// when the sqlite backend is configured.
func charmRepo() (*charm.Client, error) {
	client, ok := repo.(*charm.Client)
	if !ok {
		return nil, fmt.Errorf("sync requires the charm backend; set \"backend\": \"charm\" in %s", "~/.config/longevity/config.json")
	}
	return client, nil
}

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync data across devices",
	Long: `Sync longevity data across devices using Charm Cloud.

Your data is E2E encrypted with your SSH key before upload.
The server never sees your unencrypted readings.

Requires the charm backend: set "backend": "charm" in
~/.config/longevity/config.json.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     longevity sync link

  2. On other devices, link with the same Charm account:
     longevity sync link

  3. Check sync status:
     longevity sync status

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  reset       Reset local data and restore from cloud (destructive)
  wipe        Delete all stored data (destructive)

Data syncs automatically after each write operation.`,
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.

Example:
  longevity sync link`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charmRepo()
		if err != nil {
			return err
		}

		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Your longevity data will now sync automatically across devices.")

		if err := client.Sync(); err != nil {
			color.Yellow("⚠ Initial sync failed: %v", err)
		} else {
			color.Green("✓ Initial sync complete")
		}

		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not delete your local data.
You can link again later with 'longevity sync link'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local longevity data is preserved.")

		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Long: `Show current sync status including:
- Charm account info
- Connection status
- Local data info`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charmRepo()
		if err != nil {
			return err
		}

		id, err := client.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'longevity sync link' to connect to Charm.")
			return nil
		}

		fmt.Println("Charm ID:", id)
		fmt.Println("Server: charm.2389.dev")
		fmt.Println()

		readings, _ := client.ListReadings(nil, 0)
		profile, _ := client.GetProfile()

		color.Green("✓ Connected to Charm")
		fmt.Printf("  Readings: %d\n", len(readings))
		if profile != nil {
			fmt.Println("  Profile:  set")
		} else {
			fmt.Println("  Profile:  not set")
		}

		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore from Charm Cloud.

This is a destructive operation. All local data will be lost and restored from cloud.
Use this to:
- Fix sync conflicts
- Reset a device to cloud state
- Start fresh on a device`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charmRepo()
		if err != nil {
			return err
		}

		fmt.Println("This will DELETE all local longevity data and restore from cloud.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := client.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Green("✓ Local data reset and restored from cloud")

		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all stored data",
	Long: `Delete every reading and the profile from the KV store.

This is a DESTRUCTIVE operation. The deletions sync to Charm Cloud and
propagate to every linked device. Use this to:
- Completely remove all longevity data
- Start completely fresh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charmRepo()
		if err != nil {
			return err
		}

		fmt.Println("This will PERMANENTLY DELETE all longevity data on every linked device.")
		fmt.Print("Type 'wipe' to confirm: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "wipe" {
			fmt.Println("Canceled.")
			return nil
		}

		deleted, err := client.Wipe()
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		color.Green("✓ Data wiped successfully")
		fmt.Printf("  Keys deleted: %d\n", deleted)

		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncResetCmd)
	syncCmd.AddCommand(syncWipeCmd)

	rootCmd.AddCommand(syncCmd)
}
