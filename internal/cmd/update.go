package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/pixi-docker/internal/ui"
	"github.com/cameronsjo/pixi-docker/internal/update"
)

var updateCheckOnly bool

// updateCmd updates pixi-docker from GitHub releases.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update pixi-docker to the latest version",
	Long: `Update pixi-docker to the latest version from GitHub releases.

Examples:
  pixi-docker update           # Update to latest version
  pixi-docker update --check   # Check for updates without installing`,
	Args: cobra.NoArgs,
	Run:  runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "Only check for updates, don't install")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	ui.Blue.Printf("Current version: %s (%s)\n", version, update.GetPlatformInfo())

	if updateCheckOnly {
		release, available, err := update.CheckForUpdate(version)
		if err != nil {
			ui.Error("Failed to check for updates: %v", err)
			return
		}
		if !available {
			ui.Success("You're running the latest version!")
			return
		}
		ui.Success("New version available: %s (released %s)", release.Version, release.PublishedAt)
		fmt.Println()
		ui.Blue.Println("To update, run: pixi-docker update")
		return
	}

	release, err := update.Update(version)
	if err != nil {
		ui.Error("Update failed: %v", err)
		return
	}
	if release == nil {
		ui.Success("You're already running the latest version!")
		return
	}

	ui.Success("Successfully updated to version %s!", release.Version)
}
