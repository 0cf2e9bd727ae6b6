package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/pixi-docker/internal/docker"
	"github.com/cameronsjo/pixi-docker/internal/profile"
	"github.com/cameronsjo/pixi-docker/internal/ui"
)

// imagesCmd lists locally built images for this project.
var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List locally built images for this project",
	Long: `List local Docker images whose repository matches the resolved
image name for the target environment.`,
	Args: cobra.NoArgs,
	RunE: runImages,
}

func init() {
	rootCmd.AddCommand(imagesCmd)
}

func runImages(cmd *cobra.Command, args []string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}

	res, err := proj.resolve(envName)
	if err != nil {
		return err
	}

	id, err := profile.ResolveIdentity(proj.metadata(), res, "")
	if err != nil {
		return err
	}

	client, err := docker.NewClient()
	if err != nil {
		return fmt.Errorf("connect to docker: %w", err)
	}
	defer client.Close()

	infos, err := client.ListImages(cmd.Context(), id.Name)
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		ui.Warning("No local images for %s", id.Name)
		return nil
	}

	ui.Header("%-40s %-14s %-10s %s", "REFERENCE", "IMAGE ID", "SIZE", "CREATED")
	for _, info := range infos {
		ui.Plain("%-40s %-14s %-10s %s",
			info.Ref, info.ID, humanSize(info.Size), info.Created.Format("2006-01-02 15:04"))
	}

	return nil
}

func humanSize(bytes int64) string {
	const unit = 1000
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "kMGT"[exp])
}
