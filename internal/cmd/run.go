package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cameronsjo/pixi-docker/internal/docker"
	"github.com/cameronsjo/pixi-docker/internal/profile"
	"github.com/cameronsjo/pixi-docker/internal/ui"
)

var runTag string

// runCmd runs a container from the resolved image.
var runCmd = &cobra.Command{
	Use:   "run [-- docker run args...]",
	Short: "Run a Docker container",
	Long: `Run a container from the resolved image. Port mappings come from
the environment's ports; with no extra arguments the container runs
interactively. Arguments after -- go to docker verbatim.

Examples:
  pixi-docker run
  pixi-docker run -e dev
  pixi-docker run -- --rm --name myapp`,
	Args: cobra.ArbitraryArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runTag, "tag", "t", "", "Custom image reference (name or name:tag)")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}

	res, err := proj.resolve(envName)
	if err != nil {
		return err
	}

	id, err := profile.ResolveIdentity(proj.metadata(), res, runTag)
	if err != nil {
		return err
	}

	inv := docker.RunArgs(res, id, args)

	ui.Info("Running container: %s", id.Ref())
	ui.Plain("%s", inv.String())

	return inv.Run(cmd.Context())
}
