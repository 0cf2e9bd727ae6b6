package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/pixi-docker/internal/docker"
	"github.com/cameronsjo/pixi-docker/internal/dockerfile"
	"github.com/cameronsjo/pixi-docker/internal/profile"
	"github.com/cameronsjo/pixi-docker/internal/ui"
)

var (
	buildTag      string
	buildNoCache  bool
	buildPlatform string
)

// buildCmd generates a Dockerfile and builds the image.
var buildCmd = &cobra.Command{
	Use:   "build [-- docker build args...]",
	Short: "Generate and build a Docker image",
	Long: `Generate the Dockerfile for the target environment and run
docker build against it. Arguments after -- go to docker verbatim.

Examples:
  pixi-docker build
  pixi-docker build -e dev -t myapp:dev
  pixi-docker build --no-cache --platform linux/amd64
  pixi-docker build -- --build-arg GIT_SHA=abc123`,
	Args: cobra.ArbitraryArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildTag, "tag", "t", "", "Custom image reference (name or name:tag)")
	buildCmd.Flags().BoolVar(&buildNoCache, "no-cache", false, "Build without using the cache")
	buildCmd.Flags().StringVar(&buildPlatform, "platform", "", "Target platform (e.g. linux/amd64)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}

	res, err := proj.resolve(envName)
	if err != nil {
		return err
	}

	id, err := profile.ResolveIdentity(proj.metadata(), res, buildTag)
	if err != nil {
		return err
	}

	gen, err := dockerfile.NewGenerator(res.TemplatePath)
	if err != nil {
		return err
	}
	content, err := gen.Render(profile.Params(res, id))
	if err != nil {
		return err
	}

	name := dockerfile.Filename(res.EnvLabel())
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		return err
	}
	ui.Success("Generated: %s", name)

	inv := docker.BuildArgs(id, docker.BuildOptions{
		Dockerfile: name,
		NoCache:    buildNoCache,
		Platform:   buildPlatform,
		ExtraArgs:  args,
	})

	ui.Info("Building image: %s", id.Ref())
	ui.Plain("%s", inv.String())

	if err := inv.Run(cmd.Context()); err != nil {
		return err
	}

	ui.Success("Built %s", id.Ref())
	return nil
}
