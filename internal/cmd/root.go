// Package cmd provides the CLI commands for pixi-docker.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/pixi-docker/internal/config"
)

const version = "0.1.0"

var (
	configPath string
	envName    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pixi-docker",
	Short: "Generate Dockerfiles for pixi projects",
	Long: `pixi-docker - Dockerfiles from declarative pixi project config

Resolves a base [docker] profile plus per-environment overrides from
pixi_docker.toml, derives the image name and tag from pixi.toml, and
drives the docker CLI.

COMMANDS
  generate              Render Dockerfile.<env> without building
    --output, -o <dir>  Output directory (default ".")
    --all               Render every configured environment
  build [-- args...]    Generate and docker build
    --tag, -t <ref>     Custom image reference (name or name:tag)
    --no-cache          Build without cache
    --platform <p>      Target platform (e.g. linux/amd64)
  run [-- args...]      docker run with the resolved port mappings
    --tag, -t <ref>     Custom image reference (name or name:tag)
  images                List locally built images for this project
  update                Update pixi-docker to the latest release

Global flags:
  --config, -c <file>       Configuration file (default pixi_docker.toml)
  --environment, -e <name>  Target environment`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&envName, "environment", "e", "", "Target environment")

	rootCmd.SetVersionTemplate("pixi-docker version {{.Version}}\n")
}
