package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/pixi-docker/internal/dockerfile"
	"github.com/cameronsjo/pixi-docker/internal/profile"
	"github.com/cameronsjo/pixi-docker/internal/ui"
)

var (
	generateOutput string
	generateAll    bool
)

// generateCmd renders Dockerfiles without building.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Dockerfiles without building",
	Long: `Render the Dockerfile for one environment, or all of them.

Examples:
  pixi-docker generate               # Dockerfile for the default environment
  pixi-docker generate -e dev        # Dockerfile.dev
  pixi-docker generate --all -o out  # every environment, into out/`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", ".", "Output directory")
	generateCmd.Flags().BoolVar(&generateAll, "all", false, "Generate every configured environment")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}

	envs := []string{envName}
	if generateAll {
		envs = proj.allEnvironments()
	}

	// Environments resolve independently; one failure must not stop
	// the others.
	failed := 0
	for _, env := range envs {
		if err := generateOne(proj, env, generateOutput); err != nil {
			label := env
			if label == "" {
				label = profile.DefaultEnvironment
			}
			ui.Error("%s: %v", label, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d environment(s) failed", failed)
	}
	return nil
}

// generateOne resolves a single environment and writes its Dockerfile.
func generateOne(proj *project, env, outputDir string) error {
	res, err := proj.resolve(env)
	if err != nil {
		return err
	}

	id, err := profile.ResolveIdentity(proj.metadata(), res, "")
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

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(outputDir, dockerfile.Filename(res.EnvLabel()))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	ui.Success("Generated: %s", path)
	return nil
}
