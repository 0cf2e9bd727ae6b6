// pixi-docker generates Dockerfiles for pixi projects and drives the
// docker CLI from a single declarative configuration.
package main

import (
	"github.com/joho/godotenv"

	"github.com/cameronsjo/pixi-docker/internal/cmd"
)

func main() {
	// Local overrides for dev runs (PIXI_DOCKER_BIN, PIXI_DOCKER_TEMPLATE);
	// harmless when no .env exists.
	_ = godotenv.Load()

	cmd.Execute()
}
