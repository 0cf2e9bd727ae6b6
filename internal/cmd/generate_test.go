package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupGenerate pins the package-level flag state for one test run.
func setupGenerate(t *testing.T, dir, configData, pixiData string) {
	t.Helper()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pixi_docker.toml"), []byte(configData), 0644))
	if pixiData != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pixi.toml"), []byte(pixiData), 0644))
	}

	configPath = "pixi_docker.toml"
	envName = ""
	generateOutput = "."
	generateAll = false
	t.Cleanup(func() {
		configPath = "pixi_docker.toml"
		envName = ""
		generateOutput = "."
		generateAll = false
	})
}

func TestGenerateBasicConfig(t *testing.T) {
	dir := t.TempDir()
	setupGenerate(t, dir, `
[docker]
environment = "prod"
ports = [8080]
entrypoint = "serve"
copy_files = ["src/"]
`, `
[workspace]
name = "my-pixi-app"
version = "1.0.0"
`)

	require.NoError(t, runGenerate(generateCmd, nil))

	path := filepath.Join(dir, "Dockerfile.prod")
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(content)
	assert.Contains(t, out, "FROM ghcr.io/prefix-dev/pixi")
	assert.Contains(t, out, "EXPOSE 8080")
	assert.Contains(t, out, `CMD ["/bin/bash", "-c", "serve"]`)
}

func TestGenerateSpecificEnvironment(t *testing.T) {
	dir := t.TempDir()
	setupGenerate(t, dir, `
[docker]
environment = "prod"
ports = [8000]

[environments.dev]
ports = [3000]
entrypoint = "dev-server"
`, "")
	envName = "dev"

	require.NoError(t, runGenerate(generateCmd, nil))

	content, err := os.ReadFile(filepath.Join(dir, "Dockerfile.dev"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "EXPOSE 3000")
	assert.Contains(t, string(content), "dev-server")

	assert.NoFileExists(t, filepath.Join(dir, "Dockerfile.prod"))
}

func TestGenerateAll(t *testing.T) {
	dir := t.TempDir()
	setupGenerate(t, dir, `
[docker]
environment = "prod"
ports = [8000]

[environments.dev]
ports = [3000]

[environments.test]
ports = []
`, "")
	generateAll = true
	generateOutput = "out"

	require.NoError(t, runGenerate(generateCmd, nil))

	assert.FileExists(t, filepath.Join(dir, "out", "Dockerfile.prod"))
	assert.FileExists(t, filepath.Join(dir, "out", "Dockerfile.dev"))
	assert.FileExists(t, filepath.Join(dir, "out", "Dockerfile.test"))

	// test overrides ports wholesale with an empty list.
	content, err := os.ReadFile(filepath.Join(dir, "out", "Dockerfile.test"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "EXPOSE")
}

func TestGenerateUnknownEnvironment(t *testing.T) {
	dir := t.TempDir()
	setupGenerate(t, dir, `
[docker]
environment = "prod"
`, "")
	envName = "staging"

	err := runGenerate(generateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 environment(s) failed")
}

func TestGenerateMissingConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	configPath = "pixi_docker.toml"

	err := runGenerate(generateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
