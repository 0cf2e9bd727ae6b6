package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicConfig(t *testing.T) {
	data := []byte(`
[docker]
environment = "prod"
ports = [8080]
entrypoint = "serve"
copy_files = ["src/"]
pixi_version = "0.40.0"
build_command = "build"
multi_stage = true
base_image = "ubuntu:24.04"
`)

	f, err := Parse(data)
	require.NoError(t, err)

	d := f.Docker
	require.NotNil(t, d.Environment)
	assert.Equal(t, "prod", *d.Environment)
	require.NotNil(t, d.Ports)
	assert.Equal(t, []int{8080}, *d.Ports)
	require.NotNil(t, d.Entrypoint)
	assert.Equal(t, "serve", *d.Entrypoint)
	require.NotNil(t, d.CopyFiles)
	assert.Equal(t, []string{"src/"}, *d.CopyFiles)
	require.NotNil(t, d.PixiVersion)
	assert.Equal(t, "0.40.0", *d.PixiVersion)
	require.NotNil(t, d.MultiStage)
	assert.True(t, *d.MultiStage)
	require.NotNil(t, d.BaseImage)
	assert.Equal(t, "ubuntu:24.04", *d.BaseImage)

	assert.Empty(t, f.Environments)
}

func TestParseMultiEnvConfig(t *testing.T) {
	data := []byte(`
[docker]
environment = "prod"
ports = [8000]

[environments.dev]
ports = [3000, 3001]
entrypoint = "dev"
copy_files = ["app/", "tests/"]
multi_stage = false

[environments.test]
ports = []
entrypoint = "test"
build_command = "test-build"
`)

	f, err := Parse(data)
	require.NoError(t, err)

	dev, ok := f.Environments["dev"]
	require.True(t, ok)
	assert.Equal(t, []int{3000, 3001}, *dev.Ports)
	assert.Equal(t, "dev", *dev.Entrypoint)
	assert.Equal(t, []string{"app/", "tests/"}, *dev.CopyFiles)
	assert.False(t, *dev.MultiStage)
	assert.Nil(t, dev.BuildCommand)

	// ports = [] is an explicit empty list, not an absent key.
	test, ok := f.Environments["test"]
	require.True(t, ok)
	require.NotNil(t, test.Ports)
	assert.Empty(t, *test.Ports)
	assert.Equal(t, "test-build", *test.BuildCommand)
}

func TestParseAbsentKeysStayNil(t *testing.T) {
	data := []byte(`
[docker]
environment = "prod"

[environments.dev]
entrypoint = "dev"
`)

	f, err := Parse(data)
	require.NoError(t, err)

	assert.Nil(t, f.Docker.Ports)
	assert.Nil(t, f.Docker.Entrypoint)
	assert.Nil(t, f.Docker.MultiStage)

	dev := f.Environments["dev"]
	assert.Nil(t, dev.Ports, "absent ports key must decode as nil (inherit)")
	assert.Nil(t, dev.CopyFiles)
}

func TestParseMalformedOverride(t *testing.T) {
	data := []byte(`
[docker]
environment = "prod"

[environments.dev]
ports = "not-a-list"
`)

	_, err := Parse(data)
	require.Error(t, err)

	var malformed *MalformedOverrideError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "dev", malformed.Environment)
	assert.Contains(t, malformed.Field, "ports")
}

func TestParseMalformedBaseField(t *testing.T) {
	data := []byte(`
[docker]
multi_stage = "yes"
`)

	_, err := Parse(data)
	require.Error(t, err)

	var malformed *MalformedOverrideError
	require.ErrorAs(t, err, &malformed)
	assert.Empty(t, malformed.Environment)
	assert.Contains(t, malformed.Field, "multi_stage")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pixi_docker.toml")
	require.NoError(t, os.WriteFile(path, []byte("[docker]\nenvironment = \"prod\"\n"), 0644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", *f.Docker.Environment)
}
