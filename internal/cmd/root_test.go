package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"generate", "build", "run", "images", "update"} {
		assert.True(t, names[want], "command %s not registered", want)
	}
}

func TestGlobalFlags(t *testing.T) {
	cfg := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "pixi_docker.toml", cfg.DefValue)
	assert.Equal(t, "c", cfg.Shorthand)

	env := rootCmd.PersistentFlags().Lookup("environment")
	require.NotNil(t, env)
	assert.Equal(t, "e", env.Shorthand)
}

func TestBuildFlags(t *testing.T) {
	for _, name := range []string{"tag", "no-cache", "platform"} {
		assert.NotNil(t, buildCmd.Flags().Lookup(name), "build flag %s missing", name)
	}
	assert.NotNil(t, runCmd.Flags().Lookup("tag"))
	assert.NotNil(t, generateCmd.Flags().Lookup("output"))
	assert.NotNil(t, generateCmd.Flags().Lookup("all"))
}
