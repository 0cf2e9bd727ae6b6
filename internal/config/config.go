// Package config loads the pixi_docker.toml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/cameronsjo/pixi-docker/internal/profile"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "pixi_docker.toml"

// File is the parsed pixi_docker.toml: a base [docker] profile plus
// zero or more [environments.<name>] override sections. Loaded once,
// read-only afterwards.
type File struct {
	// Docker is the base profile.
	Docker profile.Profile `toml:"docker"`

	// Environments maps environment name to its partial override.
	Environments map[string]profile.Profile `toml:"environments"`
}

// MalformedOverrideError indicates a config field whose TOML type does
// not match the declared profile field type. The value is never
// silently coerced.
type MalformedOverrideError struct {
	Environment string // empty when the base [docker] section is at fault
	Field       string
	Err         error
}

func (e *MalformedOverrideError) Error() string {
	if e.Environment != "" {
		return fmt.Sprintf("malformed override in environment %q: field %q: %v", e.Environment, e.Field, e.Err)
	}
	return fmt.Sprintf("malformed config field %q: %v", e.Field, e.Err)
}

func (e *MalformedOverrideError) Unwrap() error { return e.Err }

// Load reads and parses the configuration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Parse decodes configuration bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, decodeError(err)
	}

	if f.Environments == nil {
		f.Environments = make(map[string]profile.Profile)
	}

	return &f, nil
}

// decodeError maps go-toml decode failures onto MalformedOverrideError
// with the offending environment and field named.
func decodeError(err error) error {
	var derr *toml.DecodeError
	if !errors.As(err, &derr) {
		return fmt.Errorf("parse config: %w", err)
	}

	key := []string(derr.Key())
	field := strings.Join(key, ".")
	env := ""
	if len(key) >= 2 && key[0] == "environments" {
		env = key[1]
		field = strings.Join(key[2:], ".")
	}

	return &MalformedOverrideError{Environment: env, Field: field, Err: err}
}
