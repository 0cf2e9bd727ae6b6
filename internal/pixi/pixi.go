// Package pixi reads the project's pixi.toml manifest: project name,
// version, and task definitions.
package pixi

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where the manifest is expected next to the config.
const DefaultPath = "pixi.toml"

// Section holds the name/version pair from [workspace] or [project].
type Section struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Manifest is the subset of pixi.toml this tool consumes. Tasks are
// kept untyped because pixi allows either a bare command string or a
// table with a cmd key.
type Manifest struct {
	Workspace *Section       `toml:"workspace"`
	Project   *Section       `toml:"project"`
	Tasks     map[string]any `toml:"tasks"`
}

// Load reads and parses a pixi.toml manifest.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	return &m, nil
}

// Name returns the project name. [workspace] wins over [project].
func (m *Manifest) Name() string {
	if m.Workspace != nil && m.Workspace.Name != "" {
		return m.Workspace.Name
	}
	if m.Project != nil {
		return m.Project.Name
	}
	return ""
}

// Version returns the project version. [workspace] wins over [project].
func (m *Manifest) Version() string {
	if m.Workspace != nil && m.Workspace.Version != "" {
		return m.Workspace.Version
	}
	if m.Project != nil {
		return m.Project.Version
	}
	return ""
}

// TaskCommand looks up the shell command behind a task name. Tasks are
// either plain strings or tables with a cmd key.
func (m *Manifest) TaskCommand(name string) (string, bool) {
	task, ok := m.Tasks[name]
	if !ok {
		return "", false
	}

	switch v := task.(type) {
	case string:
		return v, true
	case map[string]any:
		if cmd, ok := v["cmd"].(string); ok {
			return cmd, true
		}
	}
	return "", false
}

// TranslateTask maps a task name to its shell command, falling back to
// the input when no such task exists (it may already be a shell
// command).
func (m *Manifest) TranslateTask(name string) string {
	if cmd, ok := m.TaskCommand(name); ok {
		return cmd
	}
	return name
}
