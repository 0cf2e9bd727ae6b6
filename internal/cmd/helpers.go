package cmd

import (
	"fmt"
	"sort"

	"github.com/cameronsjo/pixi-docker/internal/config"
	"github.com/cameronsjo/pixi-docker/internal/pixi"
	"github.com/cameronsjo/pixi-docker/internal/profile"
)

// Fallbacks applied when pixi.toml is missing or incomplete, so a bare
// project still resolves to a usable image identity.
const (
	fallbackName    = "pixi-app"
	fallbackVersion = "latest"
)

// project bundles the loaded configuration and the optional pixi.toml
// manifest for one invocation.
type project struct {
	cfg *config.File
	man *pixi.Manifest // nil when pixi.toml is absent
}

// loadProject reads the config file named by --config and, when
// present, the pixi.toml manifest next to it.
func loadProject() (*project, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	p := &project{cfg: cfg}
	if man, err := pixi.Load(pixi.DefaultPath); err == nil {
		p.man = man
	}

	return p, nil
}

// metadata returns the project name and version with fallbacks applied.
func (p *project) metadata() profile.Metadata {
	meta := profile.Metadata{}
	if p.man != nil {
		meta.Name = p.man.Name()
		meta.Version = p.man.Version()
	}
	if meta.Name == "" {
		meta.Name = fallbackName
	}
	if meta.Version == "" {
		meta.Version = fallbackVersion
	}
	return meta
}

// baseEnvironment is the default environment named by the base profile.
func (p *project) baseEnvironment() string {
	if p.cfg.Docker.Environment != nil {
		return *p.cfg.Docker.Environment
	}
	return ""
}

// resolve merges the base profile with the named environment. Naming
// the base profile's own environment resolves the base even without an
// [environments.<name>] section; any other unknown name fails.
// Entrypoint task names are translated to shell commands via pixi.toml.
func (p *project) resolve(env string) (profile.Resolved, error) {
	if env != "" {
		if _, ok := p.cfg.Environments[env]; !ok && env == p.baseEnvironment() {
			env = ""
		}
	}

	res, err := profile.Resolve(p.cfg.Docker, p.cfg.Environments, env)
	if err != nil {
		return res, err
	}

	if res.Entrypoint != "" && p.man != nil {
		res.Entrypoint = p.man.TranslateTask(res.Entrypoint)
	}

	return res, nil
}

// allEnvironments lists the base environment first, then every
// override environment in stable order. The base slot is "" unless an
// override section carries the base environment's own name, in which
// case that override is resolved instead.
func (p *project) allEnvironments() []string {
	first := ""
	if name := p.baseEnvironment(); name != "" {
		if _, ok := p.cfg.Environments[name]; ok {
			first = name
		}
	}

	names := make([]string, 0, len(p.cfg.Environments))
	for name := range p.cfg.Environments {
		if name == first {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return append([]string{first}, names...)
}
