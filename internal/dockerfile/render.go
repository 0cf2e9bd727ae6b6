// Package dockerfile renders Dockerfiles from a resolved parameter set.
package dockerfile

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/Dockerfile.tmpl
var defaultTemplate string

// TemplateEnvVar overrides the template path for every invocation.
const TemplateEnvVar = "PIXI_DOCKER_TEMPLATE"

// Generator renders Dockerfile content from a parameter set.
type Generator struct {
	content string
}

// NewGenerator returns a generator using the template at path, the
// PIXI_DOCKER_TEMPLATE file, or the embedded default, in that order.
func NewGenerator(path string) (*Generator, error) {
	if path == "" {
		path = os.Getenv(TemplateEnvVar)
	}
	if path == "" {
		return &Generator{content: defaultTemplate}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	return &Generator{content: string(data)}, nil
}

// Render executes the template against the parameter set. The caller
// guarantees every referenced key is present (see profile.Params).
func (g *Generator) Render(params map[string]any) (string, error) {
	tmpl, err := template.New("dockerfile").
		Funcs(sprig.TxtFuncMap()).
		Parse(g.content)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}

	return buf.String(), nil
}

// Filename returns the conventional output name for an environment.
func Filename(env string) string {
	return "Dockerfile." + env
}
