package docker

import (
	"fmt"
	"os"
	"strings"

	"github.com/cameronsjo/pixi-docker/internal/profile"
)

// BinEnvVar overrides the container tool executable (default docker).
const BinEnvVar = "PIXI_DOCKER_BIN"

// Invocation is one container-tool command, built fresh per call and
// never executed by the builders themselves.
type Invocation struct {
	Bin  string
	Args []string
}

// BuildOptions carries the user-facing knobs for docker build.
type BuildOptions struct {
	// Dockerfile is the path of the generated Dockerfile (-f).
	Dockerfile string

	// Context is the build context, defaulting to ".". Always the
	// final argument.
	Context string

	// NoCache adds --no-cache when set.
	NoCache bool

	// Platform adds --platform <value> when non-empty.
	Platform string

	// ExtraArgs are passed through verbatim, in order, before the
	// build context. A leading "--" separator is stripped.
	ExtraArgs []string
}

// BuildArgs constructs the docker build invocation for an image.
func BuildArgs(id profile.Identity, opts BuildOptions) Invocation {
	args := []string{"build", "-t", id.Ref()}
	if opts.Dockerfile != "" {
		args = append(args, "-f", opts.Dockerfile)
	}
	if opts.NoCache {
		args = append(args, "--no-cache")
	}
	if opts.Platform != "" {
		args = append(args, "--platform", opts.Platform)
	}
	args = append(args, StripSeparator(opts.ExtraArgs)...)

	ctx := opts.Context
	if ctx == "" {
		ctx = "."
	}
	args = append(args, ctx)

	return Invocation{Bin: binary(), Args: args}
}

// RunArgs constructs the docker run invocation. Port mappings from the
// resolved profile come first, in declaration order. With no extra
// args the container defaults to interactive mode; otherwise the extra
// args are passed through untouched and nothing is auto-inserted. The
// image reference is always last.
func RunArgs(res profile.Resolved, id profile.Identity, extraArgs []string) Invocation {
	args := []string{"run"}
	for _, port := range res.Ports {
		args = append(args, "-p", fmt.Sprintf("%d:%d", port, port))
	}

	extra := StripSeparator(extraArgs)
	if len(extra) == 0 {
		args = append(args, "-it")
	} else {
		args = append(args, extra...)
	}

	args = append(args, id.Ref())

	return Invocation{Bin: binary(), Args: args}
}

// StripSeparator drops a single leading "--" token. The separator only
// disambiguates option parsing and must never reach the external tool.
func StripSeparator(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

// String renders a copy-pasteable preview of the invocation.
func (inv Invocation) String() string {
	parts := make([]string, 0, len(inv.Args)+1)
	parts = append(parts, inv.Bin)
	for _, a := range inv.Args {
		parts = append(parts, shellQuote(a))
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'`$\\*?[]{}()<>|&;") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}

func binary() string {
	if bin := os.Getenv(BinEnvVar); bin != "" {
		return bin
	}
	return "docker"
}
