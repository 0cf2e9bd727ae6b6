package profile

// Profile is one fully or partially specified set of build settings.
// It doubles as the base [docker] section and as a per-environment
// override section: every field is optional, and a nil field means
// "inherit" when the profile is used as an override.
//
// Ports and CopyFiles are pointers to slices so that an explicitly
// empty list (ports = []) stays distinct from an absent key.
type Profile struct {
	// Environment is the default environment name for this profile.
	Environment *string `toml:"environment"`

	// Ports to expose and map, in declaration order.
	Ports *[]int `toml:"ports"`

	// Entrypoint is a pixi task name or shell command run as CMD.
	Entrypoint *string `toml:"entrypoint"`

	// CopyFiles lists paths copied into the production stage.
	CopyFiles *[]string `toml:"copy_files"`

	// PixiVersion selects the pixi base image tag (default "latest").
	PixiVersion *string `toml:"pixi_version"`

	// BuildCommand is a pixi task run during the build stage.
	BuildCommand *string `toml:"build_command"`

	// MultiStage toggles the two-stage Dockerfile layout (default true).
	MultiStage *bool `toml:"multi_stage"`

	// BaseImage is the runtime image for the production stage.
	BaseImage *string `toml:"base_image"`

	// ImageName overrides the image name derived from pixi.toml.
	ImageName *string `toml:"image_name"`

	// ImageTag overrides the image tag derived from pixi.toml.
	ImageTag *string `toml:"image_tag"`

	// TemplatePath points at a custom Dockerfile template.
	TemplatePath *string `toml:"template_path"`
}

// Resolved is the output of merging: base plus override plus built-in
// defaults. Fields without a default may be empty, which means "omit
// from output". Ports and CopyFiles are never nil.
type Resolved struct {
	Environment  string
	Ports        []int
	Entrypoint   string
	CopyFiles    []string
	PixiVersion  string
	BuildCommand string
	MultiStage   bool
	BaseImage    string
	ImageName    string
	ImageTag     string
	TemplatePath string
}

// Metadata is the project name and version sourced from pixi.toml.
type Metadata struct {
	Name    string
	Version string
}

// Identity is the fully resolved image reference pair. Both fields are
// always non-empty after ResolveIdentity succeeds.
type Identity struct {
	Name string
	Tag  string
}

// Ref returns the "name:tag" reference for docker.
func (id Identity) Ref() string {
	return id.Name + ":" + id.Tag
}
