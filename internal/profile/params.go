package profile

// DefaultEnvironment is the sentinel used when no environment name is
// configured or requested.
const DefaultEnvironment = "default"

// EnvLabel returns the environment name for output naming, falling
// back to the sentinel when the profile carries none.
func (r Resolved) EnvLabel() string {
	if r.Environment == "" {
		return DefaultEnvironment
	}
	return r.Environment
}

// Params assembles the flat named-value mapping handed to the
// Dockerfile template. Every key the template may reference is always
// present; unset sequences come through as empty slices, never as a
// missing key.
func Params(res Resolved, id Identity) map[string]any {
	return map[string]any{
		"environment":   res.EnvLabel(),
		"ports":         res.Ports,
		"entrypoint":    res.Entrypoint,
		"copy_files":    res.CopyFiles,
		"pixi_version":  res.PixiVersion,
		"build_command": res.BuildCommand,
		"multi_stage":   res.MultiStage,
		"base_image":    res.BaseImage,
		"image_name":    id.Name,
		"image_tag":     id.Tag,
	}
}
