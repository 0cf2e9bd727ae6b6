package profile

// Built-in defaults, applied after base and override values.
const defaultPixiVersion = "latest"

// Resolve merges the base profile with the named environment's override
// and fills in built-in defaults. With an empty env the base profile is
// resolved as-is and overrides are never consulted. Resolution is a
// pure function: neither input is mutated.
//
// Precedence per field: override, then base, then built-in default.
// Ports and CopyFiles are replaced wholesale when the override key is
// present, so ports = [] means "no ports", not "inherit".
func Resolve(base Profile, overrides map[string]Profile, env string) (Resolved, error) {
	merged := base
	if env != "" {
		ov, ok := overrides[env]
		if !ok {
			return Resolved{}, &UnknownEnvironmentError{Name: env}
		}
		merged = merge(base, ov)
	}

	res := Resolved{
		Environment:  env,
		Ports:        derefInts(merged.Ports),
		Entrypoint:   derefString(merged.Entrypoint),
		CopyFiles:    derefStrings(merged.CopyFiles),
		PixiVersion:  defaultPixiVersion,
		BuildCommand: derefString(merged.BuildCommand),
		MultiStage:   true,
		BaseImage:    derefString(merged.BaseImage),
		ImageName:    derefString(merged.ImageName),
		ImageTag:     derefString(merged.ImageTag),
		TemplatePath: derefString(merged.TemplatePath),
	}
	if env == "" {
		res.Environment = derefString(merged.Environment)
	}
	if merged.PixiVersion != nil && *merged.PixiVersion != "" {
		res.PixiVersion = *merged.PixiVersion
	}
	if merged.MultiStage != nil {
		res.MultiStage = *merged.MultiStage
	}

	return res, nil
}

// merge applies override on top of base, field by field. An override
// that sets only ports must not discard the base entrypoint.
func merge(base, override Profile) Profile {
	out := base
	if override.Environment != nil {
		out.Environment = override.Environment
	}
	if override.Ports != nil {
		out.Ports = override.Ports
	}
	if override.Entrypoint != nil {
		out.Entrypoint = override.Entrypoint
	}
	if override.CopyFiles != nil {
		out.CopyFiles = override.CopyFiles
	}
	if override.PixiVersion != nil {
		out.PixiVersion = override.PixiVersion
	}
	if override.BuildCommand != nil {
		out.BuildCommand = override.BuildCommand
	}
	if override.MultiStage != nil {
		out.MultiStage = override.MultiStage
	}
	if override.BaseImage != nil {
		out.BaseImage = override.BaseImage
	}
	if override.ImageName != nil {
		out.ImageName = override.ImageName
	}
	if override.ImageTag != nil {
		out.ImageTag = override.ImageTag
	}
	if override.TemplatePath != nil {
		out.TemplatePath = override.TemplatePath
	}
	return out
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInts(p *[]int) []int {
	if p == nil || *p == nil {
		return []int{}
	}
	return *p
}

func derefStrings(p *[]string) []string {
	if p == nil || *p == nil {
		return []string{}
	}
	return *p
}
