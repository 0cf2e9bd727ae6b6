package profile

import "strings"

// ResolveIdentity derives the canonical image name and tag.
//
// Name precedence: explicit tag's name part > profile image_name >
// project name. Tag precedence: explicit tag's tag part > profile
// image_tag > project version. An explicit tag without a ':' replaces
// only the name; the tag still falls through to the next level.
func ResolveIdentity(meta Metadata, res Resolved, explicitTag string) (Identity, error) {
	var name, tag string

	if explicitTag != "" {
		if i := strings.IndexByte(explicitTag, ':'); i >= 0 {
			name = explicitTag[:i]
			tag = explicitTag[i+1:]
			if name == "" {
				return Identity{}, &InvalidIdentityError{Part: "name"}
			}
			if tag == "" {
				return Identity{}, &InvalidIdentityError{Part: "tag"}
			}
			return Identity{Name: name, Tag: tag}, nil
		}
		name = explicitTag
	}

	if name == "" {
		name = firstNonEmpty(res.ImageName, meta.Name)
	}
	tag = firstNonEmpty(res.ImageTag, meta.Version)

	if name == "" {
		return Identity{}, &InvalidIdentityError{Part: "name"}
	}
	if tag == "" {
		return Identity{}, &InvalidIdentityError{Part: "tag"}
	}

	return Identity{Name: name, Tag: tag}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
