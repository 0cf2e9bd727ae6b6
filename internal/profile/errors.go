package profile

import "fmt"

// UnknownEnvironmentError indicates a requested environment that has no
// [environments.<name>] section in the configuration.
type UnknownEnvironmentError struct {
	Name string
}

func (e *UnknownEnvironmentError) Error() string {
	return fmt.Sprintf("unknown environment %q: no [environments.%s] section in config", e.Name, e.Name)
}

// InvalidIdentityError indicates that the resolved image name or tag
// came out empty after applying all precedence levels.
type InvalidIdentityError struct {
	Part string // "name" or "tag"
}

func (e *InvalidIdentityError) Error() string {
	return fmt.Sprintf("invalid image identity: resolved %s is empty", e.Part)
}
