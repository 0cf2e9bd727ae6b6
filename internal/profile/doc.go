// Package profile implements the configuration resolution engine:
// merging the base docker profile with per-environment overrides,
// deriving the image identity, and assembling the parameter set
// consumed by Dockerfile rendering and command construction.
package profile
