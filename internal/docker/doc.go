// Package docker assembles and executes docker CLI invocations and
// provides SDK-backed image inspection.
package docker
