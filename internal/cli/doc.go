// Package cli wires up the cobra command tree: validate, show, deps, fmt,
// doctor, config, and version.
package cli
