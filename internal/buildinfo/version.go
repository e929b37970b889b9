// Package buildinfo holds the version string linked into release binaries.
package buildinfo

// VERSION is injected by buildflags for official releases.
var VERSION = "SELFBUILD"
