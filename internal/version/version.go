// Package version holds the build version, set at link time.
package version

// Version is set via -ldflags at build time.
var Version = "unknown"
