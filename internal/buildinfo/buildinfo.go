// Package buildinfo carries the version stamped in with -ldflags:
//
//	-X colorpicky/internal/buildinfo.Version=v1.2.0 -X colorpicky/internal/buildinfo.Commit=$(git rev-parse --short HEAD)
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the boot screen.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full identifier for logs and -version output.
func String() string {
	return fmt.Sprintf("colorpicky %s (commit %s, built %s)", Short(), Commit, Date)
}
