// Package version holds build metadata injected at link time:
//
//	go build -ldflags "-X git.home.luguber.info/inful/refdoc/internal/version.Version=v1.2.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the release version.
var Version = "unknown"

// Build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Resolve returns Version, falling back to the main module version recorded
// by the Go toolchain when no version was injected.
func Resolve() string {
	if Version != "unknown" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String formats the version line printed by the CLI.
func String() string {
	return fmt.Sprintf("refdoc %s (commit %s, built %s)", Resolve(), GitCommit, BuildTime)
}
