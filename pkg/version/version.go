// Package version reports build information set through -ldflags.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information. Populated at build-time via -ldflags
var (
	// Version is the semantic version (e.g., "v1.0.0")
	Version = "dev"

	// Commit is the git commit hash
	Commit = "unknown"

	// BuildTime is the build timestamp
	BuildTime = "unknown"

	// Dirty is "true" when the tree had uncommitted changes
	Dirty = ""
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Module returns Version, falling back to the module version recorded by
// `go install` when no version was injected.
func Module() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String returns a one-line version, e.g.
// hookkit v0.3.0 (abc1234 2025-11-14T21:51:00Z)
func String(name string) string {
	dirty := ""
	if Dirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s %s (%s%s %s)", name, Module(), Commit, dirty, BuildTime)
}

// Info returns detailed version information
func Info() string {
	state := "clean"
	if Dirty == "true" {
		state = "dirty"
	}

	return fmt.Sprintf(`Version:    %s
Git commit: %s (%s)
Built:      %s
Go version: %s
Platform:   %s/%s`,
		Module(),
		Commit,
		state,
		BuildTime,
		runtime.Version(),
		runtime.GOOS, runtime.GOARCH,
	)
}
