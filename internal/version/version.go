// Package version reports the build version of the oxide binaries.
package version

import "runtime/debug"

// Version is set at link time with
//
//	-ldflags "-X github.com/phanxgames/oxide/internal/version.Version=v1.2.3"
var Version = "dev"

// String returns Version, falling back to the module version recorded in the
// build info for `go install`ed binaries.
func String() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}
