package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags at build time.
var (
	Version  = "0.0.0-dev"
	Revision = "unknown"
)

func init() {
	if Revision != "unknown" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version, revision and Go runtime in a single line.
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Revision, runtime.Version())
}
