package app

import (
	"fmt"
	"runtime/debug"
)

// Set via ldflags, e.g.
// -X github.com/heartmarshall/poetic-threads/internal/app.Version=1.2.0
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = "unknown"
)

// BuildVersion is reported in startup logs and by GET /health. Without an
// ldflags commit it falls back to the VCS revision embedded by the go tool.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit(), BuildTime)
}

func commit() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}
