package exifmeta

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the exifmeta library.
const Version = "0.1.0"

// VersionInfo describes the build of the library or a binary using it.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// String formats the info on one line, as printed by `exifmeta --version`.
func (v VersionInfo) String() string {
	return fmt.Sprintf("exifmeta %s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime come from -ldflags:
//
//	go build -ldflags="-X github.com/simonhull/exifmeta.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/exifmeta.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Without them the VCS revision embedded by the go command is used when
// available.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitCommit == "unknown":
				info.GitCommit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "unknown":
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
