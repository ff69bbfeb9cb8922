// Package buildinfo carries the version stamped in at link time:
//
//	-ldflags "-X enlarger/internal/buildinfo.Version=v1.2.0 -X enlarger/internal/buildinfo.Commit=abc123"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and the
// startup log line.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String is the long form printed by the version command.
func String() string {
	return fmt.Sprintf("enlarger %s (commit %s, built %s)", Version, Commit, Date)
}
