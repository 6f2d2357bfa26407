// Package vars holds build-time metadata injected via -ldflags: a
// small set of mutable package-level strings overwritten at link time
// rather than parsed from anywhere at runtime.
package vars

import "fmt"

var (
	// Version is the release tag, or "dev" for a local build.
	Version = "dev"
	// Commit is the short VCS revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp in RFC3339.
	Date = "unknown"
)

// Print writes build metadata to stdout for the `version` command.
func Print() {
	fmt.Printf("atlaspack %s (commit %s, built %s)\n", Version, Commit, Date)
}
