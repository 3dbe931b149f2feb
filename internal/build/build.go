// Package build holds version information stamped in at link time.
package build

// Set with -ldflags "-X go.trai.ch/wltime/internal/build.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
