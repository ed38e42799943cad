// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "\
//	    -X github.com/matzehuels/ringlayout/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/ringlayout/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/ringlayout/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/ringlayout
package buildinfo

import "fmt"

// Stamped by ldflags; the defaults identify a local build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns version, commit and build date on separate lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns a cobra version template carrying the same fields.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
