// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/firewallviz/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/firewallviz/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/firewallviz/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/firewallviz
package buildinfo

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// Template returns the cobra version template. The build date is shown
// when one was stamped in.
func Template() string {
	if Date == "unknown" {
		return "{{.Name}} " + Short() + "\n"
	}
	return "{{.Name}} " + Short() + " (" + Date + ")\n"
}

// Short returns the version with the commit appended for non-release builds.
func Short() string {
	if Version == "dev" && Commit != "none" {
		return Version + "+" + Commit
	}
	return Version
}
