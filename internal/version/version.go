package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is set via ldflags during build:
	// go build -ldflags "-X github.com/r9s-ai/onr-provider-gen/internal/version.Version=v0.3.0"
	Version = "dev"

	// Commit is the git commit hash, set the same way.
	Commit = "unknown"
)

// String returns the full version line printed by the version command.
func String() string {
	return fmt.Sprintf(
		"onr-providergen %s\ncommit: %s\ngo version: %s\nplatform: %s/%s",
		Version,
		Commit,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// Short returns a compact version token for log lines.
func Short() string {
	if Commit != "unknown" && len(Commit) > 7 {
		return fmt.Sprintf("%s (%s)", Version, Commit[:7])
	}
	return Version
}
