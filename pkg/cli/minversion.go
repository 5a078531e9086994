package cli

import (
	"fmt"
	"os"

	"github.com/quillpath/skeletrace/pkg/semver"
)

// MinVersionEnvKey is the .env key CheckMinVersion reads a compatibility
// floor from. Distinct from the GitHub-release comparison in update.go:
// that checks "is a newer release available", this checks "is the binary
// running new enough to satisfy a project-pinned floor" (e.g. a saved
// config or workflow file that names a minimum skeletrace version).
const MinVersionEnvKey = "SKELETRACE_MIN_VERSION"

// CheckMinVersion compares the running build's Version against
// SKELETRACE_MIN_VERSION (if set in the environment, typically via a loaded
// .env file) and returns an error if the build is older. A malformed pin or
// a malformed build Version is reported rather than silently ignored, since
// either means the comparison can't be trusted.
func CheckMinVersion() error {
	pin := os.Getenv(MinVersionEnvKey)
	if pin == "" {
		return nil
	}
	min, err := semver.Parse(pin)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", MinVersionEnvKey, pin, err)
	}
	cur, err := semver.Parse(Version)
	if err != nil {
		return fmt.Errorf("invalid build version %q: %w", Version, err)
	}
	if min.GT(cur) {
		return fmt.Errorf("this build (%s) is older than the minimum required version %s", cur, min)
	}
	return nil
}
