// Package buildinfo carries the interpreter's version string, backing
// the `mal --version` flag and the `*host-language*` REPL binding.
package buildinfo

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is the interpreter's release version. It is validated
// against semver at init time rather than left as an unchecked
// literal, so a malformed version string makes the program panic at
// startup instead of silently reaching users.
var Version = "v0.1.0"

// HostLanguage is the value bound to *host-language* in the
// bootstrap environment (spec's supplemented host-language binding).
const HostLanguage = "go"

func init() {
	if !semver.IsValid(Version) {
		panic(fmt.Sprintf("buildinfo: invalid semver %q", Version))
	}
}

// String renders the user-facing version banner.
func String() string {
	return fmt.Sprintf("mal %s (%s)", Version, HostLanguage)
}
