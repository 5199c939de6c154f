package buildinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/mod/semver"
)

func TestVersionIsValidSemver(t *testing.T) {
	assert.True(t, semver.IsValid(Version))
}

func TestStringIncludesHostLanguage(t *testing.T) {
	assert.True(t, strings.Contains(String(), HostLanguage))
}
