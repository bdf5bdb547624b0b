package version

import (
	"strings"
	"testing"
)

func TestVersionShape(t *testing.T) {
	if Version == "" {
		t.Fatal("Version must not be empty")
	}
	if strings.Count(Version, ".") != 2 {
		t.Errorf("Version %q is not in major.minor.patch form", Version)
	}
}
