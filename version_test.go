package rextest

import (
	"regexp"
	"testing"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)

func TestVersion_IsSemver(t *testing.T) {
	v := Version()
	if !semverRE.MatchString(v) {
		t.Fatalf("embedded version must be semver without a v prefix: got %q", v)
	}
}
