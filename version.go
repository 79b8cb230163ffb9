// Package rextest holds build metadata for the rextest terminal regex tester.
package rextest

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version (SemVer, no leading `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}
