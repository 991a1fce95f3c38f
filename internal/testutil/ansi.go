// Package testutil holds helpers shared by the fibiter test suites.
package testutil

import "regexp"

// csiPattern matches the CSI color sequences emitted by the ui themes.
var csiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes returns s without terminal color sequences, so rendered
// CLI output can be compared against plain text.
func StripAnsiCodes(s string) string {
	return csiPattern.ReplaceAllString(s, "")
}
