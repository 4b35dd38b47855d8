package normalize

import (
	"regexp"
	"strings"
)

var nonIdent = regexp.MustCompile(`[^a-z0-9]+`)

// Identifier folds arbitrary text into a stable lowercase identifier:
// runs of anything outside [a-z0-9] collapse to a single underscore and
// leading/trailing underscores are stripped. Idempotent.
func Identifier(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonIdent.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
