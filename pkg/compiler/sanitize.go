package compiler

import "strings"

// sanitizePlaceholder is substituted for empty input.
const sanitizePlaceholder = "unknown"

var sanitizeReplacer = strings.NewReplacer("-", "_", " ", "_")

// Sanitize maps an arbitrary diagram id or label to a configuration-safe
// identifier: lowercased, with hyphens and spaces replaced by underscores.
// Empty input yields "unknown". The function is total and idempotent; it is
// applied everywhere a raw id is embedded in generated code, so the same raw
// id always produces the same identifier within one compile.
//
// Distinct raw ids that differ only in case or separator style ("my-vpc",
// "my_vpc", "My VPC") collide. This mirrors the diagram editor's id scheme,
// which never produces such near-duplicates, and is an accepted limitation.
func Sanitize(value string) string {
	if value == "" {
		return sanitizePlaceholder
	}
	return strings.ToLower(sanitizeReplacer.Replace(value))
}
