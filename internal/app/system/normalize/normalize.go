// Package normalize cleans up user-supplied strings before validation and
// storage so that equality checks are not defeated by stray whitespace.
package normalize

import "strings"

// Name trims surrounding whitespace and collapses internal runs of
// whitespace to a single space. Case is preserved.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Param trims surrounding whitespace from a query or path parameter.
func Param(s string) string {
	return strings.TrimSpace(s)
}
