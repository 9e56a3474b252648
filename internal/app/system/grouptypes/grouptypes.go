// Package grouptypes defines the closed set of group names the service
// accepts. Group directory operations reject any name outside this set.
package grouptypes

// Allowed group names.
const (
	Regular = "regular"
	Admin   = "admin"
)

// IsValid reports whether name is one of the allowed group names.
func IsValid(name string) bool {
	switch name {
	case Regular, Admin:
		return true
	default:
		return false
	}
}

// All returns the allowed names in a stable order, for error messages.
func All() []string {
	return []string{Regular, Admin}
}
