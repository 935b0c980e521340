// Package validation validates user-supplied project names.
//
// A project name doubles as the manifest's package identifier, so the rules
// mirror what package registries accept: lowercase, URL-safe, no leading
// digit or punctuation.
package validation

import (
	"fmt"
	"regexp"
)

// maxNameLength matches the registry limit for package identifiers.
const maxNameLength = 214

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9._-]*$`)

// ProjectName checks that name is a legal package identifier.
// Returns nil when valid, or an error describing the first violation.
func ProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("project name must be at most %d characters", maxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("project name must start with a lowercase letter and contain only lowercase letters, digits, '.', '_' or '-'")
	}
	return nil
}
