// =============================================================================
// rene - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - mapping
//   - validation
//   - xmlwriter
//   - converter
//
// =============================================================================

package types

import "sort"

// =============================================================================
// REDIRECT TYPES
// =============================================================================

// RedirectMap maps a wildcard (source path) to its destination.
// Keys are unique; inserting an existing key replaces its destination.
type RedirectMap map[string]string

// Redirect represents a single <add> entry in the XML output.
type Redirect struct {
	// Wildcard is the source path matched by the URL-rewriting module.
	Wildcard string

	// Destination is the path the request is redirected to.
	Destination string
}

// Sorted returns the entries ordered by wildcard.
func (m RedirectMap) Sorted() []Redirect {
	redirects := make([]Redirect, 0, len(m))
	for wildcard, destination := range m {
		redirects = append(redirects, Redirect{Wildcard: wildcard, Destination: destination})
	}

	sort.Slice(redirects, func(i, j int) bool {
		return redirects[i].Wildcard < redirects[j].Wildcard
	})

	return redirects
}
