// =============================================================================
// rene - Redirect Checks
// =============================================================================
//
// This module inspects the finished redirect mapping for entries that the
// URL-rewriting module would accept but handle badly. Nothing found here
// stops a run; issues are reported as warnings.
//
// CHECKS:
//   - empty-wildcard     : the key was nothing but the base URL
//   - empty-destination  : the value was nothing but the base URL
//   - redirect-loop      : wildcard and destination are identical
//   - unescaped-markup   : a value contains <, >, & or " and escaping is off
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/vedranvinko/rene/internal/types"
)

// SeverityWarning marks an issue that does not stop processing.
const SeverityWarning = "warning"

// Rule names.
const (
	RuleEmptyWildcard    = "empty-wildcard"
	RuleEmptyDestination = "empty-destination"
	RuleRedirectLoop     = "redirect-loop"
	RuleUnescapedMarkup  = "unescaped-markup"
)

// Issue describes a single finding for one redirect.
type Issue struct {
	// Severity is always SeverityWarning for now.
	Severity string

	// Rule is the check that produced the issue.
	Rule string

	// Wildcard identifies the affected redirect.
	Wildcard string

	// Message is a human-readable description.
	Message string
}

func (i Issue) Error() string {
	return fmt.Sprintf("[%s] %s: %s", i.Rule, i.Wildcard, i.Message)
}

// Check runs every check against the mapping. Issues are ordered by
// wildcard, then by rule, so repeated runs report them identically.
//
// PARAMETERS:
//   - redirects: The built mapping.
//   - escaping: Whether the writer will escape attribute values.
func Check(redirects types.RedirectMap, escaping bool) []Issue {
	var issues []Issue

	for _, r := range redirects.Sorted() {
		issues = append(issues, checkRedirect(r, escaping)...)
	}

	return issues
}

func checkRedirect(r types.Redirect, escaping bool) []Issue {
	var issues []Issue

	if r.Wildcard == "" {
		issues = append(issues, warning(r, RuleEmptyWildcard, "wildcard is empty after removing the base URL"))
	}
	if r.Destination == "" {
		issues = append(issues, warning(r, RuleEmptyDestination, "destination is empty after removing the base URL"))
	}
	if r.Wildcard == r.Destination {
		issues = append(issues, warning(r, RuleRedirectLoop, "destination equals wildcard"))
	}
	if !escaping && (hasMarkup(r.Wildcard) || hasMarkup(r.Destination)) {
		issues = append(issues, warning(r, RuleUnescapedMarkup, "value contains XML markup characters and will be written verbatim"))
	}

	return issues
}

func warning(r types.Redirect, rule, message string) Issue {
	return Issue{
		Severity: SeverityWarning,
		Rule:     rule,
		Wildcard: r.Wildcard,
		Message:  message,
	}
}

func hasMarkup(s string) bool {
	return strings.ContainsAny(s, `<>&"`)
}
