package validation

import (
	"reflect"
	"testing"

	"github.com/vedranvinko/rene/internal/types"
)

func rules(issues []Issue) []string {
	var got []string
	for _, issue := range issues {
		got = append(got, issue.Rule)
	}
	return got
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		redirects types.RedirectMap
		escaping  bool
		want      []string
	}{
		{
			name:      "clean mapping",
			redirects: types.RedirectMap{"/foo": "/bar", "/baz": "/qux"},
			want:      nil,
		},
		{
			name:      "empty wildcard",
			redirects: types.RedirectMap{"": "/home"},
			want:      []string{RuleEmptyWildcard},
		},
		{
			name:      "empty destination",
			redirects: types.RedirectMap{"/old": ""},
			want:      []string{RuleEmptyDestination},
		},
		{
			name:      "both empty is also a loop",
			redirects: types.RedirectMap{"": ""},
			want:      []string{RuleEmptyWildcard, RuleEmptyDestination, RuleRedirectLoop},
		},
		{
			name:      "redirect loop",
			redirects: types.RedirectMap{"/same": "/same"},
			want:      []string{RuleRedirectLoop},
		},
		{
			name:      "markup without escaping",
			redirects: types.RedirectMap{"/search?a=1&b=2": "/find"},
			want:      []string{RuleUnescapedMarkup},
		},
		{
			name:      "markup with escaping",
			redirects: types.RedirectMap{"/search?a=1&b=2": "/find"},
			escaping:  true,
			want:      nil,
		},
		{
			name:      "ordered by wildcard",
			redirects: types.RedirectMap{"/z": "/z", "/a": ""},
			want:      []string{RuleEmptyDestination, RuleRedirectLoop},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Check(tt.redirects, tt.escaping)
			if got := rules(issues); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Check() rules = %v, want %v", got, tt.want)
			}
			for _, issue := range issues {
				if issue.Severity != SeverityWarning {
					t.Errorf("Check() severity = %q, want %q", issue.Severity, SeverityWarning)
				}
			}
		})
	}
}
