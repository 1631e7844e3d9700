package claims

import "strings"

// MatchPattern checks if a scope pattern matches a required scope.
// Supports "resource:action" format with wildcards:
//
//   - "*:*"         matches everything
//   - "users:*"     matches "users:read", "users:write", etc.
//   - "*:read"      matches "users:read", "articles:read", etc.
//   - "users:read"  matches only "users:read"
//
// Both pattern and required use ":" as the separator. If either doesn't
// contain ":", they are compared as plain strings with wildcard support.
func MatchPattern(pattern, required string) bool {
	if pattern == required || pattern == "*" || pattern == "*:*" {
		return true
	}

	patParts := strings.SplitN(pattern, ":", 2)
	reqParts := strings.SplitN(required, ":", 2)

	if len(patParts) != len(reqParts) || len(patParts) == 1 {
		return matchWildcard(pattern, required)
	}

	return matchWildcard(patParts[0], reqParts[0]) && matchWildcard(patParts[1], reqParts[1])
}

// MatchAny returns true if any of the patterns match the required scope.
func MatchAny(patterns []string, required string) bool {
	for _, p := range patterns {
		if MatchPattern(p, required) {
			return true
		}
	}
	return false
}

// matchWildcard compares two strings where "*" matches anything.
func matchWildcard(pattern, value string) bool {
	return pattern == "*" || pattern == value
}
