package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Authorization outcomes
const (
	// ErrCodeForbidden indicates the request was denied by a rule.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrCodeUnauthorized indicates the caller is not authenticated.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
)

// Construction and internal errors
const (
	// ErrCodeInvalidRuleTree indicates a malformed rule tree was rejected
	// at shield construction time.
	ErrCodeInvalidRuleTree ErrorCode = "INVALID_RULE_TREE"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// knownCodes maps every code to its recommended HTTP status.
var knownCodes = map[ErrorCode]int{
	ErrCodeForbidden:       403,
	ErrCodeUnauthorized:    401,
	ErrCodeInvalidRuleTree: 500,
	ErrCodeInternal:        500,
}

// HTTPStatusFor returns the recommended HTTP status for a code.
// Unknown codes map to 403: a transport that receives a denial tagged with a
// deployment-specific code should still refuse the request.
func HTTPStatusFor(code ErrorCode) int {
	if status, ok := knownCodes[code]; ok {
		return status
	}
	return 403
}
