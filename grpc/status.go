package grpc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/kbukum/shieldkit/errors"
)

// CodeFor returns the gRPC status code for a shieldkit error code.
// Unknown codes map to PermissionDenied: a denial tagged with a
// deployment-specific code must still refuse the request.
func CodeFor(code apperrors.ErrorCode) codes.Code {
	switch code {
	case apperrors.ErrCodeForbidden:
		return codes.PermissionDenied
	case apperrors.ErrCodeUnauthorized:
		return codes.Unauthenticated
	case apperrors.ErrCodeInternal, apperrors.ErrCodeInvalidRuleTree:
		return codes.Internal
	default:
		return codes.PermissionDenied
	}
}

// ToStatus converts an error returned by a shield into a gRPC status error.
// AppErrors are mapped through CodeFor with their message preserved; any
// other error passes through unchanged, so handler failures keep their own
// status semantics.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return err
	}
	return status.Error(CodeFor(appErr.Code), appErr.Message)
}
