// Package errors provides the structured error types shieldkit surfaces to
// transport layers.
//
// The central type is AppError: a machine-readable code, a human-readable
// message, a recommended HTTP status, and optional details. Denials — the
// expected negative outcome of an authorization decision — are AppErrors
// carrying the dotted procedure path that was denied, so transports can map
// them to protocol responses (HTTP 403, gRPC PermissionDenied) without
// parsing message strings.
package errors
