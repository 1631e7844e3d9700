// Package grpc maps shieldkit errors to gRPC status errors.
//
// Denials become PermissionDenied (or Unauthenticated for UNAUTHORIZED
// denials) with the denial message and the dotted procedure path preserved,
// so clients see a standard status instead of an opaque internal error.
//
// The interceptor subpackage wires a shield into a gRPC server.
package grpc
