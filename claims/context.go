package claims

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var claimsKey = contextKey{}

// NewContext stores parsed claims in the context. Transport adapters call
// this after validating the caller's token, before handing the request to
// the shield.
func NewContext(ctx context.Context, c jwt.MapClaims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// FromContext retrieves claims stored by NewContext.
func FromContext(ctx context.Context) (jwt.MapClaims, bool) {
	c, ok := ctx.Value(claimsKey).(jwt.MapClaims)
	return c, ok
}
