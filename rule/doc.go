// Package rule defines the decision primitive for shieldkit.
//
// A Rule inspects the caller's context, the procedure path, and the request
// input, and either allows the call (nil error) or denies it (non-nil error
// whose message is the denial reason). Rules are composed with boolean-style
// combinators (And, Or, Not, Chain, Race) that themselves satisfy Rule, so
// arbitrary decision trees can be built from small pieces.
//
// Rules never panic outward: Eval recovers panics raised inside a rule and
// converts them into denial errors, so a misbehaving rule degrades into a
// denied request instead of a crashed process.
//
// Usage:
//
//	isAuthenticated := rule.Func(func(ctx context.Context, req rule.Request) error {
//	    if _, ok := claims.FromContext(ctx); !ok {
//	        return errors.New("not authenticated")
//	    }
//	    return nil
//	})
//
//	isAdmin := rule.And(isAuthenticated, hasAdminRole)
package rule
