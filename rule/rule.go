package rule

import (
	"context"
	"errors"
	"fmt"
)

// Request carries the per-call information a rule decides on.
// Path identifies the procedure being called; Input is the request payload.
// Both are owned by the caller and must not be mutated by rules.
type Request struct {
	Path  []string
	Input any
}

// Rule is the core decision interface.
//
// Evaluate returns nil to allow the request, or a non-nil error to deny it.
// The error's message is the denial reason shown to the caller.
type Rule interface {
	Evaluate(ctx context.Context, req Request) error
}

// Func is an adapter to use ordinary functions as Rule.
type Func func(ctx context.Context, req Request) error

// Evaluate implements Rule.
func (f Func) Evaluate(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// DefaultDenyMessage is the reason used when a rule denies without one.
const DefaultDenyMessage = "Access denied"

// Allow is a rule that passes every request.
var Allow Rule = Func(func(context.Context, Request) error {
	return nil
})

// Deny is a rule that denies every request with the default message.
var Deny Rule = DenyWithMessage(DefaultDenyMessage)

// DenyWithMessage returns a rule that denies every request with msg.
func DenyWithMessage(msg string) Rule {
	err := errors.New(msg)
	return Func(func(context.Context, Request) error {
		return err
	})
}

// Eval evaluates r and guarantees the rule boundary contract: a panic inside
// the rule is recovered and returned as a denial error instead of unwinding
// into the caller. Combinators and the dispatcher evaluate rules through Eval,
// never by calling Evaluate directly.
func Eval(ctx context.Context, r Rule, req Request) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", rec)
		}
	}()
	return r.Evaluate(ctx, req)
}
