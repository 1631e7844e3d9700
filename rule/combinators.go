package rule

import (
	"context"
	"errors"
)

// ErrAllRulesFailed is returned by Or when it has no rules to try.
// It is distinct from any individual rule's denial message.
var ErrAllRulesFailed = errors.New("all rules failed")

// ErrUnexpectedPass is returned by Not when the wrapped rule passes.
// The wrapped rule's own denial reasons are never surfaced through Not.
var ErrUnexpectedPass = errors.New("rule should not pass")

// And returns a rule that evaluates rules strictly in argument order and
// stops at the first denial, returning it unchanged. It passes when the list
// is empty or every rule passes.
func And(rules ...Rule) Rule {
	return andRule(rules)
}

type andRule []Rule

func (a andRule) Evaluate(ctx context.Context, req Request) error {
	for _, r := range a {
		if err := Eval(ctx, r, req); err != nil {
			return err
		}
	}
	return nil
}

// Chain returns a rule with the same decision semantics as And: sequential,
// in argument order, short-circuiting on the first denial. The separate name
// expresses "ordered pipeline" intent where the steps are stages rather than
// independent conditions.
func Chain(rules ...Rule) Rule {
	return And(rules...)
}

// Or returns a rule that evaluates rules strictly in argument order and
// passes as soon as one of them passes. Failing rules do not stop evaluation
// of the rest. If every rule fails, the first failure (by evaluation order)
// is returned; an empty list fails with ErrAllRulesFailed.
func Or(rules ...Rule) Rule {
	return orRule(rules)
}

type orRule []Rule

func (o orRule) Evaluate(ctx context.Context, req Request) error {
	if len(o) == 0 {
		return ErrAllRulesFailed
	}
	var first error
	for _, r := range o {
		err := Eval(ctx, r, req)
		if err == nil {
			return nil
		}
		if first == nil {
			first = err
		}
	}
	return first
}

// Not returns a rule that inverts r: a pass becomes ErrUnexpectedPass and any
// denial becomes a pass. The original denial reason is discarded.
func Not(r Rule) Rule {
	return notRule{r}
}

type notRule struct {
	rule Rule
}

func (n notRule) Evaluate(ctx context.Context, req Request) error {
	if err := Eval(ctx, n.rule, req); err != nil {
		return nil
	}
	return ErrUnexpectedPass
}

// Race returns a rule that evaluates all rules concurrently and settles on
// whichever result arrives first, pass or denial. Losing branches keep
// running to completion in the background; their results are discarded and
// no cancellation signal is sent to them. An empty list passes.
//
// Race is the only concurrent combinator. A deployment wanting a timeout on
// rule evaluation can race the rule against a timer rule.
func Race(rules ...Rule) Rule {
	return raceRule(rules)
}

type raceRule []Rule

func (rr raceRule) Evaluate(ctx context.Context, req Request) error {
	if len(rr) == 0 {
		return nil
	}
	// Buffered so losing branches never block after the winner is taken.
	results := make(chan error, len(rr))
	for _, r := range rr {
		go func(r Rule) {
			results <- Eval(ctx, r, req)
		}(r)
	}
	return <-results
}
