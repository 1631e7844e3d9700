package rule

import (
	"context"
	"errors"
	"testing"
)

var noReq = Request{}

func TestAllow_Evaluate_Passes(t *testing.T) {
	if err := Eval(context.Background(), Allow, noReq); err != nil {
		t.Fatalf("Allow should pass, got %v", err)
	}
}

func TestDeny_Evaluate_DefaultMessage(t *testing.T) {
	err := Eval(context.Background(), Deny, noReq)
	if err == nil {
		t.Fatal("Deny should fail")
	}
	if err.Error() != "Access denied" {
		t.Fatalf("expected default message, got %q", err.Error())
	}
}

func TestDenyWithMessage_Evaluate_CustomMessage(t *testing.T) {
	err := Eval(context.Background(), DenyWithMessage("no tokens left"), noReq)
	if err == nil || err.Error() != "no tokens left" {
		t.Fatalf("expected custom message, got %v", err)
	}
}

func TestFunc_Evaluate_ReceivesRequest(t *testing.T) {
	var got Request
	r := Func(func(_ context.Context, req Request) error {
		got = req
		return nil
	})

	req := Request{Path: []string{"users", "get"}, Input: map[string]string{"id": "42"}}
	if err := Eval(context.Background(), r, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Path) != 2 || got.Path[0] != "users" || got.Path[1] != "get" {
		t.Fatalf("rule saw wrong path: %v", got.Path)
	}
	if got.Input == nil {
		t.Fatal("rule did not see the input")
	}
}

// ---------------------------------------------------------------------------
// Eval panic recovery
// ---------------------------------------------------------------------------

func TestEval_PanicString_BecomesError(t *testing.T) {
	r := Func(func(context.Context, Request) error {
		panic("rule blew up")
	})

	err := Eval(context.Background(), r, noReq)
	if err == nil {
		t.Fatal("expected error from panicking rule")
	}
	if err.Error() != "rule blew up" {
		t.Fatalf("expected panic message, got %q", err.Error())
	}
}

func TestEval_PanicError_PreservesError(t *testing.T) {
	cause := errors.New("lookup failed")
	r := Func(func(context.Context, Request) error {
		panic(cause)
	})

	err := Eval(context.Background(), r, noReq)
	if !errors.Is(err, cause) {
		t.Fatalf("expected original error, got %v", err)
	}
}

func TestEval_NoPanic_PassesResultThrough(t *testing.T) {
	want := errors.New("denied for a reason")
	r := Func(func(context.Context, Request) error { return want })

	if err := Eval(context.Background(), r, noReq); !errors.Is(err, want) {
		t.Fatalf("expected rule's own error, got %v", err)
	}
}
