package interceptor

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kbukum/shieldkit/rule"
	"github.com/kbukum/shieldkit/shield"
	"github.com/kbukum/shieldkit/tree"
)

func TestPathFromMethod(t *testing.T) {
	tests := []struct {
		method string
		want   []string
	}{
		{"/users.Users/GetProfile", []string{"users", "Users", "GetProfile"}},
		{"/api.v1.users.Users/List", []string{"api", "v1", "users", "Users", "List"}},
		{"/Users/List", []string{"Users", "List"}},
		{"weird", []string{"weird"}},
	}
	for _, tt := range tests {
		if got := PathFromMethod(tt.method); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PathFromMethod(%q) = %v, want %v", tt.method, got, tt.want)
		}
	}
}

func buildShield(t *testing.T, tr tree.Tree, opts shield.Options) *shield.Shield {
	t.Helper()
	s, err := shield.New(tr, opts)
	if err != nil {
		t.Fatalf("building shield: %v", err)
	}
	return s
}

func TestUnaryServer_Allowed_CallsHandler(t *testing.T) {
	s := buildShield(t, tree.Tree{
		"users": tree.Tree{"Users": tree.Tree{"List": tree.Leaf(rule.Allow)}},
	}, shield.Options{Fallback: rule.Deny})

	intercept := UnaryServer(s)
	out, err := intercept(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/users.Users/List"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return "resp", nil
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "resp" {
		t.Fatalf("handler result must be returned unmodified, got %v", out)
	}
}

func TestUnaryServer_Denied_ReturnsPermissionDenied(t *testing.T) {
	s := buildShield(t, tree.Tree{
		"users": tree.Tree{"Users": tree.Tree{"Delete": tree.Leaf(rule.DenyWithMessage("admins only"))}},
	}, shield.Options{})

	intercept := UnaryServer(s)
	called := false
	_, err := intercept(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/users.Users/Delete"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			called = true
			return nil, nil
		})
	if called {
		t.Fatal("handler must not run on denial")
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied status, got %v", err)
	}
	if st.Message() != "admins only" {
		t.Fatalf("expected denial reason, got %q", st.Message())
	}
}

func TestUnaryServer_UnlistedMethod_FallbackDenies(t *testing.T) {
	s := buildShield(t, tree.Tree{}, shield.Options{Fallback: rule.Deny})

	intercept := UnaryServer(s)
	_, err := intercept(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/users.Users/List"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, nil
		})
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied status, got %v", err)
	}
}

func TestUnaryServer_HandlerError_KeepsOwnStatus(t *testing.T) {
	s := buildShield(t, tree.Tree{}, shield.Options{})

	handlerErr := errors.New("handler broke")
	intercept := UnaryServer(s)
	_, err := intercept(context.Background(), "req",
		&grpc.UnaryServerInfo{FullMethod: "/users.Users/List"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, handlerErr
		})
	if !errors.Is(err, handlerErr) {
		t.Fatalf("handler errors must pass through, got %v", err)
	}
}
