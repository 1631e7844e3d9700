package tree_test

import (
	"context"
	"strings"
	"testing"

	apperrors "github.com/kbukum/shieldkit/errors"
	"github.com/kbukum/shieldkit/rule"
	"github.com/kbukum/shieldkit/tree"
)

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestValidate_Empty(t *testing.T) {
	if err := tree.Validate(tree.Tree{}); err != nil {
		t.Fatalf("empty tree is valid, got %v", err)
	}
}

func TestValidate_NestedTree(t *testing.T) {
	valid := tree.Tree{
		"users": tree.Tree{
			"list": tree.Leaf(rule.Allow),
			"profile": tree.Tree{
				"get": tree.Leaf(rule.Allow),
			},
		},
	}
	if err := tree.Validate(valid); err != nil {
		t.Fatalf("expected valid tree, got %v", err)
	}
}

func TestValidate_NilEntry_NamesPath(t *testing.T) {
	err := tree.Validate(tree.Tree{"a": nil})
	if err == nil {
		t.Fatal("nil entry must fail validation")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeInvalidRuleTree {
		t.Fatalf("expected INVALID_RULE_TREE, got %v", err)
	}
	if appErr.Path() != "a" {
		t.Fatalf("expected offending path %q, got %q", "a", appErr.Path())
	}
}

func TestValidate_NestedOffender_DottedPath(t *testing.T) {
	err := tree.Validate(tree.Tree{
		"users": tree.Tree{
			"profile": tree.Tree{
				"update": nil,
			},
		},
	})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	appErr, _ := apperrors.AsAppError(err)
	if appErr.Path() != "users.profile.update" {
		t.Fatalf("expected dotted path to offender, got %q", appErr.Path())
	}
}

func TestValidate_NilLeafRule(t *testing.T) {
	err := tree.Validate(tree.Tree{"a": tree.Leaf(nil)})
	if err == nil || !strings.Contains(err.Error(), "no rule") {
		t.Fatalf("leaf without a rule must fail validation, got %v", err)
	}
}

func TestValidate_EmptySegment(t *testing.T) {
	err := tree.Validate(tree.Tree{"": tree.Leaf(rule.Allow)})
	if err == nil {
		t.Fatal("empty path segment must fail validation")
	}
}

// ---------------------------------------------------------------------------
// Resolve
// ---------------------------------------------------------------------------

func testTree(r rule.Rule) tree.Tree {
	return tree.Tree{
		"users": tree.Tree{
			"list": tree.Leaf(rule.Allow),
			"profile": tree.Tree{
				"get": tree.Leaf(r),
			},
		},
	}
}

func TestResolve_ExactPath_RoundTrip(t *testing.T) {
	marker := rule.DenyWithMessage("marker")
	tr := testTree(marker)

	got, ok := tree.Resolve(tr, []string{"users", "profile", "get"})
	if !ok {
		t.Fatal("expected to resolve the exact path")
	}
	err := rule.Eval(context.Background(), got, rule.Request{})
	if err == nil || err.Error() != "marker" {
		t.Fatal("resolved rule is not the one stored at the path")
	}
}

func TestResolve_PathLongerThanRule_NotFound(t *testing.T) {
	tr := testTree(rule.Allow)
	if _, ok := tree.Resolve(tr, []string{"users", "profile", "get", "extra"}); ok {
		t.Fatal("indexing past a rule leaf must not resolve")
	}
}

func TestResolve_PathShorterThanRule_NotFound(t *testing.T) {
	tr := testTree(rule.Allow)
	if _, ok := tree.Resolve(tr, []string{"users", "profile"}); ok {
		t.Fatal("a path stopping on a subtree must not resolve")
	}
}

func TestResolve_MissingSegment_NotFound(t *testing.T) {
	tr := testTree(rule.Allow)
	if _, ok := tree.Resolve(tr, []string{"users", "unknown"}); ok {
		t.Fatal("a missing segment must not resolve")
	}
}

func TestResolve_EmptyPath_NotFound(t *testing.T) {
	tr := testTree(rule.Allow)
	if _, ok := tree.Resolve(tr, nil); ok {
		t.Fatal("the empty path resolves against the root subtree, not a rule")
	}
}

func TestResolve_EmptyTree_NotFound(t *testing.T) {
	if _, ok := tree.Resolve(tree.Tree{}, []string{"users"}); ok {
		t.Fatal("nothing resolves in an empty tree")
	}
}
