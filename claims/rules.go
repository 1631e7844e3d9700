package claims

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kbukum/shieldkit/rule"
)

// Authenticated returns a rule that passes when the context carries parsed
// claims and denies with "not authenticated" otherwise.
func Authenticated() rule.Rule {
	return rule.Func(func(ctx context.Context, _ rule.Request) error {
		if _, ok := FromContext(ctx); !ok {
			return errors.New("not authenticated")
		}
		return nil
	})
}

// HasScope returns a rule that passes when the caller's "scope" claim (a
// space-separated list, as issued by most OAuth providers) contains a scope
// matching required. Wildcard patterns in the token are honored, so a token
// with scope "users:*" satisfies HasScope("users:write").
func HasScope(required string) rule.Rule {
	return rule.Func(func(ctx context.Context, _ rule.Request) error {
		c, ok := FromContext(ctx)
		if !ok {
			return errors.New("not authenticated")
		}
		if MatchAny(scopesOf(c), required) {
			return nil
		}
		return fmt.Errorf("missing required scope %q", required)
	})
}

// SubjectIs returns a rule that passes only when the token's "sub" claim
// equals sub.
func SubjectIs(sub string) rule.Rule {
	return rule.Func(func(ctx context.Context, _ rule.Request) error {
		c, ok := FromContext(ctx)
		if !ok {
			return errors.New("not authenticated")
		}
		actual, err := c.GetSubject()
		if err != nil || actual != sub {
			return errors.New("subject mismatch")
		}
		return nil
	})
}

func scopesOf(c map[string]any) []string {
	raw, ok := c["scope"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case string:
		return strings.Fields(v)
	case []any:
		scopes := make([]string, 0, len(v))
		for _, s := range v {
			if str, ok := s.(string); ok {
				scopes = append(scopes, str)
			}
		}
		return scopes
	default:
		return nil
	}
}
