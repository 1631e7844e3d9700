// Package shield ties a rule tree to a request pipeline.
//
// A Shield is built once from a tree.Tree plus Options, validating the tree
// eagerly, and is then shared read-only across concurrent requests. Per call,
// Handle resolves the rule governing the procedure path (falling back to the
// configured rule when the path has no entry), evaluates it, and either
// invokes the continuation or returns a structured denial carrying the reason
// and the path.
//
//	s, err := shield.New(permissions, shield.Options{
//	    Fallback: rule.Deny,
//	    DenyCode: "PERMISSION_DENIED",
//	})
//
//	out, err := s.Handle(ctx, []string{"users", "profile", "get"}, input, func(ctx context.Context) (any, error) {
//	    return handler(ctx, input)
//	})
package shield
