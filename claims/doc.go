// Package claims provides authentication-aware rules built on JWT claims.
//
// The shield core never inspects the caller's identity itself; it only
// evaluates rules against an opaque context. This package supplies the usual
// rules a deployment needs to write a permission tree: the transport adapter
// parses a bearer token, stores the claims in the context with NewContext,
// and rules like Authenticated or HasScope read them back out.
//
//	permissions := tree.Tree{
//	    "users": tree.Tree{
//	        "list": tree.Leaf(claims.Authenticated()),
//	        "delete": tree.Leaf(rule.And(
//	            claims.Authenticated(),
//	            claims.HasScope("users:write"),
//	        )),
//	    },
//	}
//
// Scope checks use "resource:action" patterns with wildcard support, so a
// token carrying scope "users:*" satisfies HasScope("users:write").
package claims
