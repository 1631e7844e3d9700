// Package tree maps hierarchical procedure paths to rules.
//
// A Tree is a nested mapping from path segment to either a rule leaf or a
// deeper Tree. Trees are built once, validated at shield construction, and
// shared read-only across requests.
//
//	permissions := tree.Tree{
//	    "users": tree.Tree{
//	        "list": tree.Leaf(rule.Allow),
//	        "profile": tree.Tree{
//	            "get": tree.Leaf(isAuthenticated),
//	        },
//	    },
//	}
//
// Resolution consumes the request path segment by segment and succeeds only
// when the final segment lands exactly on a leaf: a path that stops at a
// subtree or runs past a leaf resolves to not-found.
package tree
