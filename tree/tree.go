package tree

import (
	"sort"

	apperrors "github.com/kbukum/shieldkit/errors"
	"github.com/kbukum/shieldkit/rule"
)

// Node is one entry in a rule tree: either a rule leaf or a nested Tree.
// The two implementations are Tree and the value returned by Leaf.
type Node interface {
	node()
}

// Tree maps a path segment to the node governing that segment.
type Tree map[string]Node

func (Tree) node() {}

// Leaf wraps a rule as a tree node.
func Leaf(r rule.Rule) Node {
	return leaf{r}
}

type leaf struct {
	rule rule.Rule
}

func (leaf) node() {}

// Validate checks that every entry in the tree is well formed: segments are
// non-empty, nodes are non-nil, and leaves carry a rule. The first offender
// encountered (in sorted segment order, for deterministic reporting) aborts
// validation with an error naming its dotted path. Runs once, at shield
// construction; requests never see a malformed tree.
func Validate(t Tree) error {
	return validate(t, "")
}

func validate(t Tree, prefix string) error {
	segments := make([]string, 0, len(t))
	for segment := range t {
		segments = append(segments, segment)
	}
	sort.Strings(segments)

	for _, segment := range segments {
		path := segment
		if prefix != "" {
			path = prefix + "." + segment
		}
		if segment == "" {
			return apperrors.InvalidTree(prefix, "empty path segment")
		}
		switch n := t[segment].(type) {
		case Tree:
			if err := validate(n, path); err != nil {
				return err
			}
		case leaf:
			if n.rule == nil {
				return apperrors.InvalidTree(path, "leaf has no rule")
			}
		default:
			return apperrors.InvalidTree(path, "entry is neither a rule nor a subtree")
		}
	}
	return nil
}

// Resolve walks path through t and returns the governing rule. It fails when
// a segment is missing, when the walk reaches a leaf before the path is
// consumed, or when the consumed path stops on a subtree. Only a walk that
// consumes every segment and lands exactly on a leaf succeeds; in particular
// the empty path never resolves, since the root is a subtree.
func Resolve(t Tree, path []string) (rule.Rule, bool) {
	var current Node = t
	for _, segment := range path {
		subtree, ok := current.(Tree)
		if !ok {
			return nil, false
		}
		current, ok = subtree[segment]
		if !ok {
			return nil, false
		}
	}
	l, ok := current.(leaf)
	if !ok {
		return nil, false
	}
	return l.rule, true
}
