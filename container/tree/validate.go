package tree

import "github.com/pkg/errors"

// IsOrdered returns true if the subtree rooted at n is a valid
// binary search tree, that is, every value in the left subtree of
// a node is lower than the node's value and every value in its
// right subtree is higher
func (t *Tree) IsOrdered(n *Node) bool {
	return t.orderViolation(n, nil, nil) == nil
}

// orderViolation returns the first node found whose value is not
// strictly between the values of the nodes lo and hi. A nil bound
// is unbounded
func (t *Tree) orderViolation(n *Node, lo, hi *Node) *Node {
	if n == nil {
		return nil
	}

	if lo != nil && t.cmp.Less(n.Value, lo.Value) <= 0 {
		return n
	}

	if hi != nil && t.cmp.Less(n.Value, hi.Value) >= 0 {
		return n
	}

	if v := t.orderViolation(n.left, lo, n); v != nil {
		return v
	}

	return t.orderViolation(n.right, n, hi)
}

// IsHeightBalanced returns true if the heights of the two subtrees
// of every node in the subtree rooted at n differ at most by one.
// Heights are measured from the nodes and not from the values
// cached by the tree
func (t *Tree) IsHeightBalanced(n *Node) bool {
	_, ok := balancedHeight(n)
	return ok
}

// balancedHeight returns the height of n and whether the subtree
// is height balanced
func balancedHeight(n *Node) (int, bool) {
	if n == nil {
		return absentHeight, true
	}

	l, ok := balancedHeight(n.left)
	if !ok {
		return 0, false
	}

	r, ok := balancedHeight(n.right)
	if !ok {
		return 0, false
	}

	if l-r > 1 || r-l > 1 {
		return 0, false
	}

	if l > r {
		return 1 + l, true
	}

	return 1 + r, true
}

// measureHeight returns the height of the subtree rooted at n
// without using cached heights
func measureHeight(n *Node) int {
	if n == nil {
		return absentHeight
	}

	l, r := measureHeight(n.left), measureHeight(n.right)
	if l > r {
		return 1 + l
	}

	return 1 + r
}

// Validate checks every invariant of an AVL tree and returns an
// error describing the first one found broken. The cause can be
// retrieved with errors.Cause. Trees created with NewUnbalancedTree
// are only expected to satisfy the order and size invariants
func (t *Tree) Validate() error {
	if n := t.orderViolation(t.root, nil, nil); n != nil {
		return errors.Wrap(ErrOrderViolation{Value: n.Value}, "invalid order")
	}

	count, err := t.validateHeights(t.root)
	if err != nil {
		return errors.Wrap(err, "invalid heights")
	}

	if count != t.len {
		return errors.Wrap(ErrSizeMismatch{Len: t.len, Counted: count}, "invalid size")
	}

	return nil
}

// validateHeights checks the cached height and the balance factor of
// every node bottom up and returns the number of nodes visited
func (t *Tree) validateHeights(n *Node) (int, error) {
	if n == nil {
		return 0, nil
	}

	lc, err := t.validateHeights(n.left)
	if err != nil {
		return 0, err
	}

	rc, err := t.validateHeights(n.right)
	if err != nil {
		return 0, err
	}

	// children heights are verified at this point
	if actual := heightFromChildren(n); n.height != actual {
		return 0, ErrStaleHeight{Value: n.Value, Cached: n.height, Actual: actual}
	}

	if f := balanceFactor(n); f < -1 || f > 1 {
		return 0, ErrBalanceViolation{Value: n.Value, Factor: f}
	}

	return 1 + lc + rc, nil
}
