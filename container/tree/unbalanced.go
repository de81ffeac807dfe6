package tree

// unbalanced is a pair of algorithms that insert
// and delete nodes from the tree without applying any
// balancing strategy
type unbalanced struct{}

// Insert the node into the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm. The node
// is always placed as a new leaf
func (unbalanced) Insert(t *Tree, n *Node) bool {
	var parent *Node
	var isLeft bool

	curr := t.root

	for curr != nil {
		parent = curr
		switch c := t.cmp.Less(n.Value, curr.Value); {
		case c < 0:
			isLeft = true
			curr = curr.left
		case c > 0:
			isLeft = false
			curr = curr.right
		default:
			return false
		}
	}

	n.left, n.right, n.height = nil, nil, 0

	switch {
	case parent == nil:
		t.root = n
	case isLeft:
		parent.left = n
	default:
		parent.right = n
	}

	return true
}

// Delete the node from the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm
func (m unbalanced) Delete(t *Tree, v interface{}) bool {
	ok, _ := m.Detach(t, v)
	return ok
}

// Detach removes the node holding v from the tree. A node without
// left child is replaced by its right subtree. Otherwise the node takes
// the value of its in order predecessor, the rightmost node of its left
// subtree, and the predecessor is replaced by its own left subtree.
// Detach returns the deepest node whose subtree changed, which is nil
// when the root itself was replaced
func (m unbalanced) Detach(t *Tree, v interface{}) (bool, *Node) {
	var parent *Node

	curr := t.root
	for curr != nil {
		c := t.cmp.Less(v, curr.Value)
		if c == 0 {
			break
		}

		parent = curr
		if c < 0 {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	if curr == nil {
		return false, nil
	}

	if curr.left == nil {
		m.Transplant(t, parent, curr, curr.right)
		return true, parent
	}

	parentOfPred := curr
	pred := curr.left
	for pred.right != nil {
		parentOfPred = pred
		pred = pred.right
	}

	curr.Value = pred.Value
	m.Transplant(t, parentOfPred, pred, pred.left)
	return true, parentOfPred
}

// Transplant replaces the subtree u, child of parent, with the subtree
// v. A nil parent means that u is the root of the tree
func (unbalanced) Transplant(t *Tree, parent *Node, u *Node, v *Node) {
	switch {
	case parent == nil:
		t.root = v
	case u == parent.left:
		parent.left = v
	case u == parent.right:
		parent.right = v
	default:
		panic("unreachable statement")
	}
}

// path returns the nodes visited when descending from the root
// towards v. The last node holds v, or is the node under which v
// would be inserted if the tree does not contain it
func path(t *Tree, v interface{}) []*Node {
	var nodes []*Node

	for curr := t.root; curr != nil; {
		nodes = append(nodes, curr)
		c := t.cmp.Less(v, curr.Value)
		if c == 0 {
			break
		}

		if c < 0 {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return nodes
}

// NewUnbalancedTree creates a new instance of a tree using Unbalanced
// as the modifier algorithm. How balanced the branches
// of the tree are depends exclusively on the order
// of the insert and delete operations performed
// on the tree
func NewUnbalancedTree(cmp Lesser) *Tree {
	return &Tree{cmp: cmp, mod: unbalanced{}}
}
