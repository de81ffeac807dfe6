package tree

// Rotations restructure the subtree rooted at a so that it
// becomes balanced again. Every rotation takes the parent of a,
// nil when a is the root, hooks the promoted node in the slot that
// held a and returns it. Heights of the nodes that moved are
// recomputed children first.

// rotateLL is a single right rotation for a node whose left
// subtree is too tall on its left side
//
//	     a            b
//	    / \          / \
//	   b   t3  ->  t1   a
//	  / \              / \
//	t1   t2          t2   t3
func rotateLL(t *Tree, a *Node, parent *Node) *Node {
	b := a.left

	unbalanced{}.Transplant(t, parent, a, b)
	a.left = b.right
	b.right = a

	updateHeight(a)
	updateHeight(b)
	return b
}

// rotateRR is a single left rotation, the mirror of rotateLL
//
//	  a                b
//	 / \              / \
//	t1   b    ->     a   t3
//	    / \         / \
//	  t2   t3     t1   t2
func rotateRR(t *Tree, a *Node, parent *Node) *Node {
	b := a.right

	unbalanced{}.Transplant(t, parent, a, b)
	a.right = b.left
	b.left = a

	updateHeight(a)
	updateHeight(b)
	return b
}

// rotateLR is a left rotation on the left child followed by a right
// rotation on a, for a node whose left subtree is too tall on its
// right side
//
//	     a                c
//	    / \             /   \
//	   b   t4          b     a
//	  / \       ->    / \   / \
//	t1   c          t1  t2 t3  t4
//	    / \
//	  t2   t3
func rotateLR(t *Tree, a *Node, parent *Node) *Node {
	b := a.left
	c := b.right

	unbalanced{}.Transplant(t, parent, a, c)
	a.left = c.right
	b.right = c.left
	c.left = b
	c.right = a

	updateHeight(a)
	updateHeight(b)
	updateHeight(c)
	return c
}

// rotateRL is the mirror of rotateLR
//
//	  a                  c
//	 / \               /   \
//	t1   b            a     b
//	    / \    ->    / \   / \
//	   c   t4      t1  t2 t3  t4
//	  / \
//	t2   t3
func rotateRL(t *Tree, a *Node, parent *Node) *Node {
	b := a.right
	c := b.left

	unbalanced{}.Transplant(t, parent, a, c)
	a.right = c.left
	b.left = c.right
	c.left = a
	c.right = b

	updateHeight(a)
	updateHeight(b)
	updateHeight(c)
	return c
}
