package tree

import "github.com/sirupsen/logrus"

// height returns the cached height of n, or absentHeight for
// a missing node
func height(n *Node) int {
	if n == nil {
		return absentHeight
	}

	return n.height
}

// updateHeight recomputes the height of n from the cached heights
// of its children, which must already be up to date
func updateHeight(n *Node) {
	n.height = heightFromChildren(n)
}

func heightFromChildren(n *Node) int {
	l, r := height(n.left), height(n.right)
	if l > r {
		return 1 + l
	}

	return 1 + r
}

// balanceFactor returns the height of the right subtree of n
// minus the height of its left subtree
func balanceFactor(n *Node) int {
	return height(n.right) - height(n.left)
}

// avl is a pair of algorithms that insert and delete nodes
// with the shape algorithms of unbalanced and then restore
// the AVL property, that is, the heights of the two subtrees
// of every node differ at most by one
type avl struct {
	unbalanced
}

func (m avl) Insert(t *Tree, n *Node) bool {
	if !m.unbalanced.Insert(t, n) {
		return false
	}

	m.balancePath(t, n.Value)
	return true
}

func (m avl) Delete(t *Tree, v interface{}) bool {
	ok, changed := m.unbalanced.Detach(t, v)
	if !ok {
		return false
	}

	// a nil changed node means the root was replaced by its right
	// subtree, which is already balanced
	if changed != nil {
		m.balancePath(t, changed.Value)
	}

	return true
}

// balancePath walks the path from the root to the node holding v
// bottom up, updating heights and rotating every node whose
// balance factor went out of [-1, 1]
func (m avl) balancePath(t *Tree, v interface{}) {
	nodes := path(t, v)

	for i := len(nodes) - 1; i >= 0; i-- {
		a := nodes[i]
		updateHeight(a)

		var parent *Node
		if i > 0 {
			parent = nodes[i-1]
		}

		switch balanceFactor(a) {
		case -2:
			if balanceFactor(a.left) <= 0 {
				m.logRotation(t, "LL", a, rotateLL(t, a, parent))
			} else {
				m.logRotation(t, "LR", a, rotateLR(t, a, parent))
			}
		case 2:
			if balanceFactor(a.right) >= 0 {
				m.logRotation(t, "RR", a, rotateRR(t, a, parent))
			} else {
				m.logRotation(t, "RL", a, rotateRL(t, a, parent))
			}
		}
	}
}

func (avl) logRotation(t *Tree, rotation string, pivot, promoted *Node) {
	t.logger().WithFields(logrus.Fields{
		"op":       "rebalance",
		"rotation": rotation,
		"pivot":    pivot.Value,
		"promoted": promoted.Value,
	}).Debug("rotated subtree")
}

// NewAVLTree creates a new instance of a tree using AVL as the
// modifier algorithm. The tree is rebalanced after every
// insert and delete so that its height stays within
// 1.44 * log2(n + 2) levels for n nodes
func NewAVLTree(cmp Lesser) *Tree {
	return &Tree{cmp: cmp, mod: avl{}}
}
