// Package tree implements binary search trees over values ordered
// by a Lesser. The shape of a tree is maintained by a modifier:
// NewUnbalancedTree keeps the plain search tree shape given by the
// order of the operations, NewAVLTree rebalances after every insert
// and delete so that the height of the tree stays logarithmic.
//
// A tree is not safe for concurrent use. Callers that share a tree
// between goroutines must serialize every operation, including
// walks, which temporarily rewire nodes.
package tree

import "github.com/sirupsen/logrus"

// Log is the logger used by trees that have not been configured
// with their own logger through SetLogger
var Log = logrus.New()

// absentHeight is the height of a missing child. A leaf has height 0
const absentHeight = -1

// Node of a tree
type Node struct {
	Value interface{}

	height int
	left   *Node
	right  *Node
}

func newNode(v interface{}) *Node {
	return &Node{Value: v}
}

// Left returns the node's left child
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the node's right child
func (n *Node) Right() *Node {
	return n.right
}

// Height returns the height of the subtree rooted at the node as
// cached by the tree's modifier. Leaves have height 0. Trees created
// with NewUnbalancedTree do not maintain this value
func (n *Node) Height() int {
	return n.height
}

// IsLeaf returns true if the node has no children
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the subtree
// is empty
func (n *Node) Min() *Node {
	if n == nil {
		return nil
	}

	curr := n
	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order. It returns nil if the subtree
// is empty
func (n *Node) Max() *Node {
	if n == nil {
		return nil
	}

	curr := n
	for curr.right != nil {
		curr = curr.right
	}

	return curr
}

// InOrderWalk implements an in order walk
// on the subtree using Morris traversal.
func (n *Node) InOrderWalk(fn func(*Node)) {
	var prev *Node

	for curr := n; curr != nil; {
		if curr.left == nil {
			fn(curr)
			curr = curr.right

		} else {
			prev = curr.left
			for prev.right != nil && prev.right != curr {
				prev = prev.right
			}

			if prev.right == nil {
				// thread the predecessor back to curr so that the
				// walk can return once the left subtree is visited
				prev.right = curr
				curr = curr.left
			} else {
				// restore the value of prev.right
				prev.right = nil
				fn(curr)
				curr = curr.right
			}
		}
	}
}

// PreOrderWalk implements a pre order walk
// on the subtree using Morris traversal.
func (n *Node) PreOrderWalk(fn func(*Node)) {
	var prev *Node

	for curr := n; curr != nil; {
		if curr.left == nil {
			fn(curr)
			curr = curr.right

		} else {
			prev = curr.left
			for prev.right != nil && prev.right != curr {
				prev = prev.right
			}

			if prev.right == nil {
				prev.right = curr
				fn(curr)
				curr = curr.left

			} else {
				// restore the value of prev.right
				prev.right = nil
				curr = curr.right
			}
		}
	}
}

// PostOrderWalk implements a post order walk on the
// subtree. Children are visited before their parent,
// the left subtree before the right one
func (n *Node) PostOrderWalk(fn func(*Node)) {
	it := newIterator(n, PostOrder)
	for curr := it.next(); curr != nil; curr = it.next() {
		fn(curr)
	}
}

// Tree represents a binary search tree
type Tree struct {
	root *Node
	cmp  Lesser
	mod  modifier
	log  logrus.FieldLogger
	len  int
}

// SetLogger sets the logger used to report the structural
// changes applied to the tree
func (t *Tree) SetLogger(l logrus.FieldLogger) {
	t.log = l
}

func (t *Tree) logger() logrus.FieldLogger {
	if t.log == nil {
		return Log
	}

	return t.log
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree) Root() *Node {
	return t.root
}

// Height returns the height of the tree computed from its
// nodes. It returns -1 for an empty tree
func (t *Tree) Height() int {
	return measureHeight(t.root)
}

// Min returns the node in the tree with the
// lowest value. It returns nil if the tree
// is empty
func (t *Tree) Min() *Node {
	return t.root.Min()
}

// Max returns the node in the tree with the
// highest value. It returns nil if tree
// is empty
func (t *Tree) Max() *Node {
	return t.root.Max()
}

// Higher returns the node in the tree of the lowest
// order which is strictly higher than v
func (t *Tree) Higher(v interface{}) *Node {
	var higher *Node

	for curr := t.root; curr != nil; {
		if t.cmp.Less(v, curr.Value) < 0 {
			higher = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return higher
}

// Lower returns the node in the tree of the highest
// order which is strictly lower than v
func (t *Tree) Lower(v interface{}) *Node {
	var lower *Node

	for curr := t.root; curr != nil; {
		if t.cmp.Less(v, curr.Value) > 0 {
			lower = curr
			curr = curr.right
		} else {
			curr = curr.left
		}
	}

	return lower
}

// Contains returns true if the tree contains
// a node with value v
func (t *Tree) Contains(v interface{}) bool {
	return t.Find(v) != nil
}

// Find returns the node in the tree that
// contains a value equal to the one provided
func (t *Tree) Find(v interface{}) *Node {
	for curr := t.root; curr != nil; {
		switch c := t.cmp.Less(v, curr.Value); {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr
		}
	}

	return nil
}

// Path returns the values of the nodes visited when descending
// from the root towards v. The last value is v itself if the
// tree contains it, otherwise the value of the node under which
// v would be inserted
func (t *Tree) Path(v interface{}) []interface{} {
	nodes := path(t, v)
	values := make([]interface{}, len(nodes))
	for i, n := range nodes {
		values[i] = n.Value
	}

	return values
}

// InOrderWalk implements an in order walk
// on the tree using Morris traversal.
func (t *Tree) InOrderWalk(fn func(*Node)) {
	t.root.InOrderWalk(fn)
}

// PreOrderWalk implements a pre order walk
// on the tree using Morris traversal.
func (t *Tree) PreOrderWalk(fn func(*Node)) {
	t.root.PreOrderWalk(fn)
}

// PostOrderWalk implements a post order walk
// on the tree
func (t *Tree) PostOrderWalk(fn func(*Node)) {
	t.root.PostOrderWalk(fn)
}

// Values returns all the values of the tree in order. Unlike
// InOrderWalk it never rewires the nodes of the tree
func (t *Tree) Values() []interface{} {
	values := make([]interface{}, 0, t.len)
	it := t.Iterator(InOrder)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		values = append(values, v)
	}

	return values
}

// Insert a value into the tree. It returns false if the
// tree already contains a value equal to v, in which
// case the tree is left untouched
func (t *Tree) Insert(v interface{}) bool {
	if !t.mod.Insert(t, newNode(v)) {
		t.logger().WithFields(logrus.Fields{
			"op":    "insert",
			"value": v,
		}).Debug("value already present")
		return false
	}

	t.len++
	return true
}

// InsertAll inserts the values in the order given and
// returns how many of them were added to the tree
func (t *Tree) InsertAll(vs ...interface{}) int {
	inserted := 0
	for _, v := range vs {
		if t.Insert(v) {
			inserted++
		}
	}

	return inserted
}

// Delete the node on the tree that has value
// equal to v
func (t *Tree) Delete(v interface{}) bool {
	if !t.mod.Delete(t, v) {
		t.logger().WithFields(logrus.Fields{
			"op":    "delete",
			"value": v,
		}).Debug("value not found")
		return false
	}

	t.len--
	return true
}

// Clear removes all the nodes from the tree
func (t *Tree) Clear() {
	t.root = nil
	t.len = 0
}
