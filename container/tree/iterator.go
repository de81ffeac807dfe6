package tree

// Order is the order in which an Iterator visits the nodes of a tree
type Order uint8

const (
	// InOrder visits the left subtree, the node and then the right subtree
	InOrder Order = iota

	// PreOrder visits the node before its left and right subtrees
	PreOrder

	// PostOrder visits the left and right subtrees before the node
	PostOrder
)

// Iterator lazily produces the values of a tree in a given order.
// The tree must not be modified while an iteration is in progress.
// An Iterator can be restarted with Reset
type Iterator struct {
	tree  *Tree
	root  *Node
	order Order
	stack []*Node
	last  *Node
}

func newIterator(root *Node, order Order) *Iterator {
	it := &Iterator{root: root, order: order}
	it.Reset()
	return it
}

// Iterator returns an iterator over the values of the tree
func (t *Tree) Iterator(order Order) *Iterator {
	it := &Iterator{tree: t, order: order}
	it.Reset()
	return it
}

// Reset restarts the iteration from the first value. Iterators
// obtained from a Tree start again from its current root, so
// changes made to the tree between iterations are visible
func (it *Iterator) Reset() {
	it.stack = it.stack[:0]
	it.last = nil
	if it.tree != nil {
		it.root = it.tree.root
	}

	switch it.order {
	case PreOrder:
		if it.root != nil {
			it.stack = append(it.stack, it.root)
		}
	default:
		it.pushLeft(it.root)
	}
}

// Next returns the next value of the iteration. It returns false
// once all the values have been produced
func (it *Iterator) Next() (interface{}, bool) {
	n := it.next()
	if n == nil {
		return nil, false
	}

	return n.Value, true
}

func (it *Iterator) next() *Node {
	switch it.order {
	case PreOrder:
		return it.nextPreOrder()
	case PostOrder:
		return it.nextPostOrder()
	default:
		return it.nextInOrder()
	}
}

func (it *Iterator) pushLeft(n *Node) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *Iterator) pop() *Node {
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	return n
}

func (it *Iterator) nextInOrder() *Node {
	if len(it.stack) == 0 {
		return nil
	}

	n := it.pop()
	it.pushLeft(n.right)
	return n
}

func (it *Iterator) nextPreOrder() *Node {
	if len(it.stack) == 0 {
		return nil
	}

	n := it.pop()
	if n.right != nil {
		it.stack = append(it.stack, n.right)
	}
	if n.left != nil {
		it.stack = append(it.stack, n.left)
	}

	return n
}

func (it *Iterator) nextPostOrder() *Node {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]

		// the right subtree of top has not been visited yet
		if top.right != nil && top.right != it.last {
			it.pushLeft(top.right)
			continue
		}

		it.last = it.pop()
		return it.last
	}

	return nil
}
