package tree

// modifier is a pair of algorithms used to insert
// and remove nodes from the tree
type modifier interface {
	// Insert a node into the tree. It returns false without
	// modifying the tree if a node with an equal value is
	// already present
	Insert(t *Tree, n *Node) bool

	// Delete the node holding a value equal to v. It returns
	// false if there is no such node
	Delete(t *Tree, v interface{}) bool
}
