package tree

import (
	"fmt"
	"io"
	"strings"
)

// branch tells the printer how a node hangs from its parent
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes a sideways drawing of the tree to w, with the root on
// the left and the right subtree above the left one. Every node is
// followed by its cached height in brackets
func (t *Tree) Fprint(w io.Writer) error {
	return fprintNode(w, t.root, "", rootBranch)
}

func fprintNode(w io.Writer, n *Node, prefix string, br branch) error {
	if n == nil {
		return nil
	}

	if n.right != nil {
		indent := "       "
		if br == leftBranch {
			indent = "|      "
		}
		if err := fprintNode(w, n.right, prefix+indent, rightBranch); err != nil {
			return err
		}
	}

	var edge string
	switch br {
	case rootBranch:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}

	if _, err := fmt.Fprintf(w, "%s%s%v [%d]\n", prefix, edge, n.Value, n.height); err != nil {
		return err
	}

	if n.left != nil {
		indent := "       "
		if br == rightBranch {
			indent = "|      "
		}
		return fprintNode(w, n.left, prefix+indent, leftBranch)
	}

	return nil
}

// FprintTraversals writes the in order, post order and pre order
// traversals of the tree followed by its number of nodes
func (t *Tree) FprintTraversals(w io.Writer) error {
	traversals := []struct {
		name  string
		order Order
	}{
		{"Inorder (sorted)", InOrder},
		{"Postorder", PostOrder},
		{"Preorder", PreOrder},
	}

	for _, tr := range traversals {
		var values []string
		it := t.Iterator(tr.order)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			values = append(values, fmt.Sprint(v))
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n", tr.name, strings.Join(values, " ")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "The number of nodes is %d\n", t.len)
	return err
}
