package tree

import "fmt"

// ErrOrderViolation is returned by Validate when a node holds a value
// that is not strictly between the values of its ancestors that bound it
type ErrOrderViolation struct {
	Value interface{}
}

// Error implementation of error for ErrOrderViolation
func (e ErrOrderViolation) Error() string {
	return fmt.Sprintf("value %v breaks the search tree order", e.Value)
}

// ErrBalanceViolation is returned by Validate when the heights of the
// subtrees of a node differ by more than one
type ErrBalanceViolation struct {
	Value  interface{}
	Factor int
}

// Error implementation of error for ErrBalanceViolation
func (e ErrBalanceViolation) Error() string {
	return fmt.Sprintf("node %v has balance factor %d", e.Value, e.Factor)
}

// ErrStaleHeight is returned by Validate when the height cached by a
// node differs from the height of its subtree
type ErrStaleHeight struct {
	Value  interface{}
	Cached int
	Actual int
}

// Error implementation of error for ErrStaleHeight
func (e ErrStaleHeight) Error() string {
	return fmt.Sprintf("node %v caches height %d but has height %d", e.Value, e.Cached, e.Actual)
}

// ErrSizeMismatch is returned by Validate when the number of nodes
// reachable from the root differs from the length of the tree
type ErrSizeMismatch struct {
	Len     int
	Counted int
}

// Error implementation of error for ErrSizeMismatch
func (e ErrSizeMismatch) Error() string {
	return fmt.Sprintf("tree reports %d nodes but holds %d", e.Len, e.Counted)
}
