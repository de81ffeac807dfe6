package tree

import "golang.org/x/exp/constraints"

// Lesser compares two values. A Lesser must define a strict
// total order over the values stored in a tree
type Lesser interface {
	// Less returns
	//
	//	-1 if a < b
	//	 0 if a == b
	//	 1 if a > b
	Less(a, b interface{}) int
}

// LesserFunc allows functions to implement the Lesser interface
type LesserFunc func(a, b interface{}) int

// Less implementation of Lesser for LesserFunc
func (f LesserFunc) Less(a, b interface{}) int {
	return f(a, b)
}

// OrderedLesser implementation of the Lesser interface for
// any type whose values can be compared with the < operator.
// Values of any other type passed to Less cause a panic
type OrderedLesser[T constraints.Ordered] struct{}

// Less returns
//
//	-1 if a < b
//	 0 if a == b
//	 1 if a > b
func (OrderedLesser[T]) Less(a, b interface{}) int {
	x, y := a.(T), b.(T)
	if x < y {
		return -1
	} else if x > y {
		return 1
	} else {
		return 0
	}
}

// IntLesser implementation of the Lesser interface for
// integers
type IntLesser = OrderedLesser[int]

// StringLesser implementation of the Lesser interface for
// strings
type StringLesser = OrderedLesser[string]
