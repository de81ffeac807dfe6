package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const treeMaxValue = 10

type balancedTreeGenerator struct {
	level uint
	index uint

	// Highest sets the maximum value an element can have
	Highest uint
}

// Next returns the values of a complete binary search tree
// over [0, Highest] level by level. Values can repeat for
// small values of Highest
func (g *balancedTreeGenerator) Next() (int, bool) {
	if (math.Pow(2, float64(g.level)) + float64(g.index)) > float64(g.Highest) {
		return 0, false
	}

	levelElements := uint(math.Pow(2, float64(g.level)))
	value := (g.Highest * (2*g.index + 1)) / (2 * levelElements)

	g.index += 1
	if g.index >= levelElements {
		g.index = 0
		g.level += 1
	}

	return int(value), true
}

func levels(tree *Tree) [][]*Node {
	result := [][]*Node{[]*Node{tree.root}}
	currLevel := 0

	for {
		nels := int(math.Pow(2, float64(currLevel+1)))
		result = append(result, make([]*Node, nels))
		nodesAdded := 0

		for i := 0; i < nels/2; i++ {
			if result[currLevel][i] == nil {
				result[currLevel+1][2*i] = nil
				result[currLevel+1][2*i+1] = nil
			} else {
				nodesAdded += 1
				result[currLevel+1][2*i] = result[currLevel][i].left
				result[currLevel+1][2*i+1] = result[currLevel][i].right
			}
		}

		currLevel += 1
		if nodesAdded == 0 {
			break
		}
	}

	// the last level is empty so it can be removed
	return result[:currLevel-1]
}

func assertEqualTree(t *testing.T, expected [][]interface{}, tree *Tree) {
	levels := levels(tree)
	assert.Equal(t, len(expected), len(levels))
	for level := 0; level < len(expected) && level < len(levels); level++ {
		assert.Equal(t, len(expected[level]), len(levels[level]))
		for col := 0; col < len(expected[level]) && col < len(levels[level]); col++ {
			if expected[level][col] == nil {
				assert.Nil(t, levels[level][col], "level %d col %d", level, col)
			} else if assert.NotNil(t, levels[level][col], "level %d col %d", level, col) {
				assert.Equal(t, expected[level][col], levels[level][col].Value)
			}
		}
	}
}

// prePopulateTree inserts 5, 2, 7, 1, 3, 6, 8, 0, 1, 3. The repeated
// values are rejected so the tree ends up with 8 nodes
func prePopulateTree(tree *Tree) {
	if tree.Len() != 0 {
		panic("attempt to prepopulate non-emtpy tree")
	}
	it := balancedTreeGenerator{Highest: treeMaxValue}
	for {
		value, ok := it.Next()
		if !ok {
			break
		}

		tree.Insert(value)
	}
}

func intValues(tree *Tree) []int {
	var res []int
	tree.InOrderWalk(func(n *Node) {
		res = append(res, n.Value.(int))
	})

	return res
}

func TestNodeAccessors(t *testing.T) {
	tree := NewAVLTree(IntLesser{})
	tree.InsertAll(2, 1, 3)

	root := tree.Root()
	assert.Equal(t, 2, root.Value)
	assert.Equal(t, 1, root.Left().Value)
	assert.Equal(t, 3, root.Right().Value)
	assert.Equal(t, 1, root.Height())
	assert.False(t, root.IsLeaf())
	assert.True(t, root.Left().IsLeaf())
	assert.Equal(t, 0, root.Left().Height())
}

func TestNodeMinMaxNil(t *testing.T) {
	var n *Node
	assert.Nil(t, n.Min())
	assert.Nil(t, n.Max())
}

func TestTreeHeight(t *testing.T) {
	tree := NewAVLTree(IntLesser{})
	assert.Equal(t, -1, tree.Height())

	tree.Insert(1)
	assert.Equal(t, 0, tree.Height())

	tree.InsertAll(2, 3, 4)
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, tree.Root().Height(), tree.Height())
}

func TestTreeInsertAll(t *testing.T) {
	tree := NewAVLTree(IntLesser{})

	n := tree.InsertAll(4, 2, 4, 6, 2)

	assert.Equal(t, 3, n)
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, []int{2, 4, 6}, intValues(tree))
}

func TestTreeValues(t *testing.T) {
	tree := NewAVLTree(IntLesser{})
	assert.Empty(t, tree.Values())

	tree.InsertAll(3, 1, 2)
	assert.Equal(t, []interface{}{1, 2, 3}, tree.Values())
}

func TestTreeClear(t *testing.T) {
	tree := NewAVLTree(IntLesser{})
	tree.InsertAll(1, 2, 3)

	tree.Clear()

	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
	assert.Nil(t, tree.Root())
	assert.True(t, tree.Insert(2))
}

func TestTreePathFound(t *testing.T) {
	tree := NewUnbalancedTree(IntLesser{})
	prePopulateTree(tree)

	assert.Equal(t, []interface{}{5, 2, 1, 0}, tree.Path(0))
	assert.Equal(t, []interface{}{5}, tree.Path(5))
}

func TestTreePathInsertionPoint(t *testing.T) {
	tree := NewUnbalancedTree(IntLesser{})
	prePopulateTree(tree)

	assert.Equal(t, []interface{}{5, 2, 3}, tree.Path(4))
	assert.Equal(t, []interface{}{5, 7, 8}, tree.Path(100))
}

func TestTreePathEmpty(t *testing.T) {
	tree := NewAVLTree(IntLesser{})
	assert.Empty(t, tree.Path(1))
}

func TestTreeWalksRestoreLinks(t *testing.T) {
	tree := NewAVLTree(IntLesser{})
	for i := 0; i < 32; i++ {
		tree.Insert(i)
	}

	tree.InOrderWalk(func(*Node) {})
	tree.PreOrderWalk(func(*Node) {})

	assert.NoError(t, tree.Validate())
	assert.Equal(t, 32, len(tree.Values()))
}

func TestTreeValuesLeavesLinksUntouched(t *testing.T) {
	tree := NewAVLTree(IntLesser{})
	for i := 0; i < 32; i++ {
		tree.Insert(i)
	}

	type links struct{ left, right *Node }
	before := make(map[*Node]links)
	it := tree.Iterator(PreOrder)
	for n := it.next(); n != nil; n = it.next() {
		before[n] = links{n.left, n.right}
	}

	values := tree.Values()

	assert.Len(t, values, 32)
	for n, l := range before {
		assert.True(t, l == links{n.left, n.right}, "node %v", n.Value)
	}
}
