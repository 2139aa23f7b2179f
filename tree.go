package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is a weighted Huffman tree.  The weight of a leaf is the frequency of
// its symbol; the weight of an internal node is the sum of the weights of its
// children.  Every internal node exclusively owns its two subtrees.
type Tree struct {
	Weight uint64
	Node   Node
}

// Node is the payload of a Tree.  It is either a Leaf or an Internal.
type Node interface {
	isNode()
}

// Leaf is a terminal Node holding one symbol.
type Leaf struct {
	Symbol Symbol
}

// Internal is a Node with two children.  The path to Left is extended with
// a '0' bit, the path to Right with a '1' bit.
type Internal struct {
	Left  *Tree
	Right *Tree
}

func (Leaf) isNode()     {}
func (Internal) isNode() {}

// NewLeaf constructs a leaf Tree.
func NewLeaf(sym Symbol, weight uint64) *Tree {
	return &Tree{Weight: weight, Node: Leaf{Symbol: sym}}
}

// NewInternal constructs an internal Tree that takes ownership of left and
// right.  The weight saturates at math.MaxUint64.
func NewInternal(left, right *Tree) *Tree {
	assert.Assertf(left != nil, "left subtree is nil")
	assert.Assertf(right != nil, "right subtree is nil")
	return &Tree{
		Weight: saturatingAdd(left.Weight, right.Weight),
		Node:   Internal{Left: left, Right: right},
	}
}

// IsLeaf returns true if this Tree is a single leaf.
func (t *Tree) IsLeaf() bool {
	_, ok := t.Node.(Leaf)
	return ok
}

// Height returns the number of edges on the longest root-to-leaf path.  A
// single leaf has height 0.
func (t *Tree) Height() int {
	var height int
	walk(t, func(path Code, node *Tree) {
		if node.IsLeaf() && path.Len() > height {
			height = path.Len()
		}
	})
	return height
}

// NumLeaves returns the number of leaves, i.e. the number of symbols coded
// by this Tree.
func (t *Tree) NumLeaves() int {
	var n int
	walk(t, func(path Code, node *Tree) {
		if node.IsLeaf() {
			n++
		}
	})
	return n
}

// LeafWeight returns the sum of the weights of all leaves.  For a tree built
// by Reduce this equals t.Weight unless the weights saturated.
func (t *Tree) LeafWeight() uint64 {
	var sum uint64
	walk(t, func(path Code, node *Tree) {
		if node.IsLeaf() {
			sum = saturatingAdd(sum, node.Weight)
		}
	})
	return sum
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one node per line in pre-order, each labeled with its path.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	walk(t, func(path Code, node *Tree) {
		switch x := node.Node.(type) {
		case Leaf:
			fmt.Fprintf(&buf, "\t%s = %d %s\n", path, node.Weight, x.Symbol)
		default:
			fmt.Fprintf(&buf, "\t%s = %d\n", path, node.Weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node of the tree in pre-order, passing the path from
// the root to that node.  A nil root visits nothing.
//
// The walk uses an explicit stack rather than recursion.  stackItem.x keeps
// track of where we are at each internal node:
//   x=0 → We just arrived at this node for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func walk(root *Tree, visit func(path Code, node *Tree)) {
	if root == nil {
		return
	}

	type stackItem struct {
		t    *Tree
		path Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint32(NumSymbols)+1)

	enter := func(t *Tree, path Code) {
		visit(path, t)
		if _, ok := t.Node.(Internal); ok {
			stack = append(stack, stackItem{t: t, path: path})
		}
	}

	enter(root, "")
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		children := top.t.Node.(Internal)
		switch x {
		case 0:
			enter(children.Left, top.path+"0")
		case 1:
			enter(children.Right, top.path+"1")
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
}
