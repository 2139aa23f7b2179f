package hufftree

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Reduce merges a forest into a single Huffman tree.
//
// The trees are kept in a minheap ordered by ascending weight.  While more
// than one tree remains, the two lightest trees a and b are popped and
// replaced by a new internal tree with a as the left child and b as the
// right child.  Equal weights are broken by insertion order: the members of
// forest are inserted in slice order, and each merged tree is inserted after
// everything before it, so the earliest inserted tree is popped first.
//
// Reduce takes ownership of the trees in forest.  Each symbol may appear in
// at most one leaf across the whole forest.  It returns ErrEmptyForest if
// forest is empty.
//
func Reduce(forest []*Tree) (*Tree, error) {
	if len(forest) == 0 {
		return nil, ErrEmptyForest
	}

	// Step 1: build a minheap.

	var seen [NumSymbols]bool
	h := treeHeap{make([]treeAndSeq, 0, len(forest))}
	for index, t := range forest {
		assert.Assertf(t != nil, "forest[%d] is nil", index)
		walk(t, func(path Code, node *Tree) {
			if leaf, ok := node.Node.(Leaf); ok {
				assert.Assertf(!seen[leaf.Symbol], "forest[%d]: symbol %s appears in more than one leaf", index, leaf.Symbol)
				seen[leaf.Symbol] = true
			}
		})
		h.list = append(h.list, treeAndSeq{t, uint64(index)})
	}
	h.Init()

	// Step 2: process the minheap by popping two trees, combining them into
	// a new internal tree, and pushing the new tree back onto the minheap.

	nextSeq := uint64(len(forest))
	for h.Len() > 1 {
		a := heap.Pop(&h).(treeAndSeq)
		b := heap.Pop(&h).(treeAndSeq)
		heap.Push(&h, treeAndSeq{NewInternal(a.tree, b.tree), nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(treeAndSeq)
	return root.tree, nil
}

// MakeTree counts data over the full byte alphabet and reduces the resulting
// forest, zero-count leaves included.
func MakeTree(data []byte) (*Tree, error) {
	return Reduce(BuildForest(CountFrequencies(data)))
}

// MakeTable runs the whole pipeline over data and returns the encoding table
// for all 256 byte values.
func MakeTable(data []byte) (EncodingTable, error) {
	t, err := MakeTree(data)
	if err != nil {
		return EncodingTable{}, err
	}
	return BuildTable(t), nil
}

// type treeAndSeq + type treeHeap {{{

type treeAndSeq struct {
	tree *Tree
	seq  uint64
}

type treeHeap struct {
	list []treeAndSeq
}

func (h *treeHeap) Init() {
	heap.Init(h)
}

func (h *treeHeap) Len() int {
	return len(h.list)
}

func (h *treeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *treeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.tree.Weight != b.tree.Weight {
		return a.tree.Weight < b.tree.Weight
	}
	return a.seq < b.seq
}

func (h *treeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(treeAndSeq))
}

func (h *treeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = treeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*treeHeap)(nil)

// }}}
