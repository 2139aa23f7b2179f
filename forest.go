package hufftree

// BuildForest returns one leaf per symbol of the alphabet, in ascending
// symbol order, weighted by the symbol's count.  Zero-count symbols are
// included; they take part in the merge like any other leaf and receive a
// (long) code of their own.
func BuildForest(ft FrequencyTable) []*Tree {
	forest := make([]*Tree, len(ft.counts))
	for i, count := range ft.counts {
		forest[i] = NewLeaf(Symbol(i), count)
	}
	return forest
}

// BuildSparseForest is like BuildForest, but omits symbols with a zero count.
// The resulting tree only codes symbols that actually occurred.
func BuildSparseForest(ft FrequencyTable) []*Tree {
	forest := make([]*Tree, 0, ft.Distinct())
	for i, count := range ft.counts {
		if count != 0 {
			forest = append(forest, NewLeaf(Symbol(i), count))
		}
	}
	return forest
}
