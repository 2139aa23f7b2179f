// Package hufftree builds Huffman coding trees over the byte alphabet and
// derives the prefix code implied by each tree.
//
// The work is split into four pure stages, each consuming the output of the
// previous one:
//
//     ft := hufftree.CountFrequencies(data)   // byte -> count
//     forest := hufftree.BuildForest(ft)      // one leaf per byte value
//     tree, err := hufftree.Reduce(forest)    // greedy least-weight merge
//     table := hufftree.BuildTable(tree)      // byte -> root-to-leaf path
//
// MakeTree and MakeTable run the whole pipeline in one call.
//
// Ties between equal weights are broken by insertion order (first inserted
// is extracted first), so the same input always produces the same tree.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package hufftree
