package hufftree_test

import (
	"fmt"

	"github.com/chronos-tachyon/hufftree"
)

func Example() {
	data := []byte("aaabbc")

	ft := hufftree.CountFrequencies(data)
	tree, err := hufftree.Reduce(hufftree.BuildSparseForest(ft))
	if err != nil {
		panic(err)
	}

	table := hufftree.BuildTable(tree)
	for _, sym := range table.Symbols() {
		hc, _ := table.Lookup(sym)
		fmt.Println(sym, hc)
	}
	fmt.Println("bits:", table.Cost(ft))

	// Output:
	// 'a' "0"
	// 'b' "11"
	// 'c' "10"
	// bits: 9
}

func ExampleEncodingTable_Canonical() {
	ft := hufftree.NewFrequencyTable([]uint64{5, 9, 12, 13, 16, 45})
	tree, err := hufftree.Reduce(hufftree.BuildForest(ft))
	if err != nil {
		panic(err)
	}

	table, err := hufftree.BuildTable(tree).Canonical()
	if err != nil {
		panic(err)
	}
	fmt.Println(table.SizeBySymbol())
	for _, sym := range table.Symbols() {
		hc, _ := table.Lookup(sym)
		fmt.Println(sym, hc)
	}

	// Output:
	// [4 4 3 3 3 1]
	// 0x00 "1110"
	// 0x01 "1111"
	// 0x02 "100"
	// 0x03 "101"
	// 0x04 "110"
	// 0x05 "0"
}
