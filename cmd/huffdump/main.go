// Command huffdump builds the Huffman tree for a file and prints the
// frequency table, the tree and the resulting encoding table.
//
// Usage:
//
//	huffdump [flags] [input]
//
// With no input (or "-"), standard input is read.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/hufftree"
)

var (
	flagSparse    = flag.Bool("sparse", false, "drop symbols that do not occur in the input")
	flagCanonical = flag.Bool("canonical", false, "print the canonical code instead of the tree paths")
	flagTree      = flag.Bool("tree", false, "also print the Huffman tree")
	flagSymbols   = flag.Int("symbols", hufftree.NumSymbols, "alphabet size; bytes >= this value are out of range")
	flagIgnore    = flag.Bool("ignore", false, "skip out-of-range bytes instead of failing")
	flagVersion   = flag.Bool("v", false, "print version information and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("huffdump %s\n", hufftree.Version)
		os.Exit(0)
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: expected at most one input, got %d\n", flag.NArg())
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(flag.Arg(0), os.Stdout))
}

func run(inputPath string, w io.Writer) int {
	data, err := readInput(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot read input: %v\n", err)
		return 1
	}

	opts := hufftree.CountOptions{NumSymbols: *flagSymbols}
	if *flagIgnore {
		opts.Policy = hufftree.IgnoreOutOfRange
	}

	ft, err := hufftree.CountFrequenciesIn(data, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var forest []*hufftree.Tree
	if *flagSparse {
		forest = hufftree.BuildSparseForest(ft)
	} else {
		forest = hufftree.BuildForest(ft)
	}

	tree, err := hufftree.Reduce(forest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	table := hufftree.BuildTable(tree)
	if *flagCanonical {
		table, err = table.Canonical()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if _, err := ft.Dump(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *flagTree {
		if _, err := tree.Dump(w); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if _, err := table.Dump(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	total := ft.Total()
	cost := table.Cost(ft)
	fmt.Fprintf(w, "Input:  %d bytes (%d bits)\n", total, total*8)
	fmt.Fprintf(w, "Coded:  %d bits\n", cost)
	if total > 0 {
		fmt.Fprintf(w, "Ratio:  %.3f\n", float64(cost)/float64(total*8))
	}
	return 0
}

func readInput(inputPath string) ([]byte, error) {
	if inputPath == "" || inputPath == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inputPath)
}
