package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// EncodingTable maps symbols to the bit strings that encode them.
type EncodingTable struct {
	codes   map[Symbol]Code
	minSize byte
	maxSize byte
}

// BuildTable derives the encoding table of a tree: the code of each leaf is
// its path from the root, where a step to the left child appends '0' and a
// step to the right child appends '1'.
//
// A tree that consists of a single leaf would give that leaf the empty code,
// which cannot be written to a bit stream.  Such a leaf is given the one-bit
// code "0" instead.  A nil tree yields an empty table.
//
// Every symbol must label at most one leaf, as guaranteed by Reduce.
//
func BuildTable(t *Tree) EncodingTable {
	et := EncodingTable{codes: make(map[Symbol]Code)}
	walk(t, func(path Code, node *Tree) {
		leaf, ok := node.Node.(Leaf)
		if !ok {
			return
		}
		if path == "" {
			path = "0"
		}
		_, dupe := et.codes[leaf.Symbol]
		assert.Assertf(!dupe, "symbol %s appears in more than one leaf", leaf.Symbol)
		et.codes[leaf.Symbol] = path
	})
	et.computeSizes()
	return et
}

// NewEncodingTable builds an EncodingTable from an explicit assignment of
// codes, e.g. one received from elsewhere.  Each code must consist of '0' and
// '1' characters only.  The result is not checked for the prefix property;
// call Validate for that.
func NewEncodingTable(codes map[Symbol]Code) (EncodingTable, error) {
	et := EncodingTable{codes: make(map[Symbol]Code, len(codes))}
	for sym, hc := range codes {
		if err := hc.check(); err != nil {
			return EncodingTable{}, fmt.Errorf("symbol %s: %w", sym, err)
		}
		et.codes[sym] = hc
	}
	et.computeSizes()
	return et, nil
}

func (et *EncodingTable) computeSizes() {
	var hasMinMax bool
	for _, hc := range et.codes {
		size := byte(hc.Len())
		if !hasMinMax {
			hasMinMax = true
			et.minSize = size
			et.maxSize = size
		} else if et.minSize > size {
			et.minSize = size
		} else if et.maxSize < size {
			et.maxSize = size
		}
	}
}

// Lookup returns the code for sym, and false if sym has no code.
func (et EncodingTable) Lookup(sym Symbol) (Code, bool) {
	hc, found := et.codes[sym]
	return hc, found
}

// Len returns the number of symbols with a code.
func (et EncodingTable) Len() int {
	return len(et.codes)
}

// Symbols returns the symbols with a code, in ascending order.
func (et EncodingTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(et.codes))
	for sym := range et.codes {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MinSize is the bit length of the shortest code.
func (et EncodingTable) MinSize() byte {
	return et.minSize
}

// MaxSize is the bit length of the longest code.
func (et EncodingTable) MaxSize() byte {
	return et.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol up
// to the largest coded one, 0 for symbols without a code.  NewCanonicalTable
// rebuilds the Canonical form of this table from this array alone.
//
func (et EncodingTable) SizeBySymbol() []byte {
	var numSymbols int
	for sym := range et.codes {
		if int(sym) >= numSymbols {
			numSymbols = int(sym) + 1
		}
	}
	out := make([]byte, numSymbols)
	for sym, hc := range et.codes {
		out[sym] = byte(hc.Len())
	}
	return out
}

// Cost returns the number of bits needed to encode the data counted in ft
// with this table, i.e. the sum over all symbols of count × code length.
// Symbols of ft without a code contribute nothing.
func (et EncodingTable) Cost(ft FrequencyTable) uint64 {
	var cost uint64
	for sym, hc := range et.codes {
		cost = saturatingAdd(cost, saturatingMul(ft.Count(sym), uint64(hc.Len())))
	}
	return cost
}

// Validate checks that the table can be used to emit a decodable bit
// stream: every code is at least one bit long, and no code is a prefix of
// another.
func (et EncodingTable) Validate() error {
	sorted := make(byCode, 0, len(et.codes))
	for sym, hc := range et.codes {
		if hc == "" {
			return fmt.Errorf("symbol %s: %w", sym, ErrDegenerateCode)
		}
		sorted = append(sorted, symbolAndCode{sym, hc})
	}
	sorted.Sort()

	// In lexicographic order, if a code is a prefix of any later code then
	// it is also a prefix of the code immediately following it.
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if b.code.HasPrefix(a.code) {
			return &PrefixConflictError{Prefix: a.symbol, Symbol: b.symbol, Code: a.code}
		}
	}
	return nil
}

// Canonical returns the canonical Huffman code with the same code lengths as
// this table.  The result codes the same symbols at the same cost, but is
// fully determined by SizeBySymbol.
//
// The table must pass Validate.
//
func (et EncodingTable) Canonical() (EncodingTable, error) {
	if err := et.Validate(); err != nil {
		return EncodingTable{}, err
	}
	out := EncodingTable{
		codes:   make(map[Symbol]Code, len(et.codes)),
		minSize: et.minSize,
		maxSize: et.maxSize,
	}
	if len(et.codes) == 0 {
		return out, nil
	}

	// Step 1: sort the symbols by (size, symbol) ascending.

	sorted := make(bySize, 0, len(et.codes))
	for sym, hc := range et.codes {
		sorted = append(sorted, symbolAndSize{sym, byte(hc.Len())})
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially.

	assignCanonical(out.codes, sorted)
	return out, nil
}

// NewCanonicalTable rebuilds the canonical Huffman code described by a bit
// length array, one length per symbol starting at 0, as returned by
// SizeBySymbol.  Symbols with an assigned bit length of 0 are omitted from
// the code entirely.
//
// The lengths must fill the code space exactly; over-subscribed or
// incomplete length sets are rejected with an error wrapping
// ErrDegenerateCode.  A code with no symbols, or with a single symbol of
// length 1, is permitted, as there is no way to construct a complete code
// for such cases.
//
func NewCanonicalTable(sizes []byte) (EncodingTable, error) {
	if len(sizes) > NumSymbols {
		return EncodingTable{}, fmt.Errorf("too many bit lengths: got %d, max %d", len(sizes), NumSymbols)
	}

	var countArray [MaxCodeSize + 1]int
	var numSymbolsWithNonZeroSizes int
	var maxSize byte
	for _, size := range sizes {
		if size == 0 {
			continue
		}
		if maxSize < size {
			maxSize = size
		}
		countArray[size]++
		numSymbolsWithNonZeroSizes++
	}

	// permit degenerate code with 0 symbols
	if numSymbolsWithNonZeroSizes == 0 {
		return EncodingTable{codes: make(map[Symbol]Code)}, nil
	}

	// permit degenerate code with 1 symbol of length 1
	// forbid all other degenerate codes
	//
	// left counts the unused codes of the current length.  Codes can be far
	// longer than a machine word, so rather than comparing against
	// 1<<maxSize, stop as soon as the symbols still to be placed can no
	// longer fill the remaining space.
	if !(numSymbolsWithNonZeroSizes == 1 && maxSize == 1) {
		left := 1
		remaining := numSymbolsWithNonZeroSizes
		for bits := 1; bits <= int(maxSize); bits++ {
			left = left<<1 - countArray[bits]
			remaining -= countArray[bits]
			if left < 0 {
				return EncodingTable{}, fmt.Errorf("%w: over-subscribed bit lengths at length %d", ErrDegenerateCode, bits)
			}
			if left > remaining {
				return EncodingTable{}, fmt.Errorf("%w: incomplete bit lengths at length %d", ErrDegenerateCode, bits)
			}
		}
	}

	sorted := make(bySize, 0, numSymbolsWithNonZeroSizes)
	for symbol, size := range sizes {
		if size != 0 {
			sorted = append(sorted, symbolAndSize{Symbol(symbol), size})
		}
	}
	sorted.Sort()

	et := EncodingTable{codes: make(map[Symbol]Code, len(sorted))}
	assignCanonical(et.codes, sorted)
	et.computeSizes()
	return et, nil
}

// assignCanonical numbers the symbols of sorted, which must be ordered by
// (size, symbol), per the algorithm detailed at
// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.
//
// Codes may be longer than any machine word, so nextCode is kept as a
// string of '0'/'1' bytes and incremented by hand.
//
func assignCanonical(codes map[Symbol]Code, sorted bySize) {
	if len(sorted) == 0 {
		return
	}
	lastSize := sorted[0].size
	nextCode := bytes.Repeat([]byte{'0'}, int(lastSize))
	for index, item := range sorted {
		if index != 0 {
			ok := incrementBits(nextCode)
			assert.Assertf(ok, "canonical code overflowed at symbol %s", item.symbol)
		}
		if item.size > lastSize {
			nextCode = append(nextCode, bytes.Repeat([]byte{'0'}, int(item.size-lastSize))...)
			lastSize = item.size
		}
		codes[item.symbol] = Code(nextCode)
	}
}

// Dump writes a programmer-readable debugging dump of the EncodingTable to
// the given writer.
func (et EncodingTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("EncodingTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", et.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", et.maxSize)
	for _, sym := range et.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", sym, et.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// incrementBits adds 1 to the big-endian binary number in bits, in place.
// It returns false if the number was all ones.
func incrementBits(bits []byte) bool {
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] == '0' {
			bits[i] = '1'
			return true
		}
		bits[i] = '0'
	}
	return false
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}

// type symbolAndCode + type byCode {{{

type symbolAndCode struct {
	symbol Symbol
	code   Code
}

type byCode []symbolAndCode

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.code != b.code {
		return a.code < b.code
	}
	return a.symbol < b.symbol
}

func (list byCode) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = byCode(nil)

// }}}
