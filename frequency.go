package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// OutOfRangePolicy selects what CountFrequenciesIn does with a byte that is
// not part of the alphabet.
type OutOfRangePolicy byte

const (
	// RejectOutOfRange fails the count with an *UnsupportedByteError.
	RejectOutOfRange OutOfRangePolicy = iota

	// IgnoreOutOfRange skips the byte and records it in
	// FrequencyTable.Dropped.
	IgnoreOutOfRange
)

// String returns the string representation of this OutOfRangePolicy.
func (p OutOfRangePolicy) String() string {
	switch p {
	case RejectOutOfRange:
		return "reject"
	case IgnoreOutOfRange:
		return "ignore"
	default:
		return fmt.Sprintf("OutOfRangePolicy(%d)", byte(p))
	}
}

// CountOptions configures CountFrequenciesIn.  The zero value counts over
// the full byte alphabet and rejects nothing, since no byte can be out of
// range.
type CountOptions struct {
	// NumSymbols is the size of the alphabet, i.e. symbols 0 through
	// NumSymbols-1 are counted.  0 means NumSymbols (the package constant).
	NumSymbols int

	// Policy controls bytes >= NumSymbols.
	Policy OutOfRangePolicy
}

// FrequencyTable holds the number of occurrences of every symbol in an
// alphabet.  Every symbol of the alphabet has an entry, even when its count
// is zero.
type FrequencyTable struct {
	counts  []uint64
	dropped uint64
}

// NewFrequencyTable builds a FrequencyTable from precomputed counts, one per
// symbol starting at 0.  The alphabet size is len(counts).
func NewFrequencyTable(counts []uint64) FrequencyTable {
	assert.Assertf(len(counts) <= NumSymbols, "len(counts) %d > NumSymbols %d", len(counts), NumSymbols)
	ft := FrequencyTable{counts: make([]uint64, len(counts))}
	copy(ft.counts, counts)
	return ft
}

// CountFrequencies counts every byte of data over the full byte alphabet.
func CountFrequencies(data []byte) FrequencyTable {
	counts := make([]uint64, NumSymbols)
	for _, b := range data {
		counts[b]++
	}
	return FrequencyTable{counts: counts}
}

// CountFrequenciesIn counts the bytes of data over the alphabet described
// by opts.  Bytes outside of the alphabet are handled according to
// opts.Policy; under RejectOutOfRange the first such byte aborts the count.
func CountFrequenciesIn(data []byte, opts CountOptions) (FrequencyTable, error) {
	numSymbols := opts.NumSymbols
	if numSymbols == 0 {
		numSymbols = NumSymbols
	}
	if numSymbols < 0 || numSymbols > NumSymbols {
		return FrequencyTable{}, fmt.Errorf("invalid alphabet size: got %d, expected 1 .. %d", numSymbols, NumSymbols)
	}
	if opts.Policy != RejectOutOfRange && opts.Policy != IgnoreOutOfRange {
		return FrequencyTable{}, fmt.Errorf("invalid out-of-range policy: %v", opts.Policy)
	}

	ft := FrequencyTable{counts: make([]uint64, numSymbols)}
	for offset, b := range data {
		if int(b) < numSymbols {
			ft.counts[b]++
			continue
		}
		if opts.Policy == RejectOutOfRange {
			return FrequencyTable{}, &UnsupportedByteError{Byte: b, Offset: offset, NumSymbols: numSymbols}
		}
		ft.dropped++
	}
	return ft, nil
}

// Len returns the size of the alphabet.
func (ft FrequencyTable) Len() int {
	return len(ft.counts)
}

// Count returns the number of occurrences of sym, or 0 if sym is not part
// of the alphabet.
func (ft FrequencyTable) Count(sym Symbol) uint64 {
	if int(sym) >= len(ft.counts) {
		return 0
	}
	return ft.counts[sym]
}

// Total returns the number of bytes counted.  Dropped bytes are not
// included.
func (ft FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range ft.counts {
		total = saturatingAdd(total, count)
	}
	return total
}

// Dropped returns the number of out-of-range bytes skipped under
// IgnoreOutOfRange.
func (ft FrequencyTable) Dropped() uint64 {
	return ft.dropped
}

// Distinct returns the number of symbols with a non-zero count.
func (ft FrequencyTable) Distinct() int {
	var n int
	for _, count := range ft.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Add returns a new FrequencyTable holding the sum of ft and other.  Both
// tables must describe the same alphabet.  Counting is associative, so data
// may be counted in independent chunks and merged with Add.
func (ft FrequencyTable) Add(other FrequencyTable) FrequencyTable {
	assert.Assertf(len(ft.counts) == len(other.counts), "alphabet size mismatch: %d vs %d", len(ft.counts), len(other.counts))
	out := FrequencyTable{
		counts:  make([]uint64, len(ft.counts)),
		dropped: saturatingAdd(ft.dropped, other.dropped),
	}
	for i := range out.counts {
		out.counts[i] = saturatingAdd(ft.counts[i], other.counts[i])
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.  Symbols with a zero count are omitted.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.Total())
	fmt.Fprintf(&buf, "\tDropped() = %d\n", ft.dropped)
	for i, count := range ft.counts {
		if count != 0 {
			fmt.Fprintf(&buf, "\tCount(%s) = %d\n", Symbol(i), count)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
