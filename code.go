package hufftree

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as a string of '0' and '1'
// characters.  The first character is the first bit, i.e. the branch taken
// at the root of the tree.
type Code string

// MaxCodeSize is the longest code accepted by NewEncodingTable.  A tree over
// the byte alphabet has at most NumSymbols leaves and thus codes of at most
// NumSymbols-1 bits.
const MaxCodeSize = NumSymbols - 1

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// HasPrefix returns true if prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

// check verifies that hc only holds '0' and '1' characters.
func (hc Code) check() error {
	if len(hc) > MaxCodeSize {
		return fmt.Errorf("code too long: got %d bits, max %d", len(hc), MaxCodeSize)
	}
	for i := 0; i < len(hc); i++ {
		if ch := hc[i]; ch != '0' && ch != '1' {
			return fmt.Errorf("invalid bit %q at position %d of code %s", ch, i, hc)
		}
	}
	return nil
}

var _ fmt.Stringer = Code("")
