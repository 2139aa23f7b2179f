package hufftree

import (
	"errors"
	"fmt"
)

// ErrEmptyForest is returned by Reduce when given no trees to merge.
var ErrEmptyForest = errors.New("cannot reduce an empty forest to a Huffman tree")

// ErrUnsupportedByte is the sentinel wrapped by *UnsupportedByteError.
var ErrUnsupportedByte = errors.New("byte value outside of the supported alphabet")

// ErrDegenerateCode is returned by EncodingTable.Validate when a symbol has
// a zero-length code, which cannot be emitted into a bit stream, and by
// NewCanonicalTable for bit lengths that do not form a complete code.
var ErrDegenerateCode = errors.New("degenerate Huffman code")

// ErrNotPrefixCode is the sentinel wrapped by *PrefixConflictError.
var ErrNotPrefixCode = errors.New("codes do not form a prefix code")

// UnsupportedByteError reports an input byte that does not fit the alphabet
// chosen in CountOptions.
type UnsupportedByteError struct {
	Byte       byte
	Offset     int
	NumSymbols int
}

// Error fulfills the error interface.
func (err *UnsupportedByteError) Error() string {
	return fmt.Sprintf("byte 0x%02x at offset %d is outside of the %d-symbol alphabet", err.Byte, err.Offset, err.NumSymbols)
}

// Unwrap returns ErrUnsupportedByte.
func (err *UnsupportedByteError) Unwrap() error {
	return ErrUnsupportedByte
}

// PrefixConflictError reports that the code for Prefix is a prefix of the
// code for Symbol.
type PrefixConflictError struct {
	Prefix Symbol
	Symbol Symbol
	Code   Code
}

// Error fulfills the error interface.
func (err *PrefixConflictError) Error() string {
	return fmt.Sprintf("code %s for symbol %s is a prefix of the code for symbol %s", err.Code, err.Prefix, err.Symbol)
}

// Unwrap returns ErrNotPrefixCode.
func (err *PrefixConflictError) Unwrap() error {
	return ErrNotPrefixCode
}

var (
	_ error = (*UnsupportedByteError)(nil)
	_ error = (*PrefixConflictError)(nil)
)
