// SPDX-License-Identifier: MIT

package cgr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol indicates that a sequence contains a byte outside the alphabet.
	// The ambiguity symbol is invalid here too: it has no coordinate.
	ErrInvalidSymbol = errors.New("cgr: invalid symbol")

	// ErrUnreachableCoordinate indicates a coordinate that cannot arise from
	// any sequence of the given length under the chosen system.
	ErrUnreachableCoordinate = errors.New("cgr: unreachable coordinate")

	// ErrNegativeLength indicates a negative sequence length on decode.
	ErrNegativeLength = errors.New("cgr: negative sequence length")

	// ErrNilAlphabet indicates a codec constructed without an alphabet.
	ErrNilAlphabet = errors.New("cgr: alphabet is nil")
)

// SymbolError reports the first offending byte of a sequence.
// It matches ErrInvalidSymbol under errors.Is.
type SymbolError struct {
	Pos    int  // 0-based offset in the input
	Symbol byte // offending byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("cgr: invalid symbol %q at position %d", e.Symbol, e.Pos)
}

// Unwrap returns ErrInvalidSymbol.
func (e *SymbolError) Unwrap() error { return ErrInvalidSymbol }
