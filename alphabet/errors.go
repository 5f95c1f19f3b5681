// SPDX-License-Identifier: MIT

package alphabet

import "errors"

var (
	// ErrSymbolCount indicates that the symbol set does not hold exactly Size symbols.
	ErrSymbolCount = errors.New("alphabet: exactly four symbols are required")

	// ErrDuplicateSymbol indicates that two positions share one symbol.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrInvalidCorner indicates a corner coordinate outside {-1, +1}.
	ErrInvalidCorner = errors.New("alphabet: corner coordinates must be ±1")

	// ErrSharedQuadrant indicates that two symbols were mapped to the same corner.
	ErrSharedQuadrant = errors.New("alphabet: two symbols share a quadrant")
)
