// SPDX-License-Identifier: MIT

// Package alphabet defines the nucleotide alphabet shared by every CGR
// encoder, pixel mapper and k-mer tally in chaosgame.
//
// What:
//
//   - Alphabet is an immutable bijection between four symbols, their
//     indices 0..3 (ComplexCGR digits) and their corner coordinates in
//     {(±1, ±1)} (planar and integer CGR).
//   - Every corner sits in its own quadrant, so the sign pattern of a CGR
//     point identifies the last symbol applied to it.
//   - One extra ambiguity symbol (default 'N') is recognised so that k-mer
//     scanners can skip windows that contain it.
//
// Why:
//
//	The alphabet is passed explicitly into every component at construction.
//	Only the command-line boundary picks the DNA() table implicitly.
//
// Errors:
//
//   - ErrSymbolCount:     symbol string does not hold exactly four symbols.
//   - ErrDuplicateSymbol: a symbol (or the ambiguity symbol) is repeated.
//   - ErrInvalidCorner:   a corner coordinate is not ±1 on both axes.
//   - ErrSharedQuadrant:  two symbols were assigned the same corner.
package alphabet
