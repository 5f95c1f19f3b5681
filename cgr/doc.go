// SPDX-License-Identifier: MIT

// Package cgr implements the Chaos Game Representation (CGR) of DNA in
// three coordinate systems that share one alphabet but nothing else.
//
// 🚀 What is CGR?
//
//	Starting at the centre of the square [-1,1]², every nucleotide moves the
//	current point half-way towards the corner of that nucleotide. After N
//	steps the point identifies the whole sequence: the square is split into
//	4^N cells and each length-N sequence lands in its own cell.
//
// ✨ Coordinate systems:
//
//   - Planar  — float64 (N, x, y). Exact up to N = 53; past that the fold
//     rounds away the first symbols and Decode reports the point unreachable.
//   - Integer — (N, X, Y) with X, Y unbounded integers on the lattice scaled
//     by 2^N. No rounding ever happens, so genome-length inputs round-trip.
//   - Complex — (K, N) with K ∈ [0, 4^N) a base-4 numeral whose most
//     significant digit is the last nucleotide. K/4^N also positions the
//     sequence on the unit circle (see Complex.Angle).
//
// ⚙️ Usage:
//
//	codec, _ := cgr.NewInteger(alphabet.DNA())
//	pt, _ := codec.Encode("ACGT")    // {N:4 X:3 Y:-9}
//	seq, _ := codec.Decode(pt)       // "ACGT"
//
// Every encoder is a pure fold over an explicit state tuple: there is no
// hidden per-codec state, so one codec value may serve concurrent callers.
//
// Errors:
//
//   - ErrInvalidSymbol:         encode met a byte outside the alphabet (see *SymbolError).
//   - ErrUnreachableCoordinate: decode got a coordinate no sequence of that length produces.
//   - ErrNegativeLength:        decode got N < 0.
//   - ErrNilAlphabet:           a codec was built without an alphabet.
package cgr
