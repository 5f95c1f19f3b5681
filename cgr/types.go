// SPDX-License-Identifier: MIT

package cgr

import (
	"fmt"
	"math/big"
)

// Codec is the encode/decode pair implemented by every coordinate system.
// C is the coordinate type: Point, IntPoint or ComplexPoint.
//
// Round-trip law: for every s over the alphabet, Decode(Encode(s)) == s
// (exactly for Integer and Complex, within float precision for Planar).
type Codec[C any] interface {
	Encode(seq string) (C, error)
	Decode(c C) (string, error)
}

// Compile-time assertions.
var (
	_ Codec[Point]        = (*Planar)(nil)
	_ Codec[IntPoint]     = (*Integer)(nil)
	_ Codec[ComplexPoint] = (*Complex)(nil)
)

// Point is a planar CGR coordinate: N midpoint steps from the origin,
// landing at (X, Y) ∈ (-1,1)².
type Point struct {
	N    int
	X, Y float64
}

func (p Point) String() string { return fmt.Sprintf("(%d, %g, %g)", p.N, p.X, p.Y) }

// IntPoint is an integer CGR coordinate. For N > 0 both X and Y are odd
// with |X|, |Y| < 2^N; X/2^N and Y/2^N give the planar position.
type IntPoint struct {
	N    int
	X, Y *big.Int
}

func (p IntPoint) String() string { return fmt.Sprintf("(%d, %v, %v)", p.N, p.X, p.Y) }

// ComplexPoint is a ComplexCGR coordinate: K ∈ [0, 4^N) for a sequence of length N.
type ComplexPoint struct {
	K *big.Int
	N int
}

func (p ComplexPoint) String() string { return fmt.Sprintf("(%v, %d)", p.K, p.N) }

// sequence lets the encoders fold over strings and byte slices alike.
type sequence interface {
	~string | ~[]byte
}

// sign returns -1, 0 or +1.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}
