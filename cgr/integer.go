// SPDX-License-Identifier: MIT

package cgr

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/chaosgame/alphabet"
)

// Integer is the unbounded-integer CGR codec (iCGR).
//
// Description:
//
//	The planar recursion is scaled by 2^N so that it never rounds:
//	the first symbol seeds the lattice at its own corner, X = c₁.x, and
//	every later symbol i (0-based) adds c_i.x · 2^i. After N steps
//	X = Σ c_i.x · 2^i, an odd integer with |X| < 2^N, and X/2^N is the
//	planar x up to the origin convention.
//
// Implementation:
//
//	Because every c_i.x is ±1, X = 2·P − (2^N − 1) where bit i of P is set
//	iff c_i.x = +1. Encode fills the two bit planes P_x, P_y in one pass and
//	converts them once, so a sequence of millions of bases costs O(N) rather
//	than O(N²) big-integer additions. Decode reads the planes back: bit N−1
//	of P is exactly the sign test "X > 0" of the step-wise inverse, and
//	clearing it is the subtraction of c.x · 2^(N−1).
//
// Complexity:
//   - Encode/Decode: O(N) time, O(N) bits of space.
type Integer struct {
	alpha *alphabet.Alphabet
}

// NewInteger returns an integer codec over a.
func NewInteger(a *alphabet.Alphabet) (*Integer, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}

	return &Integer{alpha: a}, nil
}

// Encode folds seq into its integer coordinate.
// The empty sequence encodes to (0, 0, 0).
func (c *Integer) Encode(seq string) (IntPoint, error) {
	n := len(seq)
	planeX := make([]byte, (n+7)/8) // big-endian bit planes
	planeY := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		corner, ok := c.alpha.Corner(seq[i])
		if !ok {
			return IntPoint{}, &SymbolError{Pos: i, Symbol: seq[i]}
		}
		at, bit := len(planeX)-1-i/8, byte(1)<<(i%8)
		if corner.X > 0 {
			planeX[at] |= bit
		}
		if corner.Y > 0 {
			planeY[at] |= bit
		}
	}

	span := lattice(n)

	return IntPoint{
		N: n,
		X: fromPlane(planeX, span),
		Y: fromPlane(planeY, span),
	}, nil
}

// Decode recovers the length-N sequence that encodes to pt.
//
// Errors:
//   - ErrNegativeLength when pt.N < 0.
//   - ErrUnreachableCoordinate when X or Y is nil, when N == 0 and the point
//     is not the origin, or when N > 0 and X, Y are not odd with |X|,|Y| < 2^N.
func (c *Integer) Decode(pt IntPoint) (string, error) {
	if pt.N < 0 {
		return "", fmt.Errorf("Integer.Decode: N=%d: %w", pt.N, ErrNegativeLength)
	}
	if pt.X == nil || pt.Y == nil {
		return "", fmt.Errorf("Integer.Decode: nil coordinate: %w", ErrUnreachableCoordinate)
	}
	if pt.N == 0 {
		if pt.X.Sign() != 0 || pt.Y.Sign() != 0 {
			return "", fmt.Errorf("Integer.Decode: %v: %w", pt, ErrUnreachableCoordinate)
		}

		return "", nil
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(pt.N))
	for _, v := range [...]*big.Int{pt.X, pt.Y} {
		if v.Bit(0) == 0 || v.CmpAbs(limit) >= 0 {
			return "", fmt.Errorf("Integer.Decode: %v off the 2^%d lattice: %w", pt, pt.N, ErrUnreachableCoordinate)
		}
	}

	span := limit.Sub(limit, big.NewInt(1)) // 2^N − 1
	px := toPlane(pt.X, span)
	py := toPlane(pt.Y, span)

	buf := make([]byte, pt.N)
	for i := pt.N - 1; i >= 0; i-- {
		sym, ok := c.alpha.SymbolAt(bitSign(px, i), bitSign(py, i))
		if !ok {
			return "", fmt.Errorf("Integer.Decode: step %d: %w", i+1, ErrUnreachableCoordinate)
		}
		buf[i] = sym
	}

	return string(buf), nil
}

// lattice returns 2^n − 1.
func lattice(n int) *big.Int {
	v := new(big.Int).Lsh(big.NewInt(1), uint(n))

	return v.Sub(v, big.NewInt(1))
}

// fromPlane returns 2·P − span for the big-endian bit plane P.
func fromPlane(plane []byte, span *big.Int) *big.Int {
	v := new(big.Int).SetBytes(plane)
	v.Lsh(v, 1)

	return v.Sub(v, span)
}

// toPlane inverts fromPlane: P = (v + span) / 2.
func toPlane(v, span *big.Int) *big.Int {
	p := new(big.Int).Add(v, span)

	return p.Rsh(p, 1)
}

func bitSign(p *big.Int, i int) int {
	if p.Bit(i) == 1 {
		return 1
	}

	return -1
}
