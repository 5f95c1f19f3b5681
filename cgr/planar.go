// SPDX-License-Identifier: MIT

package cgr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chaosgame/alphabet"
)

// MaxPlanarLength is the longest planar point Decode accepts. A float64 in
// (-1,1) halves at most 1074 times before underflowing to zero, so no longer
// sequence has a nonzero planar coordinate.
const MaxPlanarLength = 1074

// Planar is the real-valued CGR codec.
//
// Algorithm Encode:
//  1. Start at (N=0, x=0, y=0).
//  2. For each symbol s: x ← (x + corner(s).x)/2, y ← (y + corner(s).y)/2, N ← N+1.
//
// Algorithm Decode:
//  1. While N > 0: the quadrant of (x, y) names the last corner c,
//     because every corner lies in its own quadrant.
//  2. Invert the step: x ← 2x − c.x, y ← 2y − c.y, N ← N−1; prepend c's symbol.
//  3. The walk must end at the origin; anything else is off the lattice.
//
// Complexity:
//   - Encode: O(N) time, O(1) extra space.
//   - Decode: O(N) time, O(N) space for the result.
type Planar struct {
	alpha *alphabet.Alphabet
}

// NewPlanar returns a planar codec over a.
func NewPlanar(a *alphabet.Alphabet) (*Planar, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}

	return &Planar{alpha: a}, nil
}

// Encode folds seq into its planar coordinate.
// Returns a *SymbolError (ErrInvalidSymbol) on the first byte outside the alphabet.
func (p *Planar) Encode(seq string) (Point, error) {
	return planarFold(p.alpha, seq)
}

// EncodeBytes is Encode for byte slices; it does not allocate.
func (p *Planar) EncodeBytes(seq []byte) (Point, error) {
	return planarFold(p.alpha, seq)
}

func planarFold[S sequence](a *alphabet.Alphabet, seq S) (Point, error) {
	var pt Point
	for i := 0; i < len(seq); i++ {
		c, ok := a.Corner(seq[i])
		if !ok {
			return Point{}, &SymbolError{Pos: i, Symbol: seq[i]}
		}
		pt.X = (pt.X + float64(c.X)) / 2
		pt.Y = (pt.Y + float64(c.Y)) / 2
		pt.N++
	}

	return pt, nil
}

// Decode recovers the length-N sequence that encodes to pt.
//
// Every inversion is exact for dyadic points, so a reachable point returns
// to the origin after N steps. Encodings longer than 53 symbols have been
// rounded and no longer decode.
//
// Errors:
//   - ErrNegativeLength when pt.N < 0.
//   - ErrUnreachableCoordinate when a coordinate is NaN/Inf, lies outside
//     (-1,1)², is not the origin for N == 0, falls exactly on an axis at
//     any step, does not return to the origin after N steps, or when
//     N > MaxPlanarLength.
func (p *Planar) Decode(pt Point) (string, error) {
	if pt.N < 0 {
		return "", fmt.Errorf("Planar.Decode: N=%d: %w", pt.N, ErrNegativeLength)
	}
	if pt.N > MaxPlanarLength {
		return "", fmt.Errorf("Planar.Decode: N=%d > %d: %w", pt.N, MaxPlanarLength, ErrUnreachableCoordinate)
	}
	if !finite(pt.X) || !finite(pt.Y) {
		return "", fmt.Errorf("Planar.Decode: %v: %w", pt, ErrUnreachableCoordinate)
	}
	if pt.N == 0 {
		if pt.X != 0 || pt.Y != 0 {
			return "", fmt.Errorf("Planar.Decode: %v: %w", pt, ErrUnreachableCoordinate)
		}

		return "", nil
	}
	if math.Abs(pt.X) >= 1 || math.Abs(pt.Y) >= 1 {
		return "", fmt.Errorf("Planar.Decode: %v outside the unit square: %w", pt, ErrUnreachableCoordinate)
	}

	buf := make([]byte, pt.N)
	x, y := pt.X, pt.Y
	for n := pt.N; n > 0; n-- {
		sym, ok := p.alpha.SymbolAt(sign(x), sign(y))
		if !ok {
			return "", fmt.Errorf("Planar.Decode: step %d at (%g, %g) lies on an axis: %w",
				n, x, y, ErrUnreachableCoordinate)
		}
		c, _ := p.alpha.Corner(sym)
		x = 2*x - float64(c.X)
		y = 2*y - float64(c.Y)
		buf[n-1] = sym
	}
	if x != 0 || y != 0 {
		return "", fmt.Errorf("Planar.Decode: %v ends at (%g, %g), not the origin: %w",
			pt, x, y, ErrUnreachableCoordinate)
	}

	return string(buf), nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
