// SPDX-License-Identifier: MIT

package cgr

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/chaosgame/alphabet"
)

// Complex is the base-4 integer codec (ComplexCGR).
//
// Algorithm Encode:
//
//	k ← 0; for each symbol s: k ← index(s)·4^N + k, N ← N+1.
//	The numeral grows with more-significant digits on the left, so the
//	last symbol is the leading digit.
//
// Algorithm Decode:
//
//	While N > 0: alpha = k / 4^N falls into one of the quartiles
//	[0,.25) [.25,.5) [.5,.75) [.75,1), naming the trailing symbol by index;
//	k ← k − index·4^(N−1), N ← N−1; prepend the symbol.
//	The quartile of k/4^N is the top base-4 digit of k, which is what the
//	implementation reads, two bits at a time.
//
// Complexity:
//   - Encode/Decode: O(N) time, O(N) bits of space.
type Complex struct {
	alpha *alphabet.Alphabet
}

// NewComplex returns a ComplexCGR codec over a. Digits follow a's index order.
func NewComplex(a *alphabet.Alphabet) (*Complex, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}

	return &Complex{alpha: a}, nil
}

// Encode folds seq into (k, N).
func (c *Complex) Encode(seq string) (ComplexPoint, error) {
	n := len(seq)
	digits := make([]byte, (n+3)/4) // big-endian, four base-4 digits per byte
	for i := 0; i < n; i++ {
		idx, ok := c.alpha.Index(seq[i])
		if !ok {
			return ComplexPoint{}, &SymbolError{Pos: i, Symbol: seq[i]}
		}
		digits[len(digits)-1-i/4] |= byte(idx) << (2 * (i % 4))
	}

	return ComplexPoint{K: new(big.Int).SetBytes(digits), N: n}, nil
}

// Decode recovers the length-N sequence encoded by (k, N).
// Returns ErrNegativeLength for N < 0 and ErrUnreachableCoordinate when k
// is nil or outside [0, 4^N).
func (c *Complex) Decode(pt ComplexPoint) (string, error) {
	if err := validComplex(pt); err != nil {
		return "", fmt.Errorf("Complex.Decode: %w", err)
	}

	buf := make([]byte, pt.N)
	for n := pt.N; n > 0; n-- {
		lo := 2 * (n - 1)
		digit := pt.K.Bit(lo) | pt.K.Bit(lo+1)<<1
		buf[n-1] = c.alpha.Symbol(int(digit))
	}

	return string(buf), nil
}

// Angle returns θ = 2π·k/4^N ∈ [0, 2π), the argument of the k-th 4^N-th
// root of unity. The circular frequency layout places each k-mer there.
func (c *Complex) Angle(pt ComplexPoint) (float64, error) {
	if err := validComplex(pt); err != nil {
		return 0, fmt.Errorf("Complex.Angle: %w", err)
	}
	ratio := new(big.Float).SetInt(pt.K)
	ratio.SetMantExp(ratio, -2*pt.N)
	r, _ := ratio.Float64()

	return 2 * math.Pi * r, nil
}

func validComplex(pt ComplexPoint) error {
	if pt.N < 0 {
		return fmt.Errorf("N=%d: %w", pt.N, ErrNegativeLength)
	}
	if pt.K == nil || pt.K.Sign() < 0 || pt.K.BitLen() > 2*pt.N {
		return fmt.Errorf("k=%v outside [0, 4^%d): %w", pt.K, pt.N, ErrUnreachableCoordinate)
	}

	return nil
}
