// SPDX-License-Identifier: MIT

package fcgr

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/chaosgame/cgr"
	"github.com/katalvlaran/chaosgame/kmer"
)

// Bar is one k-mer of the circular layout: a wedge of the unit circle.
type Bar struct {
	Kmer string

	// Angle is the wedge centre in radians, in (0, 2π).
	Angle float64

	// Width is the wedge's angular width, 2π/4^k.
	Width float64

	// Height is the k-mer's probability, count / Windows().
	Height float64
}

// Circular places every tallied k-mer at its ComplexCGR angle
// 2π·k/4^N, shifted by half a wedge, ordered by angle.
// Unseen k-mers are omitted. Returns ErrNilTally or ErrEmptyTally.
func Circular(t *kmer.Tally) ([]Bar, error) {
	if t == nil {
		return nil, fmt.Errorf("Circular: %w", ErrNilTally)
	}
	if t.Windows() == 0 {
		return nil, fmt.Errorf("Circular: %w", ErrEmptyTally)
	}
	codec, err := cgr.NewComplex(t.Alphabet())
	if err != nil {
		return nil, fmt.Errorf("Circular: %w", err)
	}

	width := 2 * math.Pi / math.Pow(4, float64(t.K()))
	total := float64(t.Windows())
	bars := make([]Bar, 0, t.Distinct())
	for km, e := range t.All() {
		pt, err := codec.Encode(km)
		if err != nil {
			return nil, fmt.Errorf("Circular: %w", err)
		}
		theta, err := codec.Angle(pt)
		if err != nil {
			return nil, fmt.Errorf("Circular: %w", err)
		}
		bars = append(bars, Bar{
			Kmer:   km,
			Angle:  theta + width/2,
			Width:  width,
			Height: float64(e.Count) / total,
		})
	}
	slices.SortFunc(bars, func(a, b Bar) int { return cmp.Compare(a.Angle, b.Angle) })

	return bars, nil
}
