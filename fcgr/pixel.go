// SPDX-License-Identifier: MIT

package fcgr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/cgr"
)

// MaxK bounds the grid side at 2^12 = 4096 (16.7M cells, 64 MiB table).
const MaxK = 12

// Cell is a zero-based grid position. Row 0 is the top edge, Col 0 the left edge.
type Cell struct {
	Row, Col int
}

// Mapper places k-mers on the 2^k × 2^k grid.
//
// Placement of a k-mer w:
//  1. (x, y) ← planar CGR of w; both are odd multiples of 2^-k.
//  2. cx ← ⌈(x+1)/2 · 2^k⌉, cy ← ⌈(y+1)/2 · 2^k⌉ (1-based, y upwards).
//  3. Row ← 2^k − cy, Col ← cx − 1.
//
// The 4^k placements are computed once by NewMapper and looked up by the
// k-mer's base-4 rank afterwards. A Mapper is immutable and safe for
// concurrent use.
type Mapper struct {
	k      int
	side   int
	alpha  *alphabet.Alphabet
	planar *cgr.Planar
	table  []uint32 // rank → Row*side + Col
}

// NewMapper precomputes the k-mer → cell table for k ∈ [1, MaxK].
//
// Complexity: O(k·4^k) time, O(4^k) space.
func NewMapper(k int, a *alphabet.Alphabet) (*Mapper, error) {
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("NewMapper: k=%d not in [1, %d]: %w", k, MaxK, ErrInvalidK)
	}
	planar, err := cgr.NewPlanar(a)
	if err != nil {
		return nil, fmt.Errorf("NewMapper: %w", err)
	}

	m := &Mapper{
		k:      k,
		side:   1 << k,
		alpha:  a,
		planar: planar,
		table:  make([]uint32, 1<<(2*k)),
	}

	// Odometer over all k-mers in rank order; the last symbol turns fastest.
	digits := make([]int, k)
	buf := make([]byte, k)
	for i := range buf {
		buf[i] = a.Symbol(0)
	}
	for rank := range m.table {
		pt, _ := planar.EncodeBytes(buf) // every byte comes from the alphabet
		c := m.locate(pt)
		m.table[rank] = uint32(c.Row*m.side + c.Col)
		for i := k - 1; i >= 0; i-- {
			digits[i] = (digits[i] + 1) % alphabet.Size
			buf[i] = a.Symbol(digits[i])
			if digits[i] != 0 {
				break
			}
		}
	}

	return m, nil
}

// K returns the k-mer length.
func (m *Mapper) K() int { return m.k }

// Side returns 2^k.
func (m *Mapper) Side() int { return m.side }

// Alphabet returns the mapper's alphabet.
func (m *Mapper) Alphabet() *alphabet.Alphabet { return m.alpha }

// Pixel returns the cell of kmer.
// Returns ErrInvalidKmer for a wrong length or a symbol outside the alphabet.
func (m *Mapper) Pixel(kmer string) (Cell, error) {
	r, err := m.rank(kmer)
	if err != nil {
		return Cell{}, err
	}
	idx := int(m.table[r])

	return Cell{Row: idx / m.side, Col: idx % m.side}, nil
}

// KmerAt returns the k-mer placed at c, the inverse of Pixel.
// It decodes the centre of c, which is exactly the k-mer's CGR point.
func (m *Mapper) KmerAt(c Cell) (string, error) {
	if c.Row < 0 || c.Row >= m.side || c.Col < 0 || c.Col >= m.side {
		return "", fmt.Errorf("KmerAt: %+v on %dx%d grid: %w", c, m.side, m.side, ErrCellOutOfRange)
	}
	cy := m.side - c.Row // 1-based, y upwards
	side := float64(m.side)
	pt := cgr.Point{
		N: m.k,
		X: float64(2*c.Col+1)/side - 1,
		Y: float64(2*cy-1)/side - 1,
	}
	kmer, err := m.planar.Decode(pt)
	if err != nil {
		return "", fmt.Errorf("KmerAt: %w", err)
	}

	return kmer, nil
}

// locate converts a planar point of length k into its cell.
func (m *Mapper) locate(pt cgr.Point) Cell {
	side := float64(m.side)
	cx := int(math.Ceil((pt.X + 1) / 2 * side))
	cy := int(math.Ceil((pt.Y + 1) / 2 * side))

	return Cell{Row: m.side - cy, Col: cx - 1}
}

// rank returns the base-4 value of kmer with the first symbol most significant.
func (m *Mapper) rank(kmer string) (int, error) {
	if len(kmer) != m.k {
		return 0, fmt.Errorf("Pixel: %q has length %d, want %d: %w", kmer, len(kmer), m.k, ErrInvalidKmer)
	}
	r := 0
	for i := 0; i < len(kmer); i++ {
		idx, ok := m.alpha.Index(kmer[i])
		if !ok {
			return 0, fmt.Errorf("Pixel: %q symbol %q at %d: %w", kmer, kmer[i], i, ErrInvalidKmer)
		}
		r = r<<2 | idx
	}

	return r, nil
}
