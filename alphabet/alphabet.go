// SPDX-License-Identifier: MIT

package alphabet

import "fmt"

// Size is the number of symbols in a nucleotide alphabet.
const Size = 4

// DefaultAmbiguity is the symbol that marks an unknown base.
const DefaultAmbiguity = 'N'

// noIndex marks bytes that are not part of the alphabet in the lookup table.
const noIndex = -1

// Corner is a vertex of the square [-1,1]², used as the attractor of one symbol.
type Corner struct {
	X, Y int
}

// quadrant packs the sign pattern of c into 0..3.
func (c Corner) quadrant() int {
	q := 0
	if c.X > 0 {
		q |= 1
	}
	if c.Y > 0 {
		q |= 2
	}

	return q
}

// Alphabet is an immutable bijection symbol ↔ index ↔ corner.
// The zero value is not usable; build one with New or DNA.
type Alphabet struct {
	symbols   [Size]byte
	corners   [Size]Corner
	index     [256]int8 // byte → index, noIndex when absent
	byQuad    [Size]int8
	ambiguity byte
}

// Option customises an Alphabet under construction.
type Option func(*Alphabet)

// WithAmbiguity replaces the ambiguity symbol (default 'N').
func WithAmbiguity(b byte) Option {
	return func(a *Alphabet) { a.ambiguity = b }
}

// New builds an Alphabet from four symbols and their corners.
// Symbol i gets index i and corner corners[i].
//
// Returns ErrSymbolCount, ErrDuplicateSymbol, ErrInvalidCorner or
// ErrSharedQuadrant when the assignment is not a total bijection.
func New(symbols string, corners [Size]Corner, opts ...Option) (*Alphabet, error) {
	if len(symbols) != Size {
		return nil, fmt.Errorf("New(%q): %w", symbols, ErrSymbolCount)
	}

	a := &Alphabet{ambiguity: DefaultAmbiguity}
	for _, opt := range opts {
		opt(a)
	}
	for i := range a.index {
		a.index[i] = noIndex
	}
	for i := range a.byQuad {
		a.byQuad[i] = noIndex
	}

	for i := 0; i < Size; i++ {
		s, c := symbols[i], corners[i]
		if s == a.ambiguity || a.index[s] != noIndex {
			return nil, fmt.Errorf("New: symbol %q: %w", s, ErrDuplicateSymbol)
		}
		if !unit(c.X) || !unit(c.Y) {
			return nil, fmt.Errorf("New: corner %v of %q: %w", c, s, ErrInvalidCorner)
		}
		q := c.quadrant()
		if a.byQuad[q] != noIndex {
			return nil, fmt.Errorf("New: corner %v of %q: %w", c, s, ErrSharedQuadrant)
		}
		a.symbols[i] = s
		a.corners[i] = c
		a.index[s] = int8(i)
		a.byQuad[q] = int8(i)
	}

	return a, nil
}

// DNA returns the standard table A(1,1) C(-1,1) G(-1,-1) T(1,-1) with
// indices 0..3 in that order and 'N' as ambiguity symbol.
func DNA() *Alphabet {
	a, err := New("ACGT", [Size]Corner{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}})
	if err != nil {
		panic(err) // unreachable: the literal table is a bijection
	}

	return a
}

func unit(v int) bool { return v == 1 || v == -1 }

// Index returns the index of b, or false when b is not an alphabet symbol.
func (a *Alphabet) Index(b byte) (int, bool) {
	i := a.index[b]
	if i == noIndex {
		return 0, false
	}

	return int(i), true
}

// Valid reports whether b is one of the four symbols.
func (a *Alphabet) Valid(b byte) bool { return a.index[b] != noIndex }

// Corner returns the corner assigned to b.
func (a *Alphabet) Corner(b byte) (Corner, bool) {
	i := a.index[b]
	if i == noIndex {
		return Corner{}, false
	}

	return a.corners[i], true
}

// Symbol returns the symbol with index i. It panics when i is outside 0..3.
func (a *Alphabet) Symbol(i int) byte { return a.symbols[i] }

// SymbolAt returns the symbol whose corner lies in the same quadrant as
// the sign pattern (sx, sy). Zero signs have no quadrant.
func (a *Alphabet) SymbolAt(sx, sy int) (byte, bool) {
	if sx == 0 || sy == 0 {
		return 0, false
	}
	i := a.byQuad[Corner{X: sx, Y: sy}.quadrant()]

	return a.symbols[i], true
}

// Ambiguity returns the ambiguity symbol.
func (a *Alphabet) Ambiguity() byte { return a.ambiguity }

// Symbols returns the four symbols in index order.
func (a *Alphabet) Symbols() string { return string(a.symbols[:]) }
