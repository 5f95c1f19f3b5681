// SPDX-License-Identifier: MIT

package fcgr

import (
	"fmt"

	"github.com/katalvlaran/chaosgame/kmer"
	"github.com/katalvlaran/chaosgame/matrix"
)

// FCGR is a finished frequency grid.
type FCGR struct {
	// K is the k-mer length; both grids are 2^K × 2^K.
	K int

	// Counts holds occurrence counts, or probabilities under WithProbabilities.
	Counts *matrix.Dense

	// Quality holds the mean per-k-mer quality of each cell (0 for unseen
	// k-mers). Nil unless built WithQuality.
	Quality *matrix.Dense

	// Probabilities reports whether Counts holds probabilities.
	Probabilities bool
}

// Builder turns tallies into FCGRs. It reuses one Mapper for every Build
// and is safe for concurrent use.
type Builder struct {
	mapper *Mapper
	opts   options
}

// NewBuilder returns a Builder writing through m.
// Returns ErrNilMapper, or ErrConflictingModes for WithProbabilities together with WithQuality.
func NewBuilder(m *Mapper, opts ...Option) (*Builder, error) {
	if m == nil {
		return nil, fmt.Errorf("NewBuilder: %w", ErrNilMapper)
	}
	o := gatherOptions(opts...)
	if o.probabilities && o.quality {
		return nil, fmt.Errorf("NewBuilder: %w", ErrConflictingModes)
	}

	return &Builder{mapper: m, opts: o}, nil
}

// Mapper returns the builder's mapper.
func (b *Builder) Mapper() *Mapper { return b.mapper }

// Build writes t into fresh grids.
//
// Stage 1 (validate): t must match the mapper's k and symbols, carry
// quality if WithQuality is set, and have windows if WithProbabilities is set.
// Stage 2 (scatter): every tallied k-mer lands in its own cell, so no cell is
// written twice. The quality grid collects quality sums.
// Stage 3 (finish): quality sums are divided by counts, leaving 0 in empty
// cells; counts are divided by Windows() for probabilities.
//
// Complexity: O(4^k + distinct k-mers) time, O(4^k) space per grid.
func (b *Builder) Build(t *kmer.Tally) (*FCGR, error) {
	if err := b.check(t); err != nil {
		return nil, err
	}

	side := b.mapper.Side()
	counts, err := matrix.NewDense(side, side)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	var quality *matrix.Dense
	if b.opts.quality {
		quality, _ = matrix.NewDense(side, side) // same shape as counts
	}

	for km, e := range t.All() {
		c, err := b.mapper.Pixel(km)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if err = counts.Set(c.Row, c.Col, float64(e.Count)); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if quality != nil {
			if err = quality.Set(c.Row, c.Col, e.QualitySum); err != nil {
				return nil, fmt.Errorf("Build: %w", err)
			}
		}
	}

	if quality != nil {
		if err = matrix.DivideSafe(quality, counts); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if b.opts.probabilities {
		total := float64(t.Windows())
		if err = counts.Apply(func(_, _ int, v float64) float64 { return v / total }); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return &FCGR{
		K:             b.mapper.K(),
		Counts:        counts,
		Quality:       quality,
		Probabilities: b.opts.probabilities,
	}, nil
}

// FromSequences tallies seqs and builds their FCGR in one call.
// Sequences shorter than k contribute nothing. Not available WithQuality.
func (b *Builder) FromSequences(seqs ...string) (*FCGR, error) {
	if b.opts.quality {
		return nil, fmt.Errorf("FromSequences: %w", ErrNoQuality)
	}
	t, err := kmer.NewTally(b.mapper.K(), b.mapper.Alphabet())
	if err != nil {
		return nil, fmt.Errorf("FromSequences: %w", err)
	}
	for _, s := range seqs {
		if err = t.Add(s); err != nil {
			return nil, fmt.Errorf("FromSequences: %w", err)
		}
	}

	return b.Build(t)
}

func (b *Builder) check(t *kmer.Tally) error {
	switch {
	case t == nil:
		return fmt.Errorf("Build: %w", ErrNilTally)
	case t.K() != b.mapper.K():
		return fmt.Errorf("Build: tally k=%d, mapper k=%d: %w", t.K(), b.mapper.K(), ErrKMismatch)
	case t.Alphabet().Symbols() != b.mapper.Alphabet().Symbols():
		return fmt.Errorf("Build: %q vs %q: %w", t.Alphabet().Symbols(), b.mapper.Alphabet().Symbols(), ErrAlphabetMismatch)
	case b.opts.quality && !t.HasQuality():
		return fmt.Errorf("Build: %w", ErrNoQuality)
	case b.opts.probabilities && t.Windows() == 0:
		return fmt.Errorf("Build: %w", ErrEmptyTally)
	}

	return nil
}
