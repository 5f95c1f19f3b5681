// SPDX-License-Identifier: MIT

package kmer

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/shenwei356/kmers"
)

// Entry is the tally of one k-mer.
type Entry struct {
	Count      uint64  // occurrences
	QualitySum float64 // Σ of per-occurrence mean quality (WithQuality only)
}

// MeanQuality returns QualitySum/Count, or 0 when Count is 0.
func (e Entry) MeanQuality() float64 {
	if e.Count == 0 {
		return 0
	}

	return e.QualitySum / float64(e.Count)
}

// Tally maps k-mers to counts and, optionally, accumulated quality.
// A Tally is owned by one goroutine; use Merge to combine private tallies.
type Tally struct {
	k       int
	alpha   *alphabet.Alphabet
	opts    options
	entries map[string]Entry
	windows uint64 // Σ (L-k+1) over scanned sequences
	valid   uint64 // windows actually counted
}

// NewTally returns an empty tally of k-mers over a.
// Returns ErrInvalidK when k < 1, ErrNilAlphabet when a is nil, and with
// WithCanonical also ErrInvalidK for k > MaxCanonicalK or
// ErrCanonicalAlphabet when a is not ACGT.
func NewTally(k int, a *alphabet.Alphabet, opts ...Option) (*Tally, error) {
	if k < 1 {
		return nil, fmt.Errorf("NewTally: k=%d: %w", k, ErrInvalidK)
	}
	if a == nil {
		return nil, ErrNilAlphabet
	}
	o := gatherOptions(opts...)
	if o.canonical {
		if k > MaxCanonicalK {
			return nil, fmt.Errorf("NewTally: canonical k=%d > %d: %w", k, MaxCanonicalK, ErrInvalidK)
		}
		if a.Symbols() != "ACGT" {
			return nil, fmt.Errorf("NewTally: %q: %w", a.Symbols(), ErrCanonicalAlphabet)
		}
	}

	return &Tally{
		k:       k,
		alpha:   a,
		opts:    o,
		entries: make(map[string]Entry),
	}, nil
}

// K returns the k-mer length.
func (t *Tally) K() int { return t.k }

// Alphabet returns the alphabet the tally validates against.
func (t *Tally) Alphabet() *alphabet.Alphabet { return t.alpha }

// HasQuality reports whether the tally was built WithQuality.
func (t *Tally) HasQuality() bool { return t.opts.quality }

// Windows returns Σ (L−k+1) over all scanned sequences, ambiguous windows
// included. Ingested counts add their count. This is the probability denominator.
func (t *Tally) Windows() uint64 { return t.windows }

// Valid returns the number of windows that were counted.
func (t *Tally) Valid() uint64 { return t.valid }

// Distinct returns the number of distinct k-mers seen.
func (t *Tally) Distinct() int { return len(t.entries) }

// Count returns the number of occurrences of kmer.
func (t *Tally) Count(kmer string) uint64 { return t.entries[kmer].Count }

// Quality returns the mean quality of kmer over its occurrences (0 if unseen).
func (t *Tally) Quality(kmer string) float64 { return t.entries[kmer].MeanQuality() }

// All iterates over every (kmer, entry) pair in unspecified order.
func (t *Tally) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		for km, e := range t.entries {
			if !yield(km, e) {
				return
			}
		}
	}
}

// Add counts every valid window of seq.
// Returns ErrQualityRequired on a tally built WithQuality.
func (t *Tally) Add(seq string) error {
	if t.opts.quality {
		return fmt.Errorf("Add: %w", ErrQualityRequired)
	}
	t.windows += windowCount(len(seq), t.k)
	for _, km := range Windows(seq, t.k, t.alpha) {
		t.bump(km, 1, 0)
	}

	return nil
}

// AddQuality counts every valid window of read and accumulates the
// arithmetic mean of the k qualities aligned with it.
//
// Errors:
//   - ErrQualityDisabled when the tally was built without WithQuality.
//   - ErrDimensionMismatch when len(qual) != len(read); nothing is counted.
func (t *Tally) AddQuality(read string, qual []float64) error {
	if !t.opts.quality {
		return fmt.Errorf("AddQuality: %w", ErrQualityDisabled)
	}
	if len(qual) != len(read) {
		return fmt.Errorf("AddQuality: %d bases, %d qualities: %w", len(read), len(qual), ErrDimensionMismatch)
	}

	t.windows += windowCount(len(read), t.k)
	for off, km := range Windows(read, t.k, t.alpha) {
		t.bump(km, 1, mean(qual[off:off+t.k]))
	}

	return nil
}

// mean returns the arithmetic mean of one window of qualities.
func mean(w []float64) float64 {
	var s float64
	for _, q := range w {
		s += q
	}

	return s / float64(len(w))
}

// bump adds n occurrences and q quality to km.
func (t *Tally) bump(km string, n uint64, q float64) {
	if t.opts.canonical {
		km = canonical(km)
	}
	e, ok := t.entries[km]
	if !ok {
		km = strings.Clone(km) // do not pin the whole input sequence
	}
	e.Count += n
	e.QualitySum += q
	t.entries[km] = e
	t.valid += n
}

// canonical returns the smaller of km and its reverse complement.
// km is already validated against ACGT and k ≤ MaxCanonicalK.
func canonical(km string) string {
	code, err := kmers.NewKmerCode([]byte(km))
	if err != nil {
		panic(err) // unreachable: NewTally and Windows admit only ACGT with k ≤ 32
	}

	return code.Canonical().String()
}

// Merge adds every count, quality sum and window total of other into t.
// Merging is commutative and associative; other is left untouched.
// Returns ErrKMismatch or ErrIncompatible when the tallies differ in k,
// alphabet, quality or canonical mode.
func (t *Tally) Merge(other *Tally) error {
	if other == nil {
		return nil
	}
	if other.k != t.k {
		return fmt.Errorf("Merge: k=%d vs k=%d: %w", t.k, other.k, ErrKMismatch)
	}
	if other.opts != t.opts || other.alpha.Symbols() != t.alpha.Symbols() {
		return fmt.Errorf("Merge: %w", ErrIncompatible)
	}
	for km, oe := range other.entries {
		e := t.entries[km]
		e.Count += oe.Count
		e.QualitySum += oe.QualitySum
		t.entries[km] = e
	}
	t.windows += other.windows
	t.valid += other.valid

	return nil
}
