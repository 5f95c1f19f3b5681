// SPDX-License-Identifier: MIT

package kmer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK indicates an unusable k-mer length.
	ErrInvalidK = errors.New("kmer: invalid k")

	// ErrNilAlphabet indicates a tally built without an alphabet.
	ErrNilAlphabet = errors.New("kmer: alphabet is nil")

	// ErrDimensionMismatch indicates a quality vector whose length differs from its read.
	ErrDimensionMismatch = errors.New("kmer: quality length does not match read length")

	// ErrMalformedRecord indicates an external count line that is not "<kmer> <count>".
	ErrMalformedRecord = errors.New("kmer: malformed count record")

	// ErrKMismatch indicates tallies of different k.
	ErrKMismatch = errors.New("kmer: k mismatch")

	// ErrIncompatible indicates tallies that differ in alphabet, quality or canonical mode.
	ErrIncompatible = errors.New("kmer: incompatible tallies")

	// ErrQualityDisabled indicates quality input on a tally built without WithQuality.
	ErrQualityDisabled = errors.New("kmer: tally does not track quality")

	// ErrQualityRequired indicates plain input on a tally built with WithQuality.
	ErrQualityRequired = errors.New("kmer: tally requires per-base quality")

	// ErrCanonicalAlphabet indicates WithCanonical on an alphabet other than ACGT.
	ErrCanonicalAlphabet = errors.New("kmer: canonical counting needs the ACGT alphabet")
)

// RecordError reports the offending line of an external count file.
// It matches ErrMalformedRecord under errors.Is.
type RecordError struct {
	Line int    // 1-based line number
	Text string // raw line
	Err  error  // parse failure detail
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("kmer: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the parse failure detail.
func (e *RecordError) Unwrap() error { return e.Err }

// Is reports whether target is ErrMalformedRecord.
func (e *RecordError) Is(target error) bool { return target == ErrMalformedRecord }
