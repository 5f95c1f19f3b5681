// SPDX-License-Identifier: MIT

package fcgr

import "errors"

var (
	// ErrInvalidK indicates k outside [1, MaxK].
	ErrInvalidK = errors.New("fcgr: k out of range")

	// ErrInvalidKmer indicates a k-mer of the wrong length or with a symbol outside the alphabet.
	ErrInvalidKmer = errors.New("fcgr: invalid k-mer")

	// ErrCellOutOfRange indicates a cell outside the 2^k × 2^k grid.
	ErrCellOutOfRange = errors.New("fcgr: cell out of range")

	// ErrKMismatch indicates a tally whose k differs from the mapper's.
	ErrKMismatch = errors.New("fcgr: tally k differs from mapper k")

	// ErrAlphabetMismatch indicates a tally over a different symbol set.
	ErrAlphabetMismatch = errors.New("fcgr: tally alphabet differs from mapper alphabet")

	// ErrNoQuality indicates WithQuality on a tally that carries no quality.
	ErrNoQuality = errors.New("fcgr: tally carries no quality")

	// ErrEmptyTally indicates probabilities requested over zero windows.
	ErrEmptyTally = errors.New("fcgr: tally has no windows")

	// ErrConflictingModes indicates WithProbabilities combined with WithQuality.
	ErrConflictingModes = errors.New("fcgr: probability and quality modes are exclusive")

	// ErrNilMapper indicates a builder constructed without a mapper.
	ErrNilMapper = errors.New("fcgr: mapper is nil")

	// ErrNilTally indicates a nil tally passed to Build.
	ErrNilTally = errors.New("fcgr: tally is nil")
)
