// SPDX-License-Identifier: MIT

// Package kmer tallies fixed-length substrings (k-mers) of nucleotide
// sequences, optionally together with the mean base quality of every
// occurrence.
//
// What:
//
//   - Windows lazily enumerates the valid k-mers of one sequence with their
//     offsets; any window holding a byte outside the alphabet is skipped.
//   - Tally accumulates counts (and quality sums) across any number of
//     sequences, reads or pre-counted files; counts are summed, never reset.
//   - ReadCounts ingests "<kmer> <count>" dumps of external canonical
//     counters (KMC and friends), gzip or plain.
//   - CountParallel splits a record stream across private tallies and merges
//     them once; merging is commutative and associative.
//
// Memory is O(distinct k-mers), not O(sequence length).
//
// Errors:
//
//   - ErrInvalidK:          k < 1 (or > 32 with WithCanonical).
//   - ErrDimensionMismatch: quality vector length differs from read length.
//   - ErrMalformedRecord:   a count line could not be parsed (see *RecordError).
//   - ErrKMismatch, ErrIncompatible: Merge of tallies built differently.
//   - ErrQualityDisabled, ErrQualityRequired: quality input on the wrong kind of tally.
package kmer
