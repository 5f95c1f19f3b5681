// SPDX-License-Identifier: MIT

package kmer

// MaxCanonicalK is the largest k supported by WithCanonical (2 bits per base in a uint64).
const MaxCanonicalK = 32

// Defaults for a Tally.
const (
	// DefaultQuality disables quality accumulation.
	DefaultQuality = false

	// DefaultCanonical counts k-mers as they appear, without reverse-complement folding.
	DefaultCanonical = false
)

// Option configures a Tally.
type Option func(*options)

type options struct {
	quality   bool
	canonical bool
}

// WithQuality makes the tally accumulate the mean quality of every window.
// Such a tally only accepts AddQuality.
func WithQuality() Option {
	return func(o *options) { o.quality = true }
}

// WithCanonical folds every k-mer and its reverse complement onto the
// lexicographically smaller of the two before counting.
func WithCanonical() Option {
	return func(o *options) { o.canonical = true }
}

func gatherOptions(user ...Option) options {
	o := options{
		quality:   DefaultQuality,
		canonical: DefaultCanonical,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
