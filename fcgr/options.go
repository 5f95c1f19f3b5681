// SPDX-License-Identifier: MIT

package fcgr

// Builder defaults.
const (
	// DefaultProbabilities writes raw counts.
	DefaultProbabilities = false

	// DefaultQuality builds the count channel only.
	DefaultQuality = false
)

// Option configures a Builder.
type Option func(*options)

type options struct {
	probabilities bool
	quality       bool
}

// WithProbabilities divides every count by the tally's window total (L−k+1 summed over inputs).
func WithProbabilities() Option {
	return func(o *options) { o.probabilities = true }
}

// WithQuality adds the mean-quality channel. The tally must be built with kmer.WithQuality.
func WithQuality() Option {
	return func(o *options) { o.quality = true }
}

func gatherOptions(user ...Option) options {
	o := options{
		probabilities: DefaultProbabilities,
		quality:       DefaultQuality,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
