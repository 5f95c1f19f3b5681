// SPDX-License-Identifier: MIT

package kmer

import (
	"context"
	"fmt"

	"github.com/katalvlaran/chaosgame/alphabet"
	"golang.org/x/sync/errgroup"
)

// Record is one sequence (or read) fed to CountParallel.
// Qual is nil for plain sequences and aligned per base for reads.
type Record struct {
	Seq  string
	Qual []float64
}

// Source sends records to out until the input is exhausted. It must stop
// and return ctx.Err() once ctx is done. CountParallel closes out.
type Source func(ctx context.Context, out chan<- Record) error

// CountParallel tallies every record produced by src across workers
// private tallies, then merges them into one. No tally is shared while
// counting, and since Merge is commutative the result does not depend on
// how records were scheduled.
//
// Records go through Add or AddQuality depending on WithQuality, so the
// first record error (e.g. ErrDimensionMismatch) cancels the whole run.
func CountParallel(ctx context.Context, k int, a *alphabet.Alphabet, workers int, src Source, opts ...Option) (*Tally, error) {
	total, err := NewTally(k, a, opts...)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	records := make(chan Record, 4*workers)
	g.Go(func() error {
		defer close(records)

		return src(ctx, records)
	})

	parts := make([]*Tally, workers)
	for w := range parts {
		part, _ := NewTally(k, a, opts...) // same arguments as total
		parts[w] = part
		g.Go(func() error {
			for rec := range records {
				var err error
				if part.HasQuality() {
					err = part.AddQuality(rec.Seq, rec.Qual)
				} else {
					err = part.Add(rec.Seq)
				}
				if err != nil {
					return fmt.Errorf("CountParallel: %w", err)
				}
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	for _, part := range parts {
		if err = total.Merge(part); err != nil {
			return nil, err
		}
	}

	return total, nil
}

// SliceSource returns a Source over in-memory sequences.
func SliceSource(seqs ...string) Source {
	return func(ctx context.Context, out chan<- Record) error {
		for _, s := range seqs {
			select {
			case out <- Record{Seq: s}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	}
}
