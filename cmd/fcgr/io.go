// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/cheggaaa/pb/v3"
	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/fcgr"
	"github.com/katalvlaran/chaosgame/kmer"
	"github.com/katalvlaran/chaosgame/matrix"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// phredOffset is the Sanger/Illumina 1.8+ quality encoding.
const phredOffset = 33

func init() {
	// Ambiguity codes are counted as windows and skipped, not rejected.
	seq.ValidateSeq = false
}

// fastxSource streams every record of files, upper-cased, with Phred
// qualities when withQual is set. bar may be nil.
func fastxSource(files []string, withQual bool, bar *pb.ProgressBar) kmer.Source {
	return func(ctx context.Context, out chan<- kmer.Record) error {
		for _, file := range files {
			if err := readFastx(ctx, file, withQual, bar, out); err != nil {
				return err
			}
		}

		return nil
	}
}

func readFastx(ctx context.Context, file string, withQual bool, bar *pb.ProgressBar, out chan<- kmer.Record) error {
	reader, err := fastx.NewReader(nil, file, "")
	if err != nil {
		return fmt.Errorf("failed to read seq file %s: %w", file, err)
	}
	defer reader.Close()

	for i := 0; ; i++ {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}

			return fmt.Errorf("read seq %d in %s: %w", i, file, err)
		}

		rec := kmer.Record{Seq: string(bytes.ToUpper(record.Seq.Seq))}
		if withQual {
			if len(record.Seq.Qual) == 0 {
				return fmt.Errorf("seq %d in %s has no qualities", i, file)
			}
			rec.Qual = phred(record.Seq.Qual)
		}
		select {
		case out <- rec:
		case <-ctx.Done():
			return ctx.Err()
		}
		if bar != nil {
			bar.Increment()
		}
	}
}

func phred(qual []byte) []float64 {
	out := make([]float64, len(qual))
	for i, q := range qual {
		out[i] = float64(int(q) - phredOffset)
	}

	return out
}

// newBar returns a record counter on stderr, or nil when quiet.
func newBar(quiet bool) *pb.ProgressBar {
	if quiet {
		return nil
	}
	bar := pb.Full.Start64(0)
	bar.Set(pb.Bytes, false)

	return bar
}

func finishBar(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Finish()
	}
}

// gridOptions are the flags shared by every grid-producing command.
type gridOptions struct {
	k       int
	prob    bool
	output  string
	workers int
	quiet   bool
	rescale bool
}

func (o gridOptions) builder(extra ...fcgr.Option) (*fcgr.Builder, error) {
	m, err := fcgr.NewMapper(o.k, alphabet.DNA())
	if err != nil {
		return nil, err
	}
	if o.prob {
		extra = append(extra, fcgr.WithProbabilities())
	}

	return fcgr.NewBuilder(m, extra...)
}

// finish returns m, min-max rescaled to [0,1] when requested.
func (o gridOptions) finish(m *matrix.Dense) *matrix.Dense {
	if o.rescale {
		return m.Rescale()
	}

	return m
}

// writeGrid writes m as TSV to path ("-" for stdout, ".gz" compresses).
func writeGrid(path string, m *matrix.Dense) error {
	w, err := xopen.Wopen(path)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = m.WriteTSV(w); err != nil {
		w.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if path != "-" {
		log.Printf("Wrote %dx%d grid to %s", m.Rows(), m.Cols(), path)
	}

	return nil
}

// writeCircular writes one "kmer angle width height" line per tallied k-mer, by angle.
func writeCircular(path string, t *kmer.Tally) error {
	bars, err := fcgr.Circular(t)
	if err != nil {
		return err
	}
	w, err := xopen.Wopen(path)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	for _, bar := range bars {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", bar.Kmer,
			strconv.FormatFloat(bar.Angle, 'g', -1, 64),
			strconv.FormatFloat(bar.Width, 'g', -1, 64),
			strconv.FormatFloat(bar.Height, 'g', -1, 64))
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
