// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/kmer"
	"github.com/spf13/cobra"
)

func matrixCommand() *cobra.Command {
	var (
		opt       gridOptions
		canonical bool
		circular  string
	)

	cmd := &cobra.Command{
		Use:   "matrix -k K [flags] FASTX...",
		Short: "Build the FCGR of FASTA/FASTQ files",
		Long: `Build the k-mer frequency grid (FCGR) of every sequence in the input files.

All files are pooled into one 2^k x 2^k grid. Windows holding an ambiguity
code (N) are skipped but still count towards the probability denominator.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(cmd, opt, canonical, circular, args)
		},
	}
	cmd.Flags().IntVarP(&opt.k, "kmer", "k", 6, "K-mer size")
	cmd.Flags().BoolVarP(&opt.prob, "prob", "p", false, "Write probabilities instead of counts")
	cmd.Flags().BoolVarP(&canonical, "canonical", "c", false, "Fold k-mers with their reverse complement (k <= 32)")
	cmd.Flags().IntVarP(&opt.workers, "threads", "t", runtime.NumCPU(), "Number of counting threads")
	cmd.Flags().BoolVarP(&opt.rescale, "rescale", "r", false, "Min-max rescale the grid to [0,1]")
	cmd.Flags().StringVarP(&opt.output, "output", "o", "-", `Output TSV file ("-" for stdout, ".gz" for gzip)`)
	cmd.Flags().StringVarP(&circular, "circular", "C", "", "Also write the circular layout (kmer, angle, width, height) to this file")
	cmd.Flags().BoolVarP(&opt.quiet, "quiet", "q", false, "Do not show progress")

	return cmd
}

func runMatrix(cmd *cobra.Command, opt gridOptions, canonical bool, circular string, files []string) error {
	start := time.Now()
	b, err := opt.builder()
	if err != nil {
		return err
	}
	var tallyOpts []kmer.Option
	if canonical {
		tallyOpts = append(tallyOpts, kmer.WithCanonical())
	}

	log.Printf("Counting %d-mers in %d file(s) with %d threads...", opt.k, len(files), opt.workers)
	bar := newBar(opt.quiet)
	t, err := kmer.CountParallel(cmd.Context(), opt.k, alphabet.DNA(), opt.workers,
		fastxSource(files, false, bar), tallyOpts...)
	finishBar(bar)
	if err != nil {
		return err
	}
	log.Printf("Windows: %d, counted: %d, distinct k-mers: %d", t.Windows(), t.Valid(), t.Distinct())

	f, err := b.Build(t)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}
	if err = writeGrid(opt.output, opt.finish(f.Counts)); err != nil {
		return err
	}
	if circular != "" {
		if err = writeCircular(circular, t); err != nil {
			return err
		}
	}
	log.Printf("Elapsed time: %.2fs", time.Since(start).Seconds())

	return nil
}
