// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/kmer"
	"github.com/spf13/cobra"
)

func countsCommand() *cobra.Command {
	var opt gridOptions

	cmd := &cobra.Command{
		Use:   "counts -k K [flags] COUNTFILE...",
		Short: "Build the FCGR of external k-mer count dumps",
		Long: `Build the FCGR of "<kmer><whitespace><count>" dumps, e.g. from a canonical
k-mer counter. Files may be gzipped; counts are summed across files.
A malformed line aborts the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCounts(opt, args)
		},
	}
	cmd.Flags().IntVarP(&opt.k, "kmer", "k", 6, "K-mer size")
	cmd.Flags().BoolVarP(&opt.prob, "prob", "p", false, "Write probabilities instead of counts")
	cmd.Flags().BoolVarP(&opt.rescale, "rescale", "r", false, "Min-max rescale the grid to [0,1]")
	cmd.Flags().StringVarP(&opt.output, "output", "o", "-", `Output TSV file ("-" for stdout, ".gz" for gzip)`)

	return cmd
}

func runCounts(opt gridOptions, files []string) error {
	b, err := opt.builder()
	if err != nil {
		return err
	}
	t, err := kmer.NewTally(opt.k, alphabet.DNA())
	if err != nil {
		return err
	}
	for _, file := range files {
		if err = t.ReadCountsFile(file); err != nil {
			return err
		}
		log.Printf("Read %s: %d distinct k-mers so far", file, t.Distinct())
	}

	f, err := b.Build(t)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	return writeGrid(opt.output, opt.finish(f.Counts))
}
