// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"runtime"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/fcgr"
	"github.com/katalvlaran/chaosgame/kmer"
	"github.com/spf13/cobra"
)

// reSampleName strips FASTA/FASTQ extensions from a file name.
var reSampleName = regexp.MustCompile(`(?i)\.(f[aq](st[aq])?|fna)(\.gz)?$`)

func readsCommand() *cobra.Command {
	var (
		opt     gridOptions
		quality bool
	)

	cmd := &cobra.Command{
		Use:   "reads -k K [flags] FASTQ...",
		Short: "Build one FCGR per sample of sequencing reads",
		Long: `Build one FCGR per input file. Each sample writes <prefix><name>.counts.tsv
and, with --quality, <prefix><name>.quality.tsv holding the mean Phred
quality of every k-mer (0 for k-mers never seen).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReads(cmd, opt, quality, args)
		},
	}
	cmd.Flags().IntVarP(&opt.k, "kmer", "k", 6, "K-mer size")
	cmd.Flags().BoolVarP(&quality, "quality", "Q", false, "Also write the mean-quality grid")
	cmd.Flags().IntVarP(&opt.workers, "threads", "t", runtime.NumCPU(), "Number of counting threads")
	cmd.Flags().StringVarP(&opt.output, "out-prefix", "o", "", "Output path prefix")
	cmd.Flags().BoolVarP(&opt.quiet, "quiet", "q", false, "Do not show progress")

	return cmd
}

func runReads(cmd *cobra.Command, opt gridOptions, quality bool, files []string) error {
	var (
		buildOpts []fcgr.Option
		tallyOpts []kmer.Option
	)
	if quality {
		buildOpts = append(buildOpts, fcgr.WithQuality())
		tallyOpts = append(tallyOpts, kmer.WithQuality())
	}
	b, err := opt.builder(buildOpts...)
	if err != nil {
		return err
	}

	for _, file := range files {
		name := reSampleName.ReplaceAllString(filepath.Base(file), "")
		log.Printf("Sample %s: counting %d-mers...", name, opt.k)

		bar := newBar(opt.quiet)
		t, err := kmer.CountParallel(cmd.Context(), opt.k, alphabet.DNA(), opt.workers,
			fastxSource([]string{file}, quality, bar), tallyOpts...)
		finishBar(bar)
		if err != nil {
			return fmt.Errorf("sample %s: %w", name, err)
		}

		f, err := b.Build(t)
		if err != nil {
			return fmt.Errorf("sample %s: %w", name, err)
		}
		if err = writeGrid(opt.output+name+".counts.tsv", f.Counts); err != nil {
			return err
		}
		if f.Quality != nil {
			if err = writeGrid(opt.output+name+".quality.tsv", f.Quality); err != nil {
				return err
			}
		}
	}

	return nil
}
