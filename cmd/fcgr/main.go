// SPDX-License-Identifier: MIT

// Command fcgr encodes and decodes sequences with the chaos game and builds
// frequency grids from FASTA/FASTQ files or external k-mer count dumps.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fcgr",
		Short: "chaos game representation of DNA sequences",
		Long: `fcgr: chaos game representation toolkit

Commands:
  - encode/decode between sequences and planar, integer or complex CGR
  - matrix: k-mer frequency grid (FCGR) of FASTA/FASTQ files
  - counts: FCGR of "<kmer> <count>" dumps from an external counter
  - reads:  per-sample FCGR of FASTQ reads, optionally with mean quality`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(encodeCommand())
	rootCmd.AddCommand(decodeCommand())
	rootCmd.AddCommand(matrixCommand())
	rootCmd.AddCommand(countsCommand())
	rootCmd.AddCommand(readsCommand())

	return rootCmd
}

func main() {
	log.SetFlags(log.LstdFlags)
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
