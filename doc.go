// Package chaosgame is a toolkit for the Chaos Game Representation (CGR) of
// DNA sequences and their k-mer frequency grids (FCGR).
//
// 🚀 What is chaosgame?
//
//	Three reversible encodings and the frequency image built on top of them:
//		• PlanarCGR: real-valued point in (-1,1)², the classic CGR
//		• IntegerCGR: exact lattice point, lossless for any length
//		• ComplexCGR: base-4 numeral k with angle 2πk/4^N
//		• FCGR: 2^k × 2^k grid of k-mer counts, probabilities or mean quality
//
// ✨ Why chaosgame?
//
//   - Exact – integer and complex codecs round-trip any sequence length
//   - Explicit – every codec and tally takes its alphabet as an argument
//   - Parallel – per-worker tallies merged at the end, no shared counters
//
// Under the hood, everything is organized under five subpackages:
//
//	alphabet/ — symbol ↔ corner bijection, DNA default, ambiguity symbol
//	cgr/      — Planar, Integer and Complex codecs (Codec[C] interface)
//	kmer/     — sliding windows, tallies, quality, external count ingestion
//	matrix/   — dense float64 grid with TSV export
//	fcgr/     — k-mer → cell mapping, FCGR builder, circular layout
//
// The fcgr command (cmd/fcgr) wires them to FASTA/FASTQ files and count dumps.
//
// Quick example:
//
//	m, _ := fcgr.NewMapper(6, alphabet.DNA())
//	b, _ := fcgr.NewBuilder(m, fcgr.WithProbabilities())
//	grid, _ := b.FromSequences("ACGTTGCA...")
//	_ = grid.Counts.WriteTSV(os.Stdout)
package chaosgame
