// SPDX-License-Identifier: MIT

// Package fcgr builds Frequency Chaos Game Representations: 2^k × 2^k
// grids in which every cell holds the count (or probability, or mean
// quality) of the one k-mer whose CGR point falls inside it.
//
// 🚀 Pipeline:
//
//	sequence ─▶ kmer.Tally ─▶ Mapper (k-mer → cell) ─▶ Builder ─▶ *FCGR
//
// ✨ Pieces:
//
//   - Mapper precomputes the k-mer → cell table once per k (4^k entries)
//     from the planar CGR encoding; the map is a bijection, so every cell
//     receives exactly one k-mer. KmerAt inverts it.
//   - Builder writes a tally into fresh grids: counts by default,
//     probabilities with WithProbabilities, and a second mean-quality
//     channel with WithQuality.
//   - Circular lays k-mers out on the unit circle by their ComplexCGR angle,
//     the input of a circular density plot.
//
// Cell convention:
//
//	Cell{Row, Col} is zero-based; Row 0 is the top edge (largest y), Col 0 the
//	left edge (smallest x). For k = 1: C A on the top row, G T below.
//
// Rendering is out of scope: a finished FCGR is read-only input for an
// external renderer.
package fcgr
