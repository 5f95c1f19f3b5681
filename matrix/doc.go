// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric grid that holds a frequency
// CGR and the few whole-grid operations its consumers need.
//
// What & Why:
//
//	Dense is a row-major float64 grid with bounds-checked accessors: At/Set
//	return errors instead of panicking and reject NaN/±Inf so a finished
//	matrix always satisfies the "finite values" contract a renderer relies
//	on. Sum, MinMax, Rescale, DivideSafe and WriteTSV cover count
//	conservation checks, min-max normalisation for grayscale output, the
//	quality-channel finishing pass and plain-text export.
//
// Complexity:
//
//	NewDense, Clone, Sum, MinMax, Rescale, DivideSafe, WriteTSV: O(r*c).
//	At, Set, Add: O(1).
package matrix
