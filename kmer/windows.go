// SPDX-License-Identifier: MIT

package kmer

import (
	"iter"

	"github.com/katalvlaran/chaosgame/alphabet"
)

// Windows returns a lazy, restartable iterator over the valid k-mers of seq.
// It yields (offset, kmer) for every offset in 0..len(seq)-k whose window
// holds only symbols of a; windows containing the ambiguity symbol (or any
// other byte) are skipped. Yielded strings share memory with seq.
//
// Complexity: O(len(seq)) per full iteration, O(1) extra space.
func Windows(seq string, k int, a *alphabet.Alphabet) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if k < 1 || a == nil {
			return
		}
		run := 0 // length of the valid run ending at j
		for j := 0; j < len(seq); j++ {
			if !a.Valid(seq[j]) {
				run = 0
				continue
			}
			run++
			if run < k {
				continue
			}
			start := j - k + 1
			if !yield(start, seq[start:j+1]) {
				return
			}
		}
	}
}

// windowCount returns L-k+1 clamped at zero.
func windowCount(length, k int) uint64 {
	if length < k {
		return 0
	}

	return uint64(length - k + 1)
}
