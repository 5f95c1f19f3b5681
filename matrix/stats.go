// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Sum returns the sum of all elements. Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}

	return s
}

// MinMax returns the smallest and largest element. Complexity: O(r*c).
func (m *Dense) MinMax() (lo, hi float64) {
	lo, hi = m.data[0], m.data[0]
	for _, v := range m.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

// Rescale returns a copy min-max normalised to [0,1]. A constant matrix
// maps to all zeros instead of dividing by zero.
func (m *Dense) Rescale() *Dense {
	out := m.Clone()
	lo, hi := m.MinMax()
	span := hi - lo
	for i, v := range out.data {
		if span == 0 {
			out.data[i] = 0
			continue
		}
		out.data[i] = (v - lo) / span
	}

	return out
}

// DivideSafe divides num by den element-wise in place, writing 0 wherever
// den is 0. Returns ErrNilMatrix or ErrDimensionMismatch on bad operands.
//
// Complexity: O(r*c), no allocations.
func DivideSafe(num, den *Dense) error {
	if num == nil || den == nil {
		return fmt.Errorf("DivideSafe: %w", ErrNilMatrix)
	}
	if num.r != den.r || num.c != den.c {
		return fmt.Errorf("DivideSafe: %dx%d vs %dx%d: %w", num.r, num.c, den.r, den.c, ErrDimensionMismatch)
	}
	for i, d := range den.data {
		if d == 0 {
			num.data[i] = 0
			continue
		}
		num.data[i] /= d
	}

	return nil
}
