// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package units

// StrictlyIncreasing reports whether x is strictly monotonically
// increasing. It is the predicate package interp uses when constructing
// an Axis, which is also how package eop's time index gets validated.
func StrictlyIncreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return false
		}
	}
	return true
}

// Diff returns the N-1 successive differences x[i+1]-x[i] of an N-element
// slice.
func Diff(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	d := make([]float64, len(x)-1)
	for i := range d {
		d[i] = x[i+1] - x[i]
	}
	return d
}

// PartitionPoint returns the index of the first element of x for which
// pred returns false, assuming pred is true for a prefix of x and false for
// the remaining suffix (x is partitioned by pred). It underlies the
// binary search interp.Series.Interpolate uses to locate the interval
// containing a query point.
func PartitionPoint(n int, pred func(i int) bool) int {
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if pred(mid) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
