package stats

import "sort"

// Sum returns the sum of all elements in the slice.
func Sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	return Sum(x) / float64(n)
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	min, max := x[0], x[0]
	for i := 1; i < len(x); i++ {
		if x[i] < min {
			min = x[i]
		} else if x[i] > max {
			max = x[i]
		}
	}
	return min, max
}

// Median returns the median value of the slice (allocates a copy).
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 { // even
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}

// Percentile returns the p-th percentile value of the slice (0 <= p <= 100),
// using linear interpolation between adjacent order statistics at rank
// p/100*(n-1). This is the type-7 quantile estimator, the default in R and
// numpy, so derived thresholds reproduce across implementations.
func Percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	return percentileSorted(cp, p)
}

// Quartiles returns the first and third quartiles of the slice, sharing one
// sorted copy between the two interpolations.
func Quartiles(x []float64) (q1, q3 float64) {
	n := len(x)
	if n == 0 {
		return 0, 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	return percentileSorted(cp, 25), percentileSorted(cp, 75)
}

// IQR returns the interquartile range Q3 - Q1.
func IQR(x []float64) float64 {
	q1, q3 := Quartiles(x)
	return q3 - q1
}

// UpperFence returns Tukey's upper outlier fence Q3 + k*(Q3 - Q1).
// k = 1.5 gives the conventional box-plot fence.
func UpperFence(x []float64, k float64) float64 {
	q1, q3 := Quartiles(x)
	return q3 + k*(q3-q1)
}

// percentileSorted interpolates the p-th percentile of an already sorted slice.
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return sorted[lower]
	}
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
