// Package downsample rescales outlier columns of a mutation-count matrix so
// that samples with disproportionately high total burden do not dominate
// signature-extraction statistics.
package downsample

import (
	"errors"
	"fmt"
	"math"

	"github.com/EllieDunstone/matrix-downsampling/pkg/matrix"
	"github.com/EllieDunstone/matrix-downsampling/pkg/stats"
)

// ErrInvalidThreshold reports a supplied threshold that is not positive and
// finite.
var ErrInvalidThreshold = errors.New("downsample: threshold must be positive and finite")

// tukeyK is the fence multiplier for automatic threshold derivation,
// matching the conventional box-plot outlier fence.
const tukeyK = 1.5

// Options configures a downsampling run.
type Options struct {
	// Threshold overrides automatic derivation when non-zero. Zero means
	// derive the threshold from the sample-total distribution.
	Threshold float64
}

// Outlier describes one sample whose burden exceeded the threshold.
type Outlier struct {
	Sample string
	Total  float64
	Factor float64
}

// Result reports what a run did: the threshold applied, whether it was
// derived from the data, and every rescaled sample. It is advisory output
// alongside the matrix, never an input to the computation.
type Result struct {
	Threshold float64
	Derived   bool
	Outliers  []Outlier
}

// OutlierSamples returns the identifiers of the rescaled samples, in column
// order.
func (r *Result) OutlierSamples() []string {
	names := make([]string, len(r.Outliers))
	for i, o := range r.Outliers {
		names[i] = o.Sample
	}
	return names
}

// Threshold derives the downsampling threshold from sample totals using
// Tukey's upper fence, Q3 + 1.5*(Q3 - Q1). Quartiles interpolate linearly
// between order statistics (see stats.Percentile), so a sample is flagged
// exactly when it would be drawn as an outlier point above a box plot of
// the cohort. A zero-IQR distribution yields threshold = Q3, which no total
// strictly exceeds unless the distribution is skewed above Q3; all totals
// equal is therefore a valid no-op, not an error.
func Threshold(totals []float64) float64 {
	return stats.UpperFence(totals, tukeyK)
}

// Run returns a new matrix in which every sample whose total burden
// strictly exceeds the threshold has its column multiplied by
// threshold/total and rounded half to even (math.RoundToEven); all other
// columns and the identifier labels are copied unchanged. The input matrix
// is never modified.
func Run(m *matrix.Matrix, opts Options) (*matrix.Matrix, *Result, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	res := &Result{Threshold: opts.Threshold}
	if opts.Threshold != 0 {
		if opts.Threshold < 0 || math.IsNaN(opts.Threshold) || math.IsInf(opts.Threshold, 0) {
			return nil, nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, opts.Threshold)
		}
	}

	totals := m.SampleTotals()
	if opts.Threshold == 0 {
		res.Threshold = Threshold(totals)
		res.Derived = true
	}

	out := m.Clone()
	for j, total := range totals {
		if total <= res.Threshold {
			continue
		}
		factor := res.Threshold / total // below 1 since total > threshold
		res.Outliers = append(res.Outliers, Outlier{
			Sample: m.Samples[j],
			Total:  total,
			Factor: factor,
		})
		for i := 0; i < m.Rows(); i++ {
			out.Set(i, j, math.RoundToEven(m.At(i, j)*factor))
		}
	}
	return out, res, nil
}
