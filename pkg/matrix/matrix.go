package matrix

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidShape reports a matrix without at least one mutation-type
	// row and one sample column, or a count slice whose length disagrees
	// with the declared shape.
	ErrInvalidShape = errors.New("matrix: invalid shape")
	// ErrInvalidCounts reports a negative or non-finite count value.
	ErrInvalidCounts = errors.New("matrix: invalid counts")
)

// Matrix is a labeled mutation-count matrix: one row per mutation type, one
// column per sample. The identifier column travels as RowLabels, separate
// from the numeric block, so positional conventions never leak into the
// counts. Counts are stored row-major.
type Matrix struct {
	RowLabels []string
	Samples   []string
	Counts    []float64
}

// New builds a Matrix and validates it: at least one row and one sample
// column, counts sized rows*cols, every count finite and non-negative.
// The label and count slices are retained, not copied.
func New(rowLabels, samples []string, counts []float64) (*Matrix, error) {
	m := &Matrix{RowLabels: rowLabels, Samples: samples, Counts: counts}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate re-checks the construction invariants, so a hand-assembled
// Matrix gets the same guarantees as one built via New.
func (m *Matrix) Validate() error {
	r, c := len(m.RowLabels), len(m.Samples)
	if r == 0 || c == 0 {
		return fmt.Errorf("%w: %d rows, %d sample columns", ErrInvalidShape, r, c)
	}
	if len(m.Counts) != r*c {
		return fmt.Errorf("%w: %d counts for %dx%d matrix", ErrInvalidShape, len(m.Counts), r, c)
	}
	for k, v := range m.Counts {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: value %v for %q in sample %q",
				ErrInvalidCounts, v, m.RowLabels[k/c], m.Samples[k%c])
		}
	}
	return nil
}

// Rows returns the number of mutation-type rows.
func (m *Matrix) Rows() int { return len(m.RowLabels) }

// Cols returns the number of sample columns.
func (m *Matrix) Cols() int { return len(m.Samples) }

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 { return m.Counts[i*len(m.Samples)+j] }

// Set sets element (i, j).
func (m *Matrix) Set(i, j int, v float64) { m.Counts[i*len(m.Samples)+j] = v }

// Clone deep-copies the Matrix, labels included.
func (m *Matrix) Clone() *Matrix {
	n := &Matrix{
		RowLabels: make([]string, len(m.RowLabels)),
		Samples:   make([]string, len(m.Samples)),
		Counts:    make([]float64, len(m.Counts)),
	}
	copy(n.RowLabels, m.RowLabels)
	copy(n.Samples, m.Samples)
	copy(n.Counts, m.Counts)
	return n
}

// Col returns a copy of sample column j.
func (m *Matrix) Col(j int) []float64 {
	v := make([]float64, m.Rows())
	for i := range v {
		v[i] = m.At(i, j)
	}
	return v
}

// SampleTotal returns the total mutation burden of sample column j.
func (m *Matrix) SampleTotal(j int) float64 {
	s := 0.0
	for i := 0; i < m.Rows(); i++ {
		s += m.At(i, j)
	}
	return s
}

// SampleTotals returns the total mutation burden of every sample, in column
// order. Totals are always recomputed from the counts, never cached.
func (m *Matrix) SampleTotals() []float64 {
	totals := make([]float64, m.Cols())
	for j := range totals {
		totals[j] = m.SampleTotal(j)
	}
	return totals
}
