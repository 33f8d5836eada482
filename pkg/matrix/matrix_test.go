package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Valid(t *testing.T) {
	m, err := New(
		[]string{"A[C>A]A", "A[C>A]C"},
		[]string{"s1", "s2", "s3"},
		[]float64{1, 2, 3, 4, 5, 6},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 6.0, m.At(1, 2))
}

func TestNew_InvalidShape(t *testing.T) {
	_, err := New(nil, []string{"s1"}, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = New([]string{"r1"}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = New([]string{"r1"}, []string{"s1", "s2"}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestNew_InvalidCounts(t *testing.T) {
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := New([]string{"r1"}, []string{"s1", "s2"}, []float64{1, bad})
		assert.ErrorIs(t, err, ErrInvalidCounts)
	}
}

func TestSetAndClone(t *testing.T) {
	m, err := New([]string{"r1", "r2"}, []string{"s1", "s2"}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	c := m.Clone()
	c.Set(1, 1, 99)
	assert.Equal(t, 99.0, c.At(1, 1))
	// Clone must be independent of the original.
	assert.Equal(t, 4.0, m.At(1, 1))
	c.RowLabels[0] = "changed"
	assert.Equal(t, "r1", m.RowLabels[0])
}

func TestSampleTotals(t *testing.T) {
	m, err := New([]string{"r1", "r2", "r3"}, []string{"s1", "s2"},
		[]float64{
			1, 10,
			2, 20,
			3, 30,
		})
	require.NoError(t, err)

	assert.Equal(t, 6.0, m.SampleTotal(0))
	assert.Equal(t, 60.0, m.SampleTotal(1))
	assert.Equal(t, []float64{6, 60}, m.SampleTotals())
	assert.Equal(t, []float64{10, 20, 30}, m.Col(1))
}

func TestSBS96Contexts(t *testing.T) {
	ctxs := SBS96Contexts()
	require.Len(t, ctxs, 96)
	assert.Equal(t, "A[C>A]A", ctxs[0])
	assert.Equal(t, "A[C>A]C", ctxs[1])
	assert.Equal(t, "T[C>A]T", ctxs[15])
	assert.Equal(t, "A[C>G]A", ctxs[16])
	assert.Equal(t, "T[T>G]T", ctxs[95])

	seen := make(map[string]bool, 96)
	for _, c := range ctxs {
		assert.False(t, seen[c], "duplicate context %s", c)
		seen[c] = true
	}
}

func TestIsSBS96(t *testing.T) {
	ctxs := SBS96Contexts()
	counts := make([]float64, 96)
	m, err := New(ctxs, []string{"s1"}, counts)
	require.NoError(t, err)
	assert.True(t, IsSBS96(m))

	m.RowLabels[0] = "C[C>A]A"
	assert.False(t, IsSBS96(m))

	small, err := New([]string{"r1"}, []string{"s1"}, []float64{0})
	require.NoError(t, err)
	assert.False(t, IsSBS96(small))
}
