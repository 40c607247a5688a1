package metric

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "squared_euclidean", SquaredEuclidean.String())
		assert.Equal(t, "dot_product", DotProduct.String())
		assert.Equal(t, "cosine", Cosine.String())
		assert.Equal(t, "unknown(99)", Metric(99).String())
	})

	t.Run("Token", func(t *testing.T) {
		assert.Equal(t, "<->", SquaredEuclidean.Token())
		assert.Equal(t, "<#>", DotProduct.Token())
		assert.Equal(t, "<=>", Cosine.Token())
		assert.Empty(t, Metric(99).Token())
	})

	t.Run("Properties", func(t *testing.T) {
		for _, m := range All() {
			p := m.Properties()
			assert.True(t, p.Immutable, m.String())
			assert.True(t, p.ParallelSafe, m.String())
		}
		assert.Equal(t, Properties{}, Metric(99).Properties())
	})

	t.Run("HigherIsCloser", func(t *testing.T) {
		assert.False(t, SquaredEuclidean.HigherIsCloser())
		assert.True(t, DotProduct.HigherIsCloser())
		assert.True(t, Cosine.HigherIsCloser())
	})
}

func TestByToken(t *testing.T) {
	for _, m := range All() {
		got, ok := ByToken(m.Token())
		require.True(t, ok, m.String())
		assert.Equal(t, m, got)
	}
	_, ok := ByToken("<~>")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Metric
	}{
		{"<->", SquaredEuclidean},
		{" <#> ", DotProduct},
		{"<=>", Cosine},
		{"squared_euclidean", SquaredEuclidean},
		{"L2", SquaredEuclidean},
		{"dot", DotProduct},
		{"Inner_Product", DotProduct},
		{"COSINE", Cosine},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Parse("manhattan")
	var unsupported *UnsupportedMetricError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "manhattan", unsupported.Name)
}

func TestDistance(t *testing.T) {
	got, err := Distance(SquaredEuclidean, []float32{0, 1}, []float32{3, 2})
	require.NoError(t, err)
	assert.Equal(t, float32(10), got)

	got, err = Distance(DotProduct, []float32{5, 1}, []float32{1, 2})
	require.NoError(t, err)
	assert.Equal(t, float32(7), got)

	got, err = Distance(Cosine, []float32{4, 4}, []float32{2, 2})
	require.NoError(t, err)
	assert.InDelta(t, float32(1), got, 1e-6)

	_, err = Distance(Metric(42), []float32{1}, []float32{1})
	assert.Error(t, err)

	_, err = Distance(Cosine, []float32{1}, []float32{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
