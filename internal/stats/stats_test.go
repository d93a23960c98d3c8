package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		count    int
		mean     float64
		median   float64
		variance float64
		modes    []float64
	}{
		{
			name:     "single element",
			values:   []float64{42.5},
			count:    1,
			mean:     42.5,
			median:   42.5,
			variance: 0,
			modes:    nil,
		},
		{
			name:     "all values equal",
			values:   []float64{3, 3, 3, 3},
			count:    4,
			mean:     3,
			median:   3,
			variance: 0,
			modes:    []float64{3},
		},
		{
			name:     "odd length median",
			values:   []float64{5, 1, 3},
			count:    3,
			mean:     3,
			median:   3,
			variance: 8.0 / 3.0,
			modes:    nil,
		},
		{
			name:     "even length median averages middles",
			values:   []float64{4, 1, 3, 2},
			count:    4,
			mean:     2.5,
			median:   2.5,
			variance: 1.25,
			modes:    nil,
		},
		{
			name:     "two modes tied at max frequency",
			values:   []float64{1, 1, 2, 2, 3},
			count:    5,
			mean:     1.8,
			median:   2,
			variance: 0.56,
			modes:    []float64{1, 2},
		},
		{
			name:     "negative values",
			values:   []float64{-2, -2, 0, 2},
			count:    4,
			mean:     -0.5,
			median:   -1,
			variance: 2.75,
			modes:    []float64{-2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Describe(tt.values)
			assert.Equal(t, tt.count, s.Count)
			assert.InDelta(t, tt.mean, s.Mean, 1e-12)
			assert.InDelta(t, tt.median, s.Median, 1e-12)
			assert.InDelta(t, tt.variance, s.Variance, 1e-12)
			assert.InDelta(t, math.Sqrt(tt.variance), s.StdDev, 1e-12)
			assert.Equal(t, tt.modes, s.Modes)
		})
	}
}

func TestDescribeEmpty(t *testing.T) {
	s := Describe(nil)
	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.Modes)
}

func TestDescribeDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Describe(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestModes(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		want   []float64
	}{
		{"empty", nil, nil},
		{"all distinct is no mode", []float64{1, 2, 3}, nil},
		{"single run at end", []float64{1, 2, 3, 3}, []float64{3}},
		{"single run at start", []float64{1, 1, 2, 3}, []float64{1}},
		{"longer run wins", []float64{1, 1, 2, 2, 2}, []float64{2}},
		{"ties at max frequency", []float64{1, 1, 2, 2, 3}, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Modes(tt.sorted))
		})
	}
}

func TestFormatModes(t *testing.T) {
	assert.Equal(t, "No mode", FormatModes(nil))
	assert.Equal(t, "2.5", FormatModes([]float64{2.5}))
	assert.Equal(t, "1, 2", FormatModes([]float64{1, 2}))
}

func TestPopulationVarianceUsesDivisorN(t *testing.T) {
	// Sample variance of {1,2,3,4} would be 5/3; population variance is 1.25.
	values := []float64{1, 2, 3, 4}
	mean := Mean(values)
	require.InDelta(t, 2.5, mean, 1e-12)
	assert.InDelta(t, 1.25, PopulationVariance(values, mean), 1e-12)
}
