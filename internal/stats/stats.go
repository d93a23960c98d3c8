// =============================================================================
// Dataset Report Tools - Descriptive Statistics Module
// =============================================================================

// Package stats computes descriptive statistics (mean, median, mode,
// population variance and standard deviation) over validated numeric data.
package stats

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Summary holds the descriptive statistics of one dataset.
type Summary struct {
	Count    int
	Mean     float64
	Median   float64
	Variance float64 // population variance: divisor N, not N-1
	StdDev   float64
	Modes    []float64 // nil when every value is unique ("no mode")
}

// Describe computes the full summary for values. An empty input returns a
// zero Summary with Count 0; callers report "no data" for that case.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean := Mean(values)
	variance := PopulationVariance(values, mean)

	return Summary{
		Count:    len(values),
		Mean:     mean,
		Median:   Median(sorted),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Modes:    Modes(sorted),
	}
}

// Mean returns the arithmetic mean of values. values must be non-empty.
func Mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// Median returns the median of an ascending-sorted, non-empty slice: the
// midpoint for odd lengths, the average of the two middle elements otherwise.
func Median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2.0
}

// Modes returns the value(s) tied for the highest frequency in an
// ascending-sorted slice, found in a single pass comparing each element to
// its predecessor. When the maximum run length is 1 (every value unique) the
// result is nil: no mode.
func Modes(sorted []float64) []float64 {
	if len(sorted) == 0 {
		return nil
	}

	maxRun := 1
	run := 1
	var modes []float64

	flush := func(value float64) {
		if run > maxRun {
			maxRun = run
			modes = []float64{value}
		} else if run == maxRun && run > 1 {
			modes = append(modes, value)
		}
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
			continue
		}
		flush(sorted[i-1])
		run = 1
	}
	flush(sorted[len(sorted)-1])

	if maxRun == 1 {
		return nil
	}
	return modes
}

// PopulationVariance returns the mean of squared deviations from mean,
// dividing by N. values must be non-empty.
func PopulationVariance(values []float64, mean float64) float64 {
	total := 0.0
	for _, v := range values {
		diff := v - mean
		total += diff * diff
	}
	return total / float64(len(values))
}

// FormatModes renders modes for reports: "No mode" for nil, otherwise the
// values joined with ", " at full default precision.
func FormatModes(modes []float64) string {
	if modes == nil {
		return "No mode"
	}
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = strconv.FormatFloat(m, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
