package telemetry

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a distribution of scores.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for fewer than two values
	Min    float64
	Median float64
	P90    float64
	Max    float64
}

// Summarize computes a Summary. The input slice is not modified.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s := Summary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// SummarizeInts is Summarize for integer scores.
func SummarizeInts(values []int) Summary {
	f := make([]float64, len(values))
	for i, v := range values {
		f[i] = float64(v)
	}
	return Summarize(f)
}

// String formats the summary on one line.
func (s Summary) String() string {
	if s.Count == 0 {
		return "no runs"
	}
	return fmt.Sprintf("n=%d mean=%.1f sd=%.1f min=%.0f median=%.0f p90=%.0f max=%.0f",
		s.Count, s.Mean, s.StdDev, s.Min, s.Median, s.P90, s.Max)
}
