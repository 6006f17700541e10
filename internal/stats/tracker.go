// Package stats provides utilities for summarizing latency samples
// and tracking the outcome of batch extraction steps.
package stats

import (
	"errors"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

// Percentile fractions reported for every latency summary.
const (
	P90 = 0.90
	P95 = 0.95
	P99 = 0.99
)

// ErrNoSamples is returned when a summary is requested from an empty tracker.
var ErrNoSamples = errors.New("no latency samples recorded")

// LatencySummary describes the distribution of one set of latency samples.
type LatencySummary struct {
	Count  int     // Number of samples
	Min    float64 // Smallest sample
	Max    float64 // Largest sample
	Avg    float64 // Arithmetic mean
	Median float64 // Middle value, or mean of the two middle values
	P90    float64 // Value at sorted index floor(0.90*Count)
	P95    float64 // Value at sorted index floor(0.95*Count)
	P99    float64 // Value at sorted index floor(0.99*Count)
}

// Tracker collects latency samples for a single operation category.
type Tracker struct {
	Latencies []float64 // Samples in the order they were recorded
}

// NewTracker creates a new latency tracker.
func NewTracker() *Tracker {
	return &Tracker{
		Latencies: make([]float64, 0),
	}
}

// Record adds a latency sample.
func (t *Tracker) Record(latency float64) {
	t.Latencies = append(t.Latencies, latency)
}

// Total returns the number of recorded samples.
func (t *Tracker) Total() int {
	return len(t.Latencies)
}

// Sorted returns an ascending copy of the recorded samples.
func (t *Tracker) Sorted() []float64 {
	sorted := make([]float64, len(t.Latencies))
	copy(sorted, t.Latencies)
	sort.Float64s(sorted)
	return sorted
}

// Summary computes count, min, max, mean, median and the p90/p95/p99
// percentiles of the recorded samples.
func (t *Tracker) Summary() (LatencySummary, error) {
	if len(t.Latencies) == 0 {
		return LatencySummary{}, ErrNoSamples
	}

	// Mean sums in ascending order so results are reproducible run to run.
	sorted := t.Sorted()
	data := mstats.Float64Data(sorted)

	minimum, err := data.Min()
	if err != nil {
		return LatencySummary{}, err
	}
	maximum, err := data.Max()
	if err != nil {
		return LatencySummary{}, err
	}
	mean, err := data.Mean()
	if err != nil {
		return LatencySummary{}, err
	}
	median, err := data.Median()
	if err != nil {
		return LatencySummary{}, err
	}

	return LatencySummary{
		Count:  len(sorted),
		Min:    minimum,
		Max:    maximum,
		Avg:    mean,
		Median: median,
		P90:    Percentile(sorted, P90),
		P95:    Percentile(sorted, P95),
		P99:    Percentile(sorted, P99),
	}, nil
}

// Percentile returns the value at index floor(fraction*len(sorted)) of an
// ascending slice. There is no interpolation between neighbours.
// For example, with ten samples P90 is the tenth (largest) value.
func Percentile(sorted []float64, fraction float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	index := int(fraction * float64(len(sorted)))

	// Only reachable for fraction >= 1
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	if index < 0 {
		index = 0
	}

	return sorted[index]
}
