package stats

import (
	"time"
)

// StepResult represents the outcome of one extraction step in a batch run.
type StepResult struct {
	TestDir  string        // Test directory the step ran against
	Step     string        // Step name (k6, logs, resources:<service>)
	Output   string        // Path of the copied output file, if any
	Success  bool          // Whether the step completed and produced output
	Skipped  bool          // Step had nothing to process
	Message  string        // Optional message (e.g., error text)
	Duration time.Duration // Time spent on the step
}

// BatchSummary aggregates step results from a batch extraction run.
type BatchSummary struct {
	Total      int           // Total steps run
	Successful int           // Steps that produced output
	Failed     int           // Steps that returned an error
	Skipped    int           // Steps with nothing to process
	TotalTime  time.Duration // Wall time for the whole batch
	Results    []StepResult  // Individual results
}

// NewBatchSummary creates a new batch summary.
func NewBatchSummary() *BatchSummary {
	return &BatchSummary{
		Results: make([]StepResult, 0),
	}
}

// AddResult adds a result to the summary and updates the counters.
func (bs *BatchSummary) AddResult(result StepResult) {
	bs.Results = append(bs.Results, result)
	bs.Total++

	switch {
	case result.Success:
		bs.Successful++
	case result.Skipped:
		bs.Skipped++
	default:
		bs.Failed++
	}
}

// SuccessRate returns the share of non-skipped steps that succeeded,
// as a percentage.
func (bs *BatchSummary) SuccessRate() float64 {
	attempted := bs.Total - bs.Skipped
	if attempted == 0 {
		return 0
	}
	return float64(bs.Successful) / float64(attempted) * 100
}
