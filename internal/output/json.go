// Package output provides utilities for formatted terminal output,
// including JSON serialization of averaged metrics and batch reports.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/symtalha14/perfagg/internal/stats"
)

// MarshalIndent renders v as JSON indented with two spaces.
func MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// WriteJSON writes v to path as indented JSON, replacing any existing file.
func WriteJSON(path string, v any) error {
	data, err := MarshalIndent(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// JSONBatchResult represents a batch summary in JSON format.
type JSONBatchResult struct {
	Total       int        `json:"total"`
	Successful  int        `json:"successful"`
	Failed      int        `json:"failed"`
	Skipped     int        `json:"skipped"`
	SuccessRate float64    `json:"success_rate"`
	TotalTime   int64      `json:"total_time_ms"`
	Results     []JSONStep `json:"results"`
}

// JSONStep represents a single step result in JSON format.
type JSONStep struct {
	TestDir  string `json:"test_directory"`
	Step     string `json:"step"`
	Output   string `json:"output,omitempty"`
	Success  bool   `json:"success"`
	Skipped  bool   `json:"skipped,omitempty"`
	Duration int64  `json:"duration_ms"`
	Error    string `json:"error,omitempty"`
}

// BatchResultJSON converts a batch summary to its JSON form.
func BatchResultJSON(summary *stats.BatchSummary) JSONBatchResult {
	jsonResult := JSONBatchResult{
		Total:       summary.Total,
		Successful:  summary.Successful,
		Failed:      summary.Failed,
		Skipped:     summary.Skipped,
		SuccessRate: summary.SuccessRate(),
		TotalTime:   summary.TotalTime.Milliseconds(),
		Results:     make([]JSONStep, len(summary.Results)),
	}

	for i, result := range summary.Results {
		step := JSONStep{
			TestDir:  result.TestDir,
			Step:     result.Step,
			Output:   result.Output,
			Success:  result.Success,
			Skipped:  result.Skipped,
			Duration: result.Duration.Milliseconds(),
		}

		if !result.Success && !result.Skipped {
			step.Error = result.Message
		}

		jsonResult.Results[i] = step
	}

	return jsonResult
}

// FormatBatchResultJSON converts a batch summary to an indented JSON string.
func FormatBatchResultJSON(summary *stats.BatchSummary) (string, error) {
	data, err := MarshalIndent(BatchResultJSON(summary))
	if err != nil {
		return "", err
	}

	return string(data), nil
}
