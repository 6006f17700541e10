package stats

import (
	"testing"
)

func TestBatchSummary_AddResult(t *testing.T) {
	summary := NewBatchSummary()

	summary.AddResult(StepResult{TestDir: "rest:spike", Step: "k6", Success: true})
	summary.AddResult(StepResult{TestDir: "rest:spike", Step: "logs", Message: "no valid latency data"})
	summary.AddResult(StepResult{TestDir: "rest:spike", Step: "resources:order", Skipped: true})

	if summary.Total != 3 {
		t.Errorf("Total = %d, want 3", summary.Total)
	}
	if summary.Successful != 1 {
		t.Errorf("Successful = %d, want 1", summary.Successful)
	}
	if summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", summary.Failed)
	}
	if summary.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", summary.Skipped)
	}
	if len(summary.Results) != 3 {
		t.Errorf("Results length = %d, want 3", len(summary.Results))
	}
}

func TestBatchSummary_SuccessRate(t *testing.T) {
	tests := []struct {
		name       string
		successful int
		failed     int
		skipped    int
		want       float64
	}{
		{"all successful", 4, 0, 0, 100.0},
		{"all failed", 0, 4, 0, 0.0},
		{"half and half", 2, 2, 0, 50.0},
		{"skipped steps are not counted", 1, 1, 6, 50.0},
		{"only skipped", 0, 0, 3, 0.0},
		{"empty", 0, 0, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := NewBatchSummary()

			for i := 0; i < tt.successful; i++ {
				summary.AddResult(StepResult{Success: true})
			}
			for i := 0; i < tt.failed; i++ {
				summary.AddResult(StepResult{})
			}
			for i := 0; i < tt.skipped; i++ {
				summary.AddResult(StepResult{Skipped: true})
			}

			got := summary.SuccessRate()
			if got != tt.want {
				t.Errorf("SuccessRate() = %v, want %v", got, tt.want)
			}
		})
	}
}
