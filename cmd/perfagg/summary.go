package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/symtalha14/perfagg/internal/organize"
	"github.com/symtalha14/perfagg/internal/output"
	"github.com/symtalha14/perfagg/internal/pipeline"
	"github.com/symtalha14/perfagg/internal/stats"
)

// printPipelineResult shows what a single-folder command did.
func printPipelineResult(title string, result pipeline.Result) {
	fmt.Printf("\n📊 %s\n", output.Cyan(title))
	fmt.Printf("   Folder:     %s\n", result.Dir)
	fmt.Printf("   Matched:    %d files\n", result.Matched)
	fmt.Printf("   Processed:  %s\n", output.Green(fmt.Sprintf("%d", result.Processed)))

	if len(result.Skipped) > 0 {
		fmt.Printf("   Skipped:    %s (%s)\n",
			output.Yellow(fmt.Sprintf("%d", len(result.Skipped))),
			strings.Join(result.Skipped, ", "))
	}

	fmt.Println()
	if result.Written() {
		fmt.Printf("%s\n", output.Green(fmt.Sprintf("✓ Averages saved to %s", result.OutputPath)))
	} else {
		fmt.Printf("%s\n", output.Yellow("⚠️  Nothing to average, no file written"))
	}
}

// printOrganizeResults shows the files moved in each test directory.
func printOrganizeResults(base string, results []organize.Result) {
	fmt.Printf("\n📂 %s\n", output.Cyan(fmt.Sprintf("Organized %s", base)))
	fmt.Printf("%-30s %-7s %-7s %s\n", "DIRECTORY", "MOVED", "KEPT", "FAILED")
	fmt.Printf("%s\n", strings.Repeat("─", 55))

	moved, failed := 0, 0
	for _, result := range results {
		name := filepath.Base(result.Dir)
		if len(name) > 30 {
			name = name[:27] + "..."
		}

		failedStr := "-"
		if result.Failed > 0 {
			failedStr = output.Red(fmt.Sprintf("%d", result.Failed))
		}

		fmt.Printf("%-30s %-7d %-7d %s\n", name, result.Moved, result.Kept, failedStr)
		moved += result.Moved
		failed += result.Failed
	}

	fmt.Println()
	if failed == 0 {
		fmt.Printf("%s\n", output.Green(fmt.Sprintf("✓ %d file(s) moved", moved)))
	} else {
		fmt.Printf("%s\n", output.Red(fmt.Sprintf("✗ %d file(s) could not be moved", failed)))
	}
}

// printBatchSummary shows the step table and totals of a full run.
func printBatchSummary(summary *stats.BatchSummary, outputDir string) {
	fmt.Printf("\n%-25s %-20s %-10s %s\n", "TEST", "STEP", "TIME", "RESULT")
	fmt.Printf("%s\n", strings.Repeat("─", 75))

	for _, result := range summary.Results {
		name := result.TestDir
		if len(name) > 25 {
			name = name[:22] + "..."
		}

		var resultStr string
		switch {
		case result.Success:
			resultStr = output.Green("✓")
		case result.Skipped:
			resultStr = output.Yellow(fmt.Sprintf("- %s", result.Message))
		default:
			resultStr = output.Red(fmt.Sprintf("✗ %s", result.Message))
		}

		fmt.Printf("%-25s %-20s %-10s %s\n",
			name,
			result.Step,
			result.Duration.Round(time.Millisecond).String(),
			resultStr)
	}

	fmt.Printf("\n%s\n", strings.Repeat("─", 75))
	fmt.Printf("📊 Summary\n")
	fmt.Printf("   Total:        %d steps\n", summary.Total)

	successRate := summary.SuccessRate()
	var rateColor func(string) string
	if successRate == 100 {
		rateColor = output.Green
	} else if successRate >= 80 {
		rateColor = output.Yellow
	} else {
		rateColor = output.Red
	}

	fmt.Printf("   Successful:   %s (%.1f%%)\n",
		rateColor(fmt.Sprintf("%d", summary.Successful)),
		successRate)
	fmt.Printf("   Failed:       %s\n", output.Red(fmt.Sprintf("%d", summary.Failed)))
	fmt.Printf("   Skipped:      %s\n", output.Yellow(fmt.Sprintf("%d", summary.Skipped)))
	fmt.Printf("   Total Time:   %s\n", summary.TotalTime.Round(10*time.Millisecond))
	fmt.Printf("   Results:      %s\n", output.Blue(outputDir))

	fmt.Println()
	if summary.Failed == 0 {
		fmt.Printf("%s\n", output.Green("✓ All extractions completed!"))
	} else {
		fmt.Printf("%s\n", output.Red(fmt.Sprintf("✗ %d step(s) failed!", summary.Failed)))
	}
}
