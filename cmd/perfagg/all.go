package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/symtalha14/perfagg/internal/output"
	"github.com/symtalha14/perfagg/internal/runner"
)

// Run-all flags
var (
	inputDir  string // Directory holding the test directories
	outputDir string // Directory receiving the extracted metrics
	jsonOut   bool   // Print the step report as JSON instead of a table
)

// allCmd runs every extraction over a tree of test directories
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every extraction over all test directories",
	Long: `Finds the test directories (names containing ':') under the input
directory and runs the k6, logs and per-service resources extractions on each.
The averaged files are collected under the output directory, together with an
extraction_summary.json report.

A failing step does not stop the others; the command exits with status 1
when any step failed.`,
	Example: `  perfagg all
  perfagg all --input test-results --output extracted_metrics
  perfagg all -i runs/2024-06 -o out -v
  perfagg all --json > report.json`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	allCmd.Flags().StringVarP(
		&inputDir,
		"input",
		"i",
		"",
		"Directory holding the test directories (default test-results)",
	)

	allCmd.Flags().StringVarP(
		&outputDir,
		"output",
		"o",
		"",
		"Directory receiving the extracted metrics (default extracted_metrics)",
	)

	allCmd.Flags().BoolVar(
		&jsonOut,
		"json",
		false,
		"Print the step report as JSON (for CI/CD pipelines)",
	)
}

// runAll executes the all command.
func runAll(cmd *cobra.Command, args []string) error {
	if inputDir != "" {
		cfg.Runner.InputDir = inputDir
	}
	if outputDir != "" {
		cfg.Runner.OutputDir = outputDir
	}

	summary, err := runner.Run(cfg, log)
	if err != nil {
		return err
	}

	if jsonOut {
		report, err := output.FormatBatchResultJSON(summary)
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), report)
	} else {
		printBatchSummary(summary, cfg.Runner.OutputDir)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d extraction step(s) failed", summary.Failed)
	}
	return nil
}
