package main

import (
	"github.com/spf13/cobra"

	"github.com/symtalha14/perfagg/internal/pipeline"
)

// k6Cmd averages the k6 summaries of one folder
var k6Cmd = &cobra.Command{
	Use:   "k6 [folder]",
	Short: "Average the k6 summaries in a folder",
	Long: `Reads every results_*_run_*.json k6 summary in the folder and writes
the per-metric averages to average_k6_metrics.json in the same folder.

Files that cannot be read are skipped with a warning.`,
	Example: `  perfagg k6 test-results/rest:spike
  perfagg k6 test-results/grpc:load -v`,
	Args: cobra.ExactArgs(1),
	RunE: runK6,
}

// logsCmd averages the CloudWatch log exports of one folder
var logsCmd = &cobra.Command{
	Use:   "logs [folder]",
	Short: "Average serialize/deserialize latency from CloudWatch log exports",
	Long: `Reads every run_*_*_cloudwatch_logs.json export in the folder, computes
latency statistics per operation for each file and writes their averages to
average_cloudwatch_logs_metrics.json.

A message with a bad field count or a non-numeric latency, or a file without
any serialize or deserialize sample, stops the run without writing output.`,
	Example: `  perfagg logs test-results/rest:spike`,
	Args:    cobra.ExactArgs(1),
	RunE:    runLogs,
}

// resourcesCmd averages the CloudWatch resource dumps of one service folder
var resourcesCmd = &cobra.Command{
	Use:   "resources [folder]",
	Short: "Average CPU, memory and network maxima from CloudWatch dumps",
	Long: `Reads the *_cpu_metrics.json, *_memory_metrics.json and network byte
dumps in the folder and writes the average datapoint maximum of each kind to
average_cloudwatch_metrics.json.`,
	Example: `  perfagg resources test-results/rest:spike/order`,
	Args:    cobra.ExactArgs(1),
	RunE:    runResources,
}

// runK6 executes the k6 command.
func runK6(cmd *cobra.Command, args []string) error {
	result, err := pipeline.RunK6(args[0], cfg.K6, log)
	if err != nil {
		return err
	}

	printPipelineResult("k6 metrics", result)
	return nil
}

// runLogs executes the logs command.
func runLogs(cmd *cobra.Command, args []string) error {
	result, err := pipeline.RunLogs(args[0], cfg.Logs, log)
	if err != nil {
		return err
	}

	printPipelineResult("CloudWatch logs metrics", result)
	return nil
}

// runResources executes the resources command.
func runResources(cmd *cobra.Command, args []string) error {
	result, err := pipeline.RunResources(args[0], cfg.Resources, log)
	if err != nil {
		return err
	}

	printPipelineResult("CloudWatch resource metrics", result)
	return nil
}
