package main

import (
	"github.com/spf13/cobra"

	"github.com/symtalha14/perfagg/internal/organize"
)

// organizeCmd moves per-service artifacts into service folders
var organizeCmd = &cobra.Command{
	Use:   "organize [base_dir]",
	Short: "Move per-service files of each test directory into service folders",
	Long: `Creates one folder per service in every test directory of base_dir and
moves run_<n>_<service>_*.json files into it, so that the resources command
can run on each service folder. base_dir defaults to the runner input
directory (test-results).`,
	Example: `  perfagg organize
  perfagg organize test-results`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOrganize,
}

// runOrganize executes the organize command.
func runOrganize(cmd *cobra.Command, args []string) error {
	base := cfg.Runner.InputDir
	if len(args) == 1 {
		base = args[0]
	}

	results, err := organize.Tree(base, cfg.Services, log)
	if err != nil {
		return err
	}

	printOrganizeResults(base, results)
	return nil
}
