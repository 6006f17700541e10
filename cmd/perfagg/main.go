// Perfagg averages the metrics exported by repeated load-test runs: k6
// summaries, CloudWatch log exports and CloudWatch resource dumps.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/symtalha14/perfagg/internal/config"
	"github.com/symtalha14/perfagg/internal/output"
)

// Version
var Version = "dev"

// Exit codes for CI/CD integration
const (
	ExitSuccess = 0 // Everything extracted
	ExitFailure = 1 // Bad arguments, bad folder, invalid log data or failed steps
	ExitError   = 2 // Configuration error
)

// Command-line flags
var (
	verbose    bool   // Enable debug logging
	configFile string // Path to YAML configuration file
	envFile    string // Path to .env file
)

// Shared state built by setup before any command runs.
var (
	cfg *config.Config
	log *logrus.Logger
)

// errConfig marks errors that map to ExitError.
var errConfig = errors.New("configuration error")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "perfagg",
	Short: "Average performance test metrics across runs",
	Long: `Perfagg reads the artifacts left by repeated performance test runs and
writes one averaged JSON file per folder.

Perfect for:
  • Averaging k6 summaries of several runs
  • Serialize and deserialize latency from CloudWatch log exports
  • CPU, memory and network maxima from CloudWatch metric dumps
  • Collecting a whole test-results tree in one go`,
	Example: `  perfagg k6 test-results/rest:spike
  perfagg logs test-results/rest:spike
  perfagg resources test-results/rest:spike/order
  perfagg organize test-results
  perfagg all --input test-results --output extracted_metrics`,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Version:           Version,
}

// versionCmd outputs the current perfagg version installed
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Perfagg",
	Long:  "Print the version number of Perfagg",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Perfagg version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(k6Cmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(allCmd)

	// Verbose flag: -v or --verbose
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Log every processed file (debug level)",
	)

	rootCmd.PersistentFlags().StringVarP(
		&configFile,
		"config",
		"c",
		"",
		"Path to YAML file overriding patterns, output names and services",
	)

	rootCmd.PersistentFlags().StringVar(
		&envFile,
		"env-file",
		"",
		"Path to .env file (default: ./.env when present)",
	)
}

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.Red(fmt.Sprintf("Error: %v", err)))
		os.Exit(exitCode(err))
	}
	os.Exit(ExitSuccess)
}

// setup loads the environment and configuration and builds the logger.
// Argument validation has already passed when it runs, so usage output
// is silenced for the errors that follow.
func setup(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	if err := config.LoadEnv(envFiles...); err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}

	log = newLogger(verbose)

	loaded, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}
	cfg = loaded

	log.WithField("config", configFile).Debug("Configuration loaded")
	return nil
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if errors.Is(err, errConfig) {
		return ExitError
	}
	return ExitFailure
}
