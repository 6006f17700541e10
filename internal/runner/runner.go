// Package runner runs every extraction pipeline over a tree of test
// directories and collects the averaged files into one output tree.
package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/symtalha14/perfagg/internal/config"
	"github.com/symtalha14/perfagg/internal/locate"
	"github.com/symtalha14/perfagg/internal/output"
	"github.com/symtalha14/perfagg/internal/pipeline"
	"github.com/symtalha14/perfagg/internal/stats"
)

// Step names recorded in the batch summary.
const (
	StepK6        = "k6"
	StepLogs      = "logs"
	StepResources = "resources"
)

// ErrNoTestDirs is returned when the input directory holds no test directory.
var ErrNoTestDirs = errors.New("no test directories found")

// Report is the summary document written next to the extracted metrics.
type Report struct {
	Extraction ExtractionSummary `json:"extraction_summary"`
	Structure  ResultsStructure  `json:"results_structure"`
}

// ExtractionSummary lists what was processed and how each step went.
type ExtractionSummary struct {
	TotalTestDirectories int                    `json:"total_test_directories"`
	TestDirectories      []string               `json:"test_directories"`
	OutputLocation       string                 `json:"output_location"`
	Steps                output.JSONBatchResult `json:"steps"`
}

// ResultsStructure describes the files found in every test directory of
// the output tree.
type ResultsStructure struct {
	Description           string                                 `json:"description"`
	FilesPerTestDirectory *orderedmap.OrderedMap[string, string] `json:"files_per_test_directory"`
}

type runner struct {
	cfg     *config.Config
	log     logrus.FieldLogger
	summary *stats.BatchSummary
}

// Run extracts the metrics of every test directory under
// cfg.Runner.InputDir into cfg.Runner.OutputDir, then writes the summary
// report. A failing step is recorded in the returned summary and does not
// stop the others; only setup and report errors are returned.
func Run(cfg *config.Config, log logrus.FieldLogger) (*stats.BatchSummary, error) {
	start := time.Now()
	in, out := cfg.Runner.InputDir, cfg.Runner.OutputDir

	if err := locate.RequireDir(in); err != nil {
		return nil, err
	}

	testDirs, err := locate.SubDirs(in, cfg.Runner.TestDirMarker)
	if err != nil {
		return nil, err
	}
	if len(testDirs) == 0 {
		return nil, fmt.Errorf("%w in '%s'", ErrNoTestDirs, in)
	}

	log.WithFields(logrus.Fields{
		"input":  in,
		"output": out,
	}).Infof("Found %d test directories", len(testDirs))

	if err := createStructure(out, testDirs, cfg.Services); err != nil {
		return nil, err
	}

	r := &runner{cfg: cfg, log: log, summary: stats.NewBatchSummary()}
	for _, testDir := range testDirs {
		r.process(testDir)
	}
	r.summary.TotalTime = time.Since(start)

	reportPath := filepath.Join(out, cfg.Runner.SummaryName)
	if err := output.WriteJSON(reportPath, r.report(testDirs)); err != nil {
		return r.summary, err
	}
	log.WithField("path", reportPath).Info("Summary report saved")

	return r.summary, nil
}

// createStructure creates out/<test>/<service> for every test directory.
func createStructure(out string, testDirs, services []string) error {
	for _, testDir := range testDirs {
		for _, service := range services {
			path := filepath.Join(out, testDir, service)
			if err := os.MkdirAll(path, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
		}
	}
	return nil
}

// process runs the k6, logs and per-service resources steps of one test
// directory.
func (r *runner) process(testDir string) {
	in := filepath.Join(r.cfg.Runner.InputDir, testDir)
	out := filepath.Join(r.cfg.Runner.OutputDir, testDir)
	log := r.log.WithField("test", testDir)

	log.Info("Processing test directory")

	r.step(testDir, StepK6, filepath.Join(out, r.cfg.Runner.K6Name), func() (pipeline.Result, error) {
		return pipeline.RunK6(in, r.cfg.K6, log)
	})

	r.step(testDir, StepLogs, filepath.Join(out, r.cfg.Runner.LogsName), func() (pipeline.Result, error) {
		return pipeline.RunLogs(in, r.cfg.Logs, log)
	})

	for _, service := range r.cfg.Services {
		name := StepResources + ":" + service
		serviceIn := filepath.Join(in, service)

		if !locate.IsDir(serviceIn) {
			log.WithField("service", service).Warn("Service directory not found")
			r.summary.AddResult(stats.StepResult{
				TestDir: testDir,
				Step:    name,
				Skipped: true,
				Message: "service directory not found",
			})
			continue
		}

		serviceLog := log.WithField("service", service)
		r.step(testDir, name, filepath.Join(out, service, r.cfg.Runner.ResourcesName), func() (pipeline.Result, error) {
			return pipeline.RunResources(serviceIn, r.cfg.Resources, serviceLog)
		})
	}
}

// step runs one pipeline and copies its output file to dest.
func (r *runner) step(testDir, name, dest string, run func() (pipeline.Result, error)) {
	start := time.Now()
	result := stats.StepResult{TestDir: testDir, Step: name}
	log := r.log.WithFields(logrus.Fields{"test": testDir, "step": name})

	res, err := run()
	switch {
	case err != nil:
		result.Message = err.Error()
		log.WithError(err).Error("Extraction failed")
	case !res.Written():
		result.Skipped = true
		result.Message = "no output produced"
		log.Warn("Output file not found")
	default:
		if err := copyFile(res.OutputPath, dest); err != nil {
			result.Message = err.Error()
			log.WithError(err).Error("Failed to copy output")
			break
		}
		result.Success = true
		result.Output = dest
		log.WithField("path", dest).Info("Metrics saved")
	}

	result.Duration = time.Since(start)
	r.summary.AddResult(result)
}

func (r *runner) report(testDirs []string) Report {
	files := orderedmap.New[string, string]()
	files.Set(r.cfg.Runner.K6Name, "k6 performance test results")
	files.Set(r.cfg.Runner.LogsName, "CloudWatch logs latency metrics")
	for _, service := range r.cfg.Services {
		files.Set(
			service+"/"+r.cfg.Runner.ResourcesName,
			fmt.Sprintf("%s service infrastructure metrics", service),
		)
	}

	return Report{
		Extraction: ExtractionSummary{
			TotalTestDirectories: len(testDirs),
			TestDirectories:      testDirs,
			OutputLocation:       r.cfg.Runner.OutputDir,
			Steps:                output.BatchResultJSON(r.summary),
		},
		Structure: ResultsStructure{
			Description:           "Each test directory contains the averaged metrics of every extraction step",
			FilesPerTestDirectory: files,
		},
	}
}

// copyFile copies src to dst, replacing dst.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}
