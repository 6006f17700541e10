package runner

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symtalha14/perfagg/internal/config"
)

const (
	k6Summary = `{"metrics": {"vus_max": {"values": {"value": 10}}}}`
	goodLogs  = `{"events": [{"message": "\"r1\",\"grpc\",\"serialize\",\"ep1\",\"1000\",\"12\""}]}`
	badLogs   = `{"events": [{"message": "r1,grpc"}]}`
	cpuDump   = `{"Datapoints": [{"Maximum": 40}, {"Maximum": 60}]}`
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()

	cfg := config.Default()
	cfg.Runner.InputDir = filepath.Join(root, "test-results")
	cfg.Runner.OutputDir = filepath.Join(root, "extracted_metrics")
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	in, out := cfg.Runner.InputDir, cfg.Runner.OutputDir

	writeFile(t, filepath.Join(in, "rest:spike", "results_rest:spike_run_1.json"), k6Summary)
	writeFile(t, filepath.Join(in, "rest:spike", "run_1_order_cloudwatch_logs.json"), goodLogs)
	writeFile(t, filepath.Join(in, "rest:spike", "order", "run_1_order_cpu_metrics.json"), cpuDump)

	writeFile(t, filepath.Join(in, "grpc:load", "results_grpc:load_run_1.json"), k6Summary)
	writeFile(t, filepath.Join(in, "grpc:load", "run_1_user_cloudwatch_logs.json"), badLogs)

	writeFile(t, filepath.Join(in, "notes", "results_notes_run_1.json"), k6Summary)

	log, _ := logtest.NewNullLogger()
	summary, err := Run(cfg, log)
	require.NoError(t, err)

	// 2 test directories, 6 steps each
	assert.Equal(t, 12, summary.Total)
	assert.Equal(t, 4, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 7, summary.Skipped)

	assert.FileExists(t, filepath.Join(out, "rest:spike", "k6_metrics.json"))
	assert.FileExists(t, filepath.Join(out, "rest:spike", "cloudwatch_logs_metrics.json"))
	assert.FileExists(t, filepath.Join(out, "rest:spike", "order", "cloudwatch_metrics.json"))
	assert.FileExists(t, filepath.Join(out, "grpc:load", "k6_metrics.json"))
	assert.NoFileExists(t, filepath.Join(out, "grpc:load", "cloudwatch_logs_metrics.json"))
	assert.DirExists(t, filepath.Join(out, "grpc:load", "payment"))
	assert.NoDirExists(t, filepath.Join(out, "notes"))

	copied, err := os.ReadFile(filepath.Join(out, "rest:spike", "k6_metrics.json"))
	require.NoError(t, err)
	original, err := os.ReadFile(filepath.Join(in, "rest:spike", "average_k6_metrics.json"))
	require.NoError(t, err)
	assert.Equal(t, original, copied)

	var failed []string
	for _, result := range summary.Results {
		if !result.Success && !result.Skipped {
			failed = append(failed, result.TestDir+"/"+result.Step)
		}
	}
	assert.Equal(t, []string{"grpc:load/logs"}, failed)
}

func TestRun_Report(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, filepath.Join(cfg.Runner.InputDir, "rest:spike", "results_rest:spike_run_1.json"), k6Summary)

	log, _ := logtest.NewNullLogger()
	_, err := Run(cfg, log)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.Runner.OutputDir, "extraction_summary.json"))
	require.NoError(t, err)

	var report struct {
		Extraction struct {
			TotalTestDirectories int      `json:"total_test_directories"`
			TestDirectories      []string `json:"test_directories"`
			OutputLocation       string   `json:"output_location"`
			Steps                struct {
				Total      int `json:"total"`
				Successful int `json:"successful"`
			} `json:"steps"`
		} `json:"extraction_summary"`
		Structure struct {
			Files map[string]string `json:"files_per_test_directory"`
		} `json:"results_structure"`
	}
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, 1, report.Extraction.TotalTestDirectories)
	assert.Equal(t, []string{"rest:spike"}, report.Extraction.TestDirectories)
	assert.Equal(t, cfg.Runner.OutputDir, report.Extraction.OutputLocation)
	assert.Equal(t, 6, report.Extraction.Steps.Total)
	assert.Equal(t, 1, report.Extraction.Steps.Successful)
	assert.Len(t, report.Structure.Files, 6)
	assert.Contains(t, report.Structure.Files, "payment/cloudwatch_metrics.json")
}

func TestRun_MissingInput(t *testing.T) {
	cfg := testConfig(t)

	log, _ := logtest.NewNullLogger()
	_, err := Run(cfg, log)
	assert.Error(t, err)
}

func TestRun_NoTestDirs(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Runner.InputDir, "notes"), 0755))

	log, _ := logtest.NewNullLogger()
	_, err := Run(cfg, log)
	assert.ErrorIs(t, err, ErrNoTestDirs)
}
