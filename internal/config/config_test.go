package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.K6.Pattern != "results_*_run_*.json" {
		t.Errorf("K6.Pattern = %q, want results_*_run_*.json", cfg.K6.Pattern)
	}
	if cfg.K6.Output != "average_k6_metrics.json" {
		t.Errorf("K6.Output = %q, want average_k6_metrics.json", cfg.K6.Output)
	}
	if cfg.Logs.Pattern != "run_*_*_cloudwatch_logs.json" {
		t.Errorf("Logs.Pattern = %q, want run_*_*_cloudwatch_logs.json", cfg.Logs.Pattern)
	}
	if cfg.Logs.Output != "average_cloudwatch_logs_metrics.json" {
		t.Errorf("Logs.Output = %q, want average_cloudwatch_logs_metrics.json", cfg.Logs.Output)
	}
	if !reflect.DeepEqual(cfg.Services, []string{"order", "product", "user", "payment"}) {
		t.Errorf("Services = %v, want default services", cfg.Services)
	}
	if cfg.Runner.InputDir != "test-results" {
		t.Errorf("Runner.InputDir = %q, want test-results", cfg.Runner.InputDir)
	}
}

func TestDefault_ServicesNotShared(t *testing.T) {
	cfg := Default()
	cfg.Services[0] = "changed"

	if DefaultServices[0] != "order" {
		t.Errorf("DefaultServices modified through Config: %v", DefaultServices)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		content     string
		wantErr     error
		wantK6      Pipeline
		wantService []string
	}{
		{
			name:        "empty file keeps defaults",
			content:     "",
			wantK6:      Pipeline{Pattern: DefaultK6Pattern, Output: DefaultK6Output},
			wantService: DefaultServices,
		},
		{
			name: "partial override",
			content: `k6:
  output: k6_avg.json
services: [billing]
`,
			wantK6:      Pipeline{Pattern: DefaultK6Pattern, Output: "k6_avg.json"},
			wantService: []string{"billing"},
		},
		{
			name: "malformed pattern",
			content: `logs:
  pattern: "run_[*.json"
`,
			wantErr: ErrInvalidPattern,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, "config"+string(rune('a'+i))+".yml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			cfg, err := Load(path)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.K6 != tt.wantK6 {
				t.Errorf("K6 = %+v, want %+v", cfg.K6, tt.wantK6)
			}
			if !reflect.DeepEqual(cfg.Services, tt.wantService) {
				t.Errorf("Services = %v, want %v", cfg.Services, tt.wantService)
			}
		})
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("k6: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	if got := LogLevel(); got != DefaultLogLevel {
		t.Errorf("LogLevel() = %q, want %q", got, DefaultLogLevel)
	}

	t.Setenv("LOG_LEVEL", "debug")
	if got := LogLevel(); got != "debug" {
		t.Errorf("LogLevel() = %q, want debug", got)
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PERFAGG_TEST_VALUE=loaded\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	t.Setenv("PERFAGG_TEST_VALUE", "")
	os.Unsetenv("PERFAGG_TEST_VALUE")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv("PERFAGG_TEST_VALUE"); got != "loaded" {
		t.Errorf("PERFAGG_TEST_VALUE = %q, want loaded", got)
	}

	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("LoadEnv() with missing file error = %v, want nil", err)
	}
}
