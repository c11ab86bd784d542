package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.InputDir != "." {
		t.Errorf("InputDir = %q, want %q", cfg.InputDir, ".")
	}
	if cfg.ReportPath != "resumo_financeiro.pdf" {
		t.Errorf("ReportPath = %q, want %q", cfg.ReportPath, "resumo_financeiro.pdf")
	}
	if cfg.TopN != 5 {
		t.Errorf("TopN = %d, want 5", cfg.TopN)
	}
	if cfg.ExportEnabled {
		t.Error("ExportEnabled should default to false")
	}
	if cfg.BQDataset != "nubank" {
		t.Errorf("BQDataset = %q, want %q", cfg.BQDataset, "nubank")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INPUT_DIR", "/data/statements")
	t.Setenv("TOP_N", "10")
	t.Setenv("BQ_EXPORT_ENABLED", "true")
	t.Setenv("BQ_PROJECT_ID", "my-project")

	cfg := Load()

	if cfg.InputDir != "/data/statements" {
		t.Errorf("InputDir = %q, want %q", cfg.InputDir, "/data/statements")
	}
	if cfg.TopN != 10 {
		t.Errorf("TopN = %d, want 10", cfg.TopN)
	}
	if !cfg.ExportEnabled {
		t.Error("ExportEnabled should be true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() returned unexpected error: %v", err)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("TOP_N", "not-a-number")
	t.Setenv("BQ_EXPORT_ENABLED", "maybe")

	cfg := Load()

	if cfg.TopN != 5 {
		t.Errorf("TopN = %d, want fallback 5", cfg.TopN)
	}
	if cfg.ExportEnabled {
		t.Error("ExportEnabled should fall back to false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty input dir",
			mutate:  func(c *Config) { c.InputDir = "" },
			wantErr: "input directory",
		},
		{
			name:    "report path without pdf extension",
			mutate:  func(c *Config) { c.ReportPath = "report.txt" },
			wantErr: "must end in .pdf",
		},
		{
			name:    "top-N below one",
			mutate:  func(c *Config) { c.TopN = 0 },
			wantErr: "top-N must be at least 1",
		},
		{
			name:    "export enabled without project",
			mutate:  func(c *Config) { c.ExportEnabled = true },
			wantErr: "BQ_PROJECT_ID is required",
		},
		{
			name:    "notion token without database",
			mutate:  func(c *Config) { c.NotionToken = "secret" },
			wantErr: "must be set together",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				InputDir:   ".",
				ReportPath: "out.pdf",
				TopN:       5,
				BQDataset:  "nubank",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestToggles(t *testing.T) {
	cfg := &Config{}
	if cfg.NotionEnabled() || cfg.UploadEnabled() {
		t.Error("empty config should have all optional sinks disabled")
	}

	cfg.NotionToken = "secret"
	cfg.NotionDatabaseID = "db"
	cfg.UploadBucket = "reports"
	if !cfg.NotionEnabled() {
		t.Error("NotionEnabled() = false with token and database set")
	}
	if !cfg.UploadEnabled() {
		t.Error("UploadEnabled() = false with bucket set")
	}
}
