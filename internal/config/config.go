// Package config loads runtime configuration from the environment, with
// optional .env support for local runs. CLI flags override these values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the analyzer reads from the environment.
type Config struct {
	// Input/output
	InputDir   string
	ReportPath string
	TopN       int

	// BigQuery export (optional)
	ExportEnabled bool
	BQProjectID   string
	BQDataset     string

	// GCS report upload (optional)
	UploadBucket string

	// Notion summary publishing (optional)
	NotionToken      string
	NotionDatabaseID string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present; a missing one is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		InputDir:   getEnv("INPUT_DIR", "."),
		ReportPath: getEnv("REPORT_PATH", "resumo_financeiro.pdf"),
		TopN:       getEnvInt("TOP_N", 5),

		ExportEnabled: getEnvBool("BQ_EXPORT_ENABLED", false),
		BQProjectID:   getEnv("BQ_PROJECT_ID", ""),
		BQDataset:     getEnv("BQ_DATASET", "nubank"),

		UploadBucket: getEnv("GCS_REPORT_BUCKET", ""),

		NotionToken:      getEnv("NOTION_TOKEN", ""),
		NotionDatabaseID: getEnv("NOTION_DATABASE_ID", ""),
	}
}

// Validate checks the configuration and returns an error describing every
// problem found.
func (c *Config) Validate() error {
	var problems []string

	if c.InputDir == "" {
		problems = append(problems, "input directory cannot be empty")
	}
	if c.ReportPath != "" && !strings.HasSuffix(c.ReportPath, ".pdf") {
		problems = append(problems, fmt.Sprintf("report path %q must end in .pdf", c.ReportPath))
	}
	if c.TopN < 1 {
		problems = append(problems, fmt.Sprintf("top-N must be at least 1, got %d", c.TopN))
	}
	if c.ExportEnabled && c.BQProjectID == "" {
		problems = append(problems, "BQ_PROJECT_ID is required when BigQuery export is enabled")
	}
	if c.ExportEnabled && c.BQDataset == "" {
		problems = append(problems, "BQ_DATASET cannot be empty when BigQuery export is enabled")
	}
	if (c.NotionToken == "") != (c.NotionDatabaseID == "") {
		problems = append(problems, "NOTION_TOKEN and NOTION_DATABASE_ID must be set together")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// NotionEnabled reports whether summary publishing is configured.
func (c *Config) NotionEnabled() bool {
	return c.NotionToken != "" && c.NotionDatabaseID != ""
}

// UploadEnabled reports whether report upload is configured.
func (c *Config) UploadEnabled() bool {
	return c.UploadBucket != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
