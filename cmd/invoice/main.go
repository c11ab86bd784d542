package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/config"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/gcsuploader"
	infraBQ "github.com/jleandrocampos/nubank-analysis-invoice/internal/infra/bigquery"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/logger"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/notionsync"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/pipeline"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/report"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		runAnalyze(log)
	case "upload-report":
		runUploadReport(log)
	case "runs":
		runListRuns(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Nubank Invoice Analyzer")
	fmt.Println("\nUsage:")
	fmt.Println("  invoice <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  analyze        Analyze Nubank CSV exports and render the monthly report")
	fmt.Println("  upload-report  Upload a generated PDF report to GCS")
	fmt.Println("  runs           List recent analysis runs recorded in BigQuery")
	fmt.Println("  help           Show this help message")
	fmt.Println("\nRun 'invoice <command> -h' for more information on a command.")
}

func runAnalyze(log zerolog.Logger) {
	cfg := config.Load()

	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	inputDir := fs.String("input", cfg.InputDir, "Directory containing Nubank_*.csv exports")
	reportPath := fs.String("report", cfg.ReportPath, "Output path for the PDF report (empty to skip)")
	topN := fs.Int("top", cfg.TopN, "Number of top purchases per month")
	export := fs.Bool("export", cfg.ExportEnabled, "Record the run and transactions in BigQuery")
	upload := fs.Bool("upload", false, "Upload the PDF report to GCS")
	notion := fs.Bool("notion", false, "Publish month summaries to Notion")
	dryRun := fs.Bool("dry-run", false, "With -notion, log page changes without writing them")
	fs.Parse(os.Args[2:])

	cfg.InputDir = *inputDir
	cfg.ReportPath = *reportPath
	cfg.TopN = *topN
	cfg.ExportEnabled = *export

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if *upload && !cfg.UploadEnabled() {
		log.Fatal().Msg("Error: -upload requires GCS_REPORT_BUCKET")
	}
	if *upload && cfg.ReportPath == "" {
		log.Fatal().Msg("Error: -upload requires a report path")
	}
	if *notion && !cfg.NotionEnabled() {
		log.Fatal().Msg("Error: -notion requires NOTION_TOKEN and NOTION_DATABASE_ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	log.Info().
		Str("input_dir", cfg.InputDir).
		Str("report_path", cfg.ReportPath).
		Int("top_n", cfg.TopN).
		Msg("Starting analysis")

	var att pipeline.Attachments

	if cfg.ExportEnabled {
		exporter, err := pipeline.NewBigQueryExporter(ctx, cfg.BQProjectID, cfg.BQDataset)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create BigQuery exporter")
		}
		defer exporter.Close()
		att.Exporter = exporter
	}
	if *upload {
		att.Uploader = pipeline.NewGCSReportUploader(cfg.UploadBucket)
	}
	if *notion {
		client := notionsync.NewNotionClient(cfg.NotionToken)
		att.Publisher = pipeline.NewNotionPublisher(client, cfg.NotionDatabaseID, *dryRun)
	}

	var writer pipeline.ReportWriter
	if cfg.ReportPath != "" {
		writer = report.NewPDF()
	}

	p := pipeline.NewAnalysisPipeline(
		pipeline.NewCSVSource(),
		report.NewConsole(os.Stdout),
		writer,
		att,
	)

	state := &pipeline.PipelineState{
		InputDir:   cfg.InputDir,
		TopN:       cfg.TopN,
		ReportPath: cfg.ReportPath,
	}

	if err := p.Execute(ctx, state); err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	if state.ReportURI != "" {
		fmt.Printf("Report uploaded to %s\n", state.ReportURI)
	}
}

func runUploadReport(log zerolog.Logger) {
	cfg := config.Load()

	fs := flag.NewFlagSet("upload-report", flag.ExitOnError)
	bucketName := fs.String("bucket", cfg.UploadBucket, "GCS bucket name")
	filePath := fs.String("file", cfg.ReportPath, "Path to the PDF report")
	fs.Parse(os.Args[2:])

	if *bucketName == "" || *filePath == "" {
		log.Fatal().Msg("Usage: invoice upload-report -bucket NAME -file PATH")
	}

	ctx := context.Background()
	ctx = logger.WithContext(ctx, log)

	log.Info().
		Str("bucket", *bucketName).
		Str("file", *filePath).
		Msg("Uploading report to GCS")

	uri, err := gcsuploader.UploadReport(ctx, *bucketName, *filePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Upload failed")
	}

	fmt.Printf("Uploaded %s to %s\n", *filePath, uri)
}

func runListRuns(log zerolog.Logger) {
	cfg := config.Load()

	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	project := fs.String("project", cfg.BQProjectID, "BigQuery project ID")
	dataset := fs.String("dataset", cfg.BQDataset, "BigQuery dataset")
	limit := fs.Int("limit", 10, "Number of runs to show")
	fs.Parse(os.Args[2:])

	if *project == "" {
		log.Fatal().Msg("Error: -project or BQ_PROJECT_ID is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	runs, err := infraBQ.ListAnalysisRuns(ctx, *project, *dataset, *limit)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list analysis runs")
	}

	if len(runs) == 0 {
		fmt.Println("No analysis runs recorded.")
		return
	}

	for _, r := range runs {
		finished := "-"
		if r.FinishedTS.Valid {
			finished = r.FinishedTS.Timestamp.Format(time.RFC3339)
		}
		fmt.Printf("%s  %-8s  started=%s  finished=%s  files=%d\n",
			r.AnalysisRunID,
			r.Status,
			r.StartedTS.Format(time.RFC3339),
			finished,
			r.FileCount,
		)
	}
}
