package pipeline

import (
	"context"
	"fmt"
	"time"

	bigquerylib "cloud.google.com/go/bigquery"
	"github.com/google/uuid"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/csvimport"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/gcsuploader"
	infra "github.com/jleandrocampos/nubank-analysis-invoice/internal/infra/bigquery"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/logger"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/notionsync"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/statement"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/summary"
)

// CSVSource loads Nubank CSV exports from a local directory.
type CSVSource struct{}

// NewCSVSource creates a new CSVSource.
func NewCSVSource() *CSVSource {
	return &CSVSource{}
}

// Load delegates to the csvimport reader, pulling the logger from the context.
func (s *CSVSource) Load(ctx context.Context, dir string) ([]statement.SourceFile, error) {
	return csvimport.LoadDir(logger.FromContext(ctx), dir)
}

// BigQueryExporter records analysis runs and transactions in BigQuery.
type BigQueryExporter struct {
	client  *bigquerylib.Client
	dataset string
}

// NewBigQueryExporter creates an exporter backed by a fresh BigQuery client.
// Close must be called when the run finishes.
func NewBigQueryExporter(ctx context.Context, projectID, dataset string) (*BigQueryExporter, error) {
	client, err := bigquerylib.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("NewBigQueryExporter: bigquery client: %w", err)
	}
	return &BigQueryExporter{client: client, dataset: dataset}, nil
}

// Close releases the underlying BigQuery client.
func (e *BigQueryExporter) Close() error {
	return e.client.Close()
}

// StartRun opens an analysis_runs row with status=RUNNING.
func (e *BigQueryExporter) StartRun(ctx context.Context, inputDir string, fileCount int) (string, error) {
	return infra.StartAnalysisRunWithClient(ctx, e.client, e.dataset, inputDir, fileCount)
}

// ExportTransactions inserts one row per classified transaction.
func (e *BigQueryExporter) ExportTransactions(ctx context.Context, runID string, txs []statement.Transaction) error {
	now := time.Now()
	rows := make([]*infra.TransactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, infra.NewTransactionRow(tx, runID, uuid.NewString(), now))
	}
	return infra.InsertTransactionsWithClient(ctx, e.client, e.dataset, rows)
}

// FinishRun closes the analysis_runs row with status=SUCCESS.
func (e *BigQueryExporter) FinishRun(ctx context.Context, runID string, rowsRead, rowsDropped, monthCount int) error {
	return infra.MarkAnalysisRunSucceeded(ctx, e.client, e.dataset, runID, infra.RunStats{
		RowsRead:    rowsRead,
		RowsDropped: rowsDropped,
		MonthCount:  monthCount,
	})
}

// FailRun marks the analysis_runs row as FAILED.
func (e *BigQueryExporter) FailRun(ctx context.Context, runID string, runErr error) {
	infra.MarkAnalysisRunFailed(ctx, e.client, e.dataset, runID, runErr)
}

// GCSReportUploader pushes the generated PDF to a GCS bucket.
type GCSReportUploader struct {
	bucket string
}

// NewGCSReportUploader creates an uploader targeting the given bucket.
func NewGCSReportUploader(bucket string) *GCSReportUploader {
	return &GCSReportUploader{bucket: bucket}
}

// UploadReport delegates to the gcsuploader package.
func (u *GCSReportUploader) UploadReport(ctx context.Context, reportPath string) (string, error) {
	return gcsuploader.UploadReport(ctx, u.bucket, reportPath)
}

// NotionPublisher mirrors month summaries to a Notion database.
type NotionPublisher struct {
	service    notionsync.NotionService
	databaseID string
	dryRun     bool
}

// NewNotionPublisher creates a publisher over the given Notion service.
func NewNotionPublisher(service notionsync.NotionService, databaseID string, dryRun bool) *NotionPublisher {
	return &NotionPublisher{service: service, databaseID: databaseID, dryRun: dryRun}
}

// PublishMonths delegates to the notionsync package.
func (p *NotionPublisher) PublishMonths(ctx context.Context, months []summary.MonthSummary) error {
	return notionsync.SyncMonthSummaries(ctx, p.service, p.databaseID, months, p.dryRun)
}
