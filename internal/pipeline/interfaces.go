package pipeline

import (
	"context"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/statement"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/summary"
)

// StatementSource loads raw statement files from an input location.
type StatementSource interface {
	Load(ctx context.Context, dir string) ([]statement.SourceFile, error)
}

// SummaryRenderer writes the analysis result to an output surface.
type SummaryRenderer interface {
	Render(months []summary.MonthSummary, period summary.PeriodSummary) error
}

// ReportWriter renders the analysis result to a file on disk.
type ReportWriter interface {
	RenderFile(months []summary.MonthSummary, period summary.PeriodSummary, path string) error
}

// TransactionExporter records analysis runs and their classified transactions
// in an external warehouse. Implementations are optional pipeline attachments.
type TransactionExporter interface {
	// StartRun opens a new run record and returns its identifier.
	StartRun(ctx context.Context, inputDir string, fileCount int) (string, error)

	// ExportTransactions writes the run's classified transactions.
	ExportTransactions(ctx context.Context, runID string, txs []statement.Transaction) error

	// FinishRun closes the run record with its final counters.
	FinishRun(ctx context.Context, runID string, rowsRead, rowsDropped, monthCount int) error

	// FailRun marks the run record as failed. Errors are logged, not returned.
	FailRun(ctx context.Context, runID string, runErr error)
}

// ReportUploader pushes a generated report file to remote storage and returns
// its resulting URI.
type ReportUploader interface {
	UploadReport(ctx context.Context, reportPath string) (string, error)
}

// SummaryPublisher mirrors monthly summaries to an external tracker.
type SummaryPublisher interface {
	PublishMonths(ctx context.Context, months []summary.MonthSummary) error
}
