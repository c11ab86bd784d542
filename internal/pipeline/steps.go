// Package pipeline wires the analysis stages into an ordered run:
// load CSV statements, normalize rows, classify, aggregate, render,
// then feed any attached export sinks.
package pipeline

import (
	"context"
	"fmt"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/classify"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/logger"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/statement"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/summary"
)

// PipelineStep represents a single step in the analysis pipeline.
type PipelineStep interface {
	Execute(ctx context.Context, state *PipelineState) error
}

// PipelineState holds the shared state across all pipeline steps.
type PipelineState struct {
	InputDir   string
	TopN       int
	ReportPath string

	Sources     []statement.SourceFile
	RowsRead    int
	RowsDropped int

	Transactions []statement.Transaction

	Months []summary.MonthSummary
	Period summary.PeriodSummary

	RunID     string
	ReportURI string
}

// LoadStatementsStep loads the input CSV files.
type LoadStatementsStep struct {
	Source StatementSource
}

func (s *LoadStatementsStep) Execute(ctx context.Context, state *PipelineState) error {
	sources, err := s.Source.Load(ctx, state.InputDir)
	if err != nil {
		return err
	}
	state.Sources = sources
	return nil
}

// NormalizeStep turns raw CSV rows into dated transactions.
type NormalizeStep struct{}

func (s *NormalizeStep) Execute(ctx context.Context, state *PipelineState) error {
	log := logger.FromContext(ctx)

	result := statement.Normalize(state.Sources)
	state.Transactions = result.Transactions
	state.RowsRead = result.RowsRead
	state.RowsDropped = result.RowsDropped

	log.Info().
		Int("rows_read", result.RowsRead).
		Int("rows_dropped", result.RowsDropped).
		Int("transactions", len(result.Transactions)).
		Msg("Normalized statement rows")

	return nil
}

// ClassifyStep assigns a type, category and installment marker to every transaction.
type ClassifyStep struct {
	Classifier *classify.Classifier
}

func (s *ClassifyStep) Execute(ctx context.Context, state *PipelineState) error {
	s.Classifier.Apply(state.Transactions)
	return nil
}

// AggregateStep computes per-month and whole-period summaries.
type AggregateStep struct{}

func (s *AggregateStep) Execute(ctx context.Context, state *PipelineState) error {
	months, period, err := summary.Aggregate(state.Transactions, state.TopN)
	if err != nil {
		return err
	}
	state.Months = months
	state.Period = period
	return nil
}

// RenderConsoleStep prints the month-by-month report to the console.
type RenderConsoleStep struct {
	Renderer SummaryRenderer
}

func (s *RenderConsoleStep) Execute(ctx context.Context, state *PipelineState) error {
	return s.Renderer.Render(state.Months, state.Period)
}

// RenderReportStep writes the PDF report to disk.
type RenderReportStep struct {
	Writer ReportWriter
}

func (s *RenderReportStep) Execute(ctx context.Context, state *PipelineState) error {
	log := logger.FromContext(ctx)

	if err := s.Writer.RenderFile(state.Months, state.Period, state.ReportPath); err != nil {
		return err
	}

	log.Info().Str("path", state.ReportPath).Msg("PDF report written")
	return nil
}

// ExportTransactionsStep records the run and its transactions in the warehouse.
type ExportTransactionsStep struct {
	Exporter TransactionExporter
}

func (s *ExportTransactionsStep) Execute(ctx context.Context, state *PipelineState) error {
	runID, err := s.Exporter.StartRun(ctx, state.InputDir, len(state.Sources))
	if err != nil {
		return err
	}
	state.RunID = runID

	if err := s.Exporter.ExportTransactions(ctx, runID, state.Transactions); err != nil {
		s.Exporter.FailRun(ctx, runID, err)
		return err
	}

	if err := s.Exporter.FinishRun(ctx, runID, state.RowsRead, state.RowsDropped, len(state.Months)); err != nil {
		s.Exporter.FailRun(ctx, runID, err)
		return err
	}

	return nil
}

// UploadReportStep pushes the generated PDF to remote storage.
type UploadReportStep struct {
	Uploader ReportUploader
}

func (s *UploadReportStep) Execute(ctx context.Context, state *PipelineState) error {
	log := logger.FromContext(ctx)

	uri, err := s.Uploader.UploadReport(ctx, state.ReportPath)
	if err != nil {
		return err
	}
	state.ReportURI = uri

	log.Info().Str("uri", uri).Msg("Report uploaded")
	return nil
}

// PublishSummariesStep mirrors the monthly summaries to the external tracker.
type PublishSummariesStep struct {
	Publisher SummaryPublisher
}

func (s *PublishSummariesStep) Execute(ctx context.Context, state *PipelineState) error {
	return s.Publisher.PublishMonths(ctx, state.Months)
}

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []PipelineStep
}

// NewPipeline creates a new pipeline with the given steps.
func NewPipeline(steps ...PipelineStep) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps in the pipeline sequentially.
func (p *Pipeline) Execute(ctx context.Context, state *PipelineState) error {
	for i, step := range p.steps {
		if err := step.Execute(ctx, state); err != nil {
			return fmt.Errorf("pipeline step %d failed: %w", i+1, err)
		}
	}
	return nil
}

// Attachments holds the optional export sinks of an analysis run. Nil fields
// are skipped when the pipeline is assembled.
type Attachments struct {
	Exporter  TransactionExporter
	Uploader  ReportUploader
	Publisher SummaryPublisher
}

// NewAnalysisPipeline creates the standard pipeline for analyzing statement
// exports: load, normalize, classify, aggregate, render, then any attachments.
func NewAnalysisPipeline(source StatementSource, console SummaryRenderer, report ReportWriter, att Attachments) *Pipeline {
	steps := []PipelineStep{
		&LoadStatementsStep{Source: source},
		&NormalizeStep{},
		&ClassifyStep{Classifier: classify.NewDefault()},
		&AggregateStep{},
		&RenderConsoleStep{Renderer: console},
	}

	if report != nil {
		steps = append(steps, &RenderReportStep{Writer: report})
	}
	if att.Exporter != nil {
		steps = append(steps, &ExportTransactionsStep{Exporter: att.Exporter})
	}
	if att.Uploader != nil {
		steps = append(steps, &UploadReportStep{Uploader: att.Uploader})
	}
	if att.Publisher != nil {
		steps = append(steps, &PublishSummariesStep{Publisher: att.Publisher})
	}

	return NewPipeline(steps...)
}
