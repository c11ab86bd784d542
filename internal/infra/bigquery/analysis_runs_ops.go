package bigquery

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/logger"
)

const (
	analysisRunsTable = "analysis_runs"
)

// StartAnalysisRun inserts a new row into <dataset>.analysis_runs with
// status=RUNNING and returns the generated analysis_run_id.
func StartAnalysisRun(ctx context.Context, projectID, dataset, inputDir string, fileCount int) (string, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("StartAnalysisRun: bigquery client: %w", err)
	}
	defer client.Close()

	return StartAnalysisRunWithClient(ctx, client, dataset, inputDir, fileCount)
}

// StartAnalysisRunWithClient inserts a new row into <dataset>.analysis_runs with
// status=RUNNING and returns the generated analysis_run_id using the provided client.
func StartAnalysisRunWithClient(ctx context.Context, client *bigquery.Client, dataset, inputDir string, fileCount int) (string, error) {
	runID := uuid.NewString()
	started := time.Now()

	q := client.Query(fmt.Sprintf(`
		INSERT %s.%s (
			analysis_run_id,
			started_ts,
			input_dir,
			file_count,
			status
		)
		VALUES (
			@analysis_run_id,
			@started_ts,
			@input_dir,
			@file_count,
			@status
		)
	`, dataset, analysisRunsTable))

	q.Parameters = []bigquery.QueryParameter{
		{Name: "analysis_run_id", Value: runID},
		{Name: "started_ts", Value: started},
		{Name: "input_dir", Value: inputDir},
		{Name: "file_count", Value: fileCount},
		{Name: "status", Value: "RUNNING"},
	}

	job, err := q.Run(ctx)
	if err != nil {
		return "", fmt.Errorf("StartAnalysisRun: running insert query: %w", err)
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return "", fmt.Errorf("StartAnalysisRun: waiting for job: %w", err)
	}
	if err := status.Err(); err != nil {
		return "", fmt.Errorf("StartAnalysisRun: job error: %w", err)
	}

	return runID, nil
}

// RunStats carries the counters written when a run finishes.
type RunStats struct {
	RowsRead    int
	RowsDropped int
	MonthCount  int
}

// MarkAnalysisRunSucceeded sets status=SUCCESS, finished_ts and the run counters
// using the provided client.
func MarkAnalysisRunSucceeded(ctx context.Context, client *bigquery.Client, dataset, runID string, stats RunStats) error {
	q := client.Query(fmt.Sprintf(`
		UPDATE %s.%s
		SET status = @status,
		    finished_ts = @finished_ts,
		    rows_read = @rows_read,
		    rows_dropped = @rows_dropped,
		    month_count = @month_count,
		    error_message = ""
		WHERE analysis_run_id = @analysis_run_id
	`, dataset, analysisRunsTable))

	q.Parameters = []bigquery.QueryParameter{
		{Name: "status", Value: "SUCCESS"},
		{Name: "finished_ts", Value: time.Now()},
		{Name: "rows_read", Value: stats.RowsRead},
		{Name: "rows_dropped", Value: stats.RowsDropped},
		{Name: "month_count", Value: stats.MonthCount},
		{Name: "analysis_run_id", Value: runID},
	}

	job, err := q.Run(ctx)
	if err != nil {
		return fmt.Errorf("MarkAnalysisRunSucceeded: running update query: %w", err)
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("MarkAnalysisRunSucceeded: waiting for job: %w", err)
	}
	if err := status.Err(); err != nil {
		return fmt.Errorf("MarkAnalysisRunSucceeded: job error: %w", err)
	}

	return nil
}

// MarkAnalysisRunFailed sets status=FAILED, finished_ts and error_message.
// Failures here are logged, not returned, so they never mask the run error.
func MarkAnalysisRunFailed(ctx context.Context, client *bigquery.Client, dataset, runID string, runErr error) {
	log := logger.FromContext(ctx)

	errMsg := ""
	if runErr != nil {
		errMsg = runErr.Error()
		const maxLen = 2000
		if len(errMsg) > maxLen {
			errMsg = errMsg[:maxLen]
		}
	}

	q := client.Query(fmt.Sprintf(`
		UPDATE %s.%s
		SET status = @status,
		    finished_ts = @finished_ts,
		    error_message = @error_message
		WHERE analysis_run_id = @analysis_run_id
	`, dataset, analysisRunsTable))

	q.Parameters = []bigquery.QueryParameter{
		{Name: "status", Value: "FAILED"},
		{Name: "finished_ts", Value: time.Now()},
		{Name: "error_message", Value: errMsg},
		{Name: "analysis_run_id", Value: runID},
	}

	job, err := q.Run(ctx)
	if err != nil {
		log.Error().
			Err(err).
			Str("analysis_run_id", runID).
			Msg("MarkAnalysisRunFailed: running update query")
		return
	}

	status, err := job.Wait(ctx)
	if err != nil {
		log.Error().
			Err(err).
			Str("analysis_run_id", runID).
			Msg("MarkAnalysisRunFailed: waiting for job")
		return
	}
	if err := status.Err(); err != nil {
		log.Error().
			Err(err).
			Str("analysis_run_id", runID).
			Msg("MarkAnalysisRunFailed: job completed with error")
	}
}
