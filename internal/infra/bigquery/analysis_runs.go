package bigquery

import (
	"time"

	"cloud.google.com/go/bigquery"
)

type AnalysisRunRow struct {
	AnalysisRunID string `bigquery:"analysis_run_id"` // REQUIRED

	StartedTS  time.Time              `bigquery:"started_ts"`  // REQUIRED
	FinishedTS bigquery.NullTimestamp `bigquery:"finished_ts"` // NULLABLE

	InputDir  string `bigquery:"input_dir"`  // NULLABLE
	FileCount int64  `bigquery:"file_count"` // NULLABLE

	RowsRead    bigquery.NullInt64 `bigquery:"rows_read"`    // NULLABLE
	RowsDropped bigquery.NullInt64 `bigquery:"rows_dropped"` // NULLABLE
	MonthCount  bigquery.NullInt64 `bigquery:"month_count"`  // NULLABLE

	Status       string `bigquery:"status"`        // NULLABLE
	ErrorMessage string `bigquery:"error_message"` // NULLABLE
}
