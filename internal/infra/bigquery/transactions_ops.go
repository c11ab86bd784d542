package bigquery

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

const (
	transactionsTable = "transactions"
)

// InsertTransactions inserts a batch of TransactionRow into <dataset>.transactions.
func InsertTransactions(ctx context.Context, projectID, dataset string, rows []*TransactionRow) error {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return fmt.Errorf("InsertTransactions: bigquery client: %w", err)
	}
	defer client.Close()

	return InsertTransactionsWithClient(ctx, client, dataset, rows)
}

// InsertTransactionsWithClient inserts a batch of TransactionRow into
// <dataset>.transactions using the provided BigQuery client.
func InsertTransactionsWithClient(ctx context.Context, client *bigquery.Client, dataset string, rows []*TransactionRow) error {
	if len(rows) == 0 {
		return nil
	}

	table := client.Dataset(dataset).Table(transactionsTable)
	inserter := table.Inserter()
	if err := inserter.Put(ctx, rows); err != nil {
		return fmt.Errorf("InsertTransactions: inserting rows: %w", err)
	}

	return nil
}

// ListAnalysisRuns returns the most recent analysis runs, newest first.
func ListAnalysisRuns(ctx context.Context, projectID, dataset string, limit int) ([]*AnalysisRunRow, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("ListAnalysisRuns: bigquery client: %w", err)
	}
	defer client.Close()

	return ListAnalysisRunsWithClient(ctx, client, dataset, limit)
}

// ListAnalysisRunsWithClient returns the most recent analysis runs, newest first,
// using the provided BigQuery client.
func ListAnalysisRunsWithClient(ctx context.Context, client *bigquery.Client, dataset string, limit int) ([]*AnalysisRunRow, error) {
	if limit < 1 {
		limit = 10
	}

	q := client.Query(fmt.Sprintf(`
		SELECT
			analysis_run_id,
			started_ts,
			finished_ts,
			input_dir,
			file_count,
			rows_read,
			rows_dropped,
			month_count,
			status,
			error_message
		FROM %s.%s
		ORDER BY started_ts DESC
		LIMIT @limit
	`, dataset, analysisRunsTable))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "limit", Value: limit},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListAnalysisRuns: query read: %w", err)
	}

	var rows []*AnalysisRunRow
	for {
		var r AnalysisRunRow
		err := it.Next(&r)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListAnalysisRuns: iter next: %w", err)
		}
		rows = append(rows, &r)
	}

	return rows, nil
}
