package bigquery

import (
	"math/big"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/statement"
)

type TransactionRow struct {
	TransactionID string `bigquery:"transaction_id"` // REQUIRED
	AnalysisRunID string `bigquery:"analysis_run_id"` // REQUIRED

	TransactionDate civil.Date `bigquery:"transaction_date"` // REQUIRED
	InvoiceMonth    string     `bigquery:"invoice_month"`    // REQUIRED, YYYY-MM

	Amount *big.Rat `bigquery:"amount"` // REQUIRED NUMERIC

	Title    string `bigquery:"title"`    // REQUIRED STRING
	TxType   string `bigquery:"tx_type"`  // REQUIRED STRING
	Category string `bigquery:"category"` // REQUIRED STRING

	InstallmentIndex bigquery.NullInt64 `bigquery:"installment_index"` // NULLABLE
	InstallmentTotal bigquery.NullInt64 `bigquery:"installment_total"` // NULLABLE

	SourceFile string `bigquery:"source_file"` // NULLABLE

	CreatedTS time.Time `bigquery:"created_ts"` // REQUIRED
}

// NewTransactionRow maps a classified transaction onto its export row.
func NewTransactionRow(tx statement.Transaction, runID, transactionID string, now time.Time) *TransactionRow {
	row := &TransactionRow{
		TransactionID:   transactionID,
		AnalysisRunID:   runID,
		TransactionDate: civil.DateOf(tx.Date),
		InvoiceMonth:    tx.Month.String(),
		Amount:          tx.Amount.Rat(),
		Title:           tx.Title,
		TxType:          string(tx.Type),
		Category:        tx.Category,
		SourceFile:      tx.Source,
		CreatedTS:       now,
	}
	if tx.Installment != nil {
		row.InstallmentIndex = bigquery.NullInt64{Int64: int64(tx.Installment.Index), Valid: true}
		row.InstallmentTotal = bigquery.NullInt64{Int64: int64(tx.Installment.Total), Valid: true}
	}
	return row
}
