package statement

import (
	"time"
)

// DateFormat is the date layout used by Nubank CSV exports.
const DateFormat = "2006-01-02"

// NormalizeResult carries the normalized transactions plus diagnostic
// counters for the caller to log. Dropped rows are not an error; exported
// statements routinely contain header artifacts and other noise.
type NormalizeResult struct {
	Transactions []Transaction
	RowsRead     int
	RowsDropped  int
}

// Normalize parses raw rows from all sources into typed transactions.
// Rows whose date fails to parse are excluded silently; amount and title are
// carried through unchanged. Input order is preserved, which later acts as
// the tie-break for top-N selection.
func Normalize(sources []SourceFile) NormalizeResult {
	var res NormalizeResult
	for _, src := range sources {
		for _, row := range src.Rows {
			res.RowsRead++
			date, err := time.Parse(DateFormat, row.Date)
			if err != nil {
				res.RowsDropped++
				continue
			}
			res.Transactions = append(res.Transactions, Transaction{
				Date:   date,
				Title:  row.Title,
				Amount: row.Amount,
				Month:  MonthKeyOf(date),
				Source: src.Name,
			})
		}
	}
	return res
}
