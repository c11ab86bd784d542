package statement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TxType is the coarse bucket a statement entry falls into, derived from its
// description text.
type TxType string

const (
	TypePurchase TxType = "Purchase"
	TypePayment  TxType = "Payment"
	TypeFee      TxType = "Fee"
)

// RawRow is one row as read from a Nubank CSV export, before any parsing.
// Sign convention from the export is preserved: positive amounts are money
// owed/spent, negative amounts are credits/payments received.
type RawRow struct {
	Date   string
	Title  string
	Amount decimal.Decimal
}

// SourceFile tags a batch of raw rows with the file they came from, for
// diagnostics only.
type SourceFile struct {
	Name string
	Rows []RawRow
}

// MonthKey identifies one reporting period (calendar month).
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKeyOf derives the reporting period from a transaction date.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Before reports whether k is chronologically earlier than other.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// String renders the period as "YYYY-MM".
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Installment is the N-of-M marker extracted from a purchase description.
// Index and Total are always both set, with 1 <= Index <= Total.
type Installment struct {
	Index int
	Total int
}

// Transaction is one classified, dated, amount-bearing statement entry.
// It is never mutated after classification; aggregation only reads.
type Transaction struct {
	Date   time.Time
	Title  string
	Amount decimal.Decimal
	Month  MonthKey
	Source string

	Type     TxType
	Category string

	Installment *Installment
}

// IsInstallment reports whether the entry carries an installment marker.
func (t Transaction) IsInstallment() bool {
	return t.Installment != nil
}
