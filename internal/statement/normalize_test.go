package statement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNormalize_ParsesValidRows(t *testing.T) {
	sources := []SourceFile{
		{
			Name: "Nubank_2025-01.csv",
			Rows: []RawRow{
				{Date: "2025-01-05", Title: "Supermercado Mix", Amount: decimal.RequireFromString("89.90")},
				{Date: "2025-01-20", Title: "Pagamento recebido", Amount: decimal.RequireFromString("-500.00")},
			},
		},
	}

	res := Normalize(sources)

	if res.RowsRead != 2 || res.RowsDropped != 0 {
		t.Errorf("counters = read %d dropped %d, want 2/0", res.RowsRead, res.RowsDropped)
	}
	if len(res.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(res.Transactions))
	}

	tx := res.Transactions[0]
	want := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	if !tx.Date.Equal(want) {
		t.Errorf("date = %v, want %v", tx.Date, want)
	}
	if tx.Month != (MonthKey{Year: 2025, Month: time.January}) {
		t.Errorf("month key = %v, want 2025-01", tx.Month)
	}
	if tx.Source != "Nubank_2025-01.csv" {
		t.Errorf("source = %q", tx.Source)
	}
	if !tx.Amount.Equal(decimal.RequireFromString("89.90")) {
		t.Errorf("amount = %s, want 89.90", tx.Amount)
	}
}

func TestNormalize_DropsUnparseableDates(t *testing.T) {
	sources := []SourceFile{
		{
			Name: "Nubank_2025-02.csv",
			Rows: []RawRow{
				{Date: "not-a-date", Title: "header artifact", Amount: decimal.Zero},
				{Date: "2025-02-10", Title: "Posto Shell", Amount: decimal.RequireFromString("45.00")},
				{Date: "", Title: "empty date", Amount: decimal.RequireFromString("1.00")},
			},
		},
	}

	res := Normalize(sources)

	if res.RowsRead != 3 {
		t.Errorf("RowsRead = %d, want 3", res.RowsRead)
	}
	if res.RowsDropped != 2 {
		t.Errorf("RowsDropped = %d, want 2", res.RowsDropped)
	}
	if len(res.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(res.Transactions))
	}
	if res.Transactions[0].Title != "Posto Shell" {
		t.Errorf("surviving row = %q, want the valid one", res.Transactions[0].Title)
	}
}

func TestNormalize_PreservesInputOrderAcrossSources(t *testing.T) {
	sources := []SourceFile{
		{Name: "a.csv", Rows: []RawRow{{Date: "2025-03-01", Title: "first", Amount: decimal.New(1, 0)}}},
		{Name: "b.csv", Rows: []RawRow{{Date: "2025-01-01", Title: "second", Amount: decimal.New(2, 0)}}},
	}

	res := Normalize(sources)
	if len(res.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(res.Transactions))
	}
	if res.Transactions[0].Title != "first" || res.Transactions[1].Title != "second" {
		t.Errorf("order not preserved: %q, %q", res.Transactions[0].Title, res.Transactions[1].Title)
	}
}

func TestMonthKey_BeforeAndString(t *testing.T) {
	tests := []struct {
		a, b   MonthKey
		before bool
	}{
		{MonthKey{2024, time.December}, MonthKey{2025, time.January}, true},
		{MonthKey{2025, time.January}, MonthKey{2025, time.February}, true},
		{MonthKey{2025, time.February}, MonthKey{2025, time.January}, false},
		{MonthKey{2025, time.January}, MonthKey{2025, time.January}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Before(tt.b); got != tt.before {
			t.Errorf("(%v).Before(%v) = %v, want %v", tt.a, tt.b, got, tt.before)
		}
	}

	if got := (MonthKey{2025, time.March}).String(); got != "2025-03" {
		t.Errorf("String() = %q, want 2025-03", got)
	}
}
