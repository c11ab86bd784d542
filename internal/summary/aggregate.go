// Package summary rolls classified transactions up into per-month and
// overall-period figures consumed by the report renderers.
package summary

import (
	"errors"
	"sort"
	"time"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/statement"
	"github.com/shopspring/decimal"
)

// ErrNoTransactions signals that normalization produced zero valid rows.
// Callers decide whether an empty statement set is itself an error.
var ErrNoTransactions = errors.New("no valid transactions to aggregate")

// DefaultTopN is how many largest purchases each month reports.
const DefaultTopN = 5

// PurchaseEntry is one of a month's largest purchases.
type PurchaseEntry struct {
	Amount decimal.Decimal
	Title  string
}

// CategoryTotal is the purchase total for one category within a month.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthSummary holds the rollups for one calendar month. NetBalance keeps
// the input sign convention: payments are negative, so it nets the invoice
// against what was paid.
type MonthSummary struct {
	Month statement.MonthKey

	TotalPurchases decimal.Decimal
	TotalFees      decimal.Decimal
	TotalPayments  decimal.Decimal
	InvoiceTotal   decimal.Decimal
	NetBalance     decimal.Decimal

	TopPurchases   []PurchaseEntry
	CategoryTotals []CategoryTotal
}

// PeriodSummary covers the whole analyzed period across all months.
type PeriodSummary struct {
	FirstDate        time.Time
	LastDate         time.Time
	MonthCount       int
	TransactionCount int
	TotalSpent       decimal.Decimal // purchases + fees
	TotalPaid        decimal.Decimal // payments only
}

// Aggregate groups transactions by calendar month (ascending) and computes
// the per-month and overall rollups. For a fixed input sequence the output
// is fully deterministic: months are sorted, category accumulation follows
// first-seen order with a stable sort on top, and all sums are decimal.
func Aggregate(txs []statement.Transaction, topN int) ([]MonthSummary, PeriodSummary, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(txs) == 0 {
		return nil, PeriodSummary{
			TotalSpent: decimal.Zero,
			TotalPaid:  decimal.Zero,
		}, ErrNoTransactions
	}

	// Partition by month, preserving input order within each group.
	groups := make(map[statement.MonthKey][]statement.Transaction)
	var keys []statement.MonthKey
	for _, tx := range txs {
		if _, seen := groups[tx.Month]; !seen {
			keys = append(keys, tx.Month)
		}
		groups[tx.Month] = append(groups[tx.Month], tx)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	months := make([]MonthSummary, 0, len(keys))
	for _, key := range keys {
		months = append(months, summarizeMonth(key, groups[key], topN))
	}

	return months, summarizePeriod(txs, len(keys)), nil
}

func summarizeMonth(key statement.MonthKey, txs []statement.Transaction, topN int) MonthSummary {
	m := MonthSummary{
		Month:          key,
		TotalPurchases: decimal.Zero,
		TotalFees:      decimal.Zero,
		TotalPayments:  decimal.Zero,
	}

	var purchases []statement.Transaction
	for _, tx := range txs {
		switch tx.Type {
		case statement.TypePurchase:
			m.TotalPurchases = m.TotalPurchases.Add(tx.Amount)
			purchases = append(purchases, tx)
		case statement.TypeFee:
			m.TotalFees = m.TotalFees.Add(tx.Amount)
		case statement.TypePayment:
			m.TotalPayments = m.TotalPayments.Add(tx.Amount)
		}
	}

	m.InvoiceTotal = m.TotalPurchases.Add(m.TotalFees)
	m.NetBalance = m.TotalPayments.Add(m.InvoiceTotal)
	m.TopPurchases = topPurchases(purchases, topN)
	m.CategoryTotals = categoryTotals(purchases)
	return m
}

// topPurchases selects the n largest purchases by amount. The sort is
// stable, so equal amounts keep their input order.
func topPurchases(purchases []statement.Transaction, n int) []PurchaseEntry {
	sorted := make([]statement.Transaction, len(purchases))
	copy(sorted, purchases)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	entries := make([]PurchaseEntry, 0, len(sorted))
	for _, tx := range sorted {
		entries = append(entries, PurchaseEntry{Amount: tx.Amount, Title: tx.Title})
	}
	return entries
}

// categoryTotals sums purchase amounts per category, keeps strictly positive
// totals only, and orders them descending. Accumulation follows first-seen
// category order so ties resolve the same way on every run.
func categoryTotals(purchases []statement.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, tx := range purchases {
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		if totals[cat].IsPositive() {
			out = append(out, CategoryTotal{Category: cat, Total: totals[cat]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

func summarizePeriod(txs []statement.Transaction, monthCount int) PeriodSummary {
	p := PeriodSummary{
		FirstDate:        txs[0].Date,
		LastDate:         txs[0].Date,
		MonthCount:       monthCount,
		TransactionCount: len(txs),
		TotalSpent:       decimal.Zero,
		TotalPaid:        decimal.Zero,
	}
	for _, tx := range txs {
		if tx.Date.Before(p.FirstDate) {
			p.FirstDate = tx.Date
		}
		if tx.Date.After(p.LastDate) {
			p.LastDate = tx.Date
		}
		if tx.Type == statement.TypePayment {
			p.TotalPaid = p.TotalPaid.Add(tx.Amount)
		} else {
			p.TotalSpent = p.TotalSpent.Add(tx.Amount)
		}
	}
	return p
}
