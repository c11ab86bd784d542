package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/summary"
)

const (
	consoleSeparator = "============================================================"
	consoleDescLimit = 40
	dateDisplay      = "02/01/2006"
)

// ConsoleRenderer writes the monthly summaries as plain text, mirroring the
// layout of the PDF report.
type ConsoleRenderer struct {
	w io.Writer
}

// NewConsole returns a renderer writing to w.
func NewConsole(w io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{w: w}
}

// Render writes every month followed by the overall-period block.
func (r *ConsoleRenderer) Render(months []summary.MonthSummary, period summary.PeriodSummary) error {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, consoleSeparator)
	fmt.Fprintln(r.w, "RESUMO FINANCEIRO MENSAL")
	fmt.Fprintln(r.w, consoleSeparator)

	for _, m := range months {
		r.renderMonth(m)
	}
	r.renderPeriod(period)
	return nil
}

func (r *ConsoleRenderer) renderMonth(m summary.MonthSummary) {
	fmt.Fprintf(r.w, "\n================== MÊS: %s ==================\n", m.Month)

	fmt.Fprintln(r.w, "\nResumo Financeiro:")
	fmt.Fprintf(r.w, "  Valor Total da Fatura...: %s\n", FormatBRL(m.InvoiceTotal))
	fmt.Fprintf(r.w, "  Pagamentos Recebidos....: %s\n", FormatBRL(m.TotalPayments))
	fmt.Fprintf(r.w, "  Saldo (Fatura - Pgto)...: %s\n", FormatBRLSigned(m.NetBalance))

	fmt.Fprintln(r.w, "\nTop 5 Maiores Gastos:")
	if len(m.TopPurchases) == 0 {
		fmt.Fprintln(r.w, "  Nenhuma compra registrada este mês.")
	} else {
		for _, p := range m.TopPurchases {
			fmt.Fprintf(r.w, "  %16s | %s\n", FormatBRL(p.Amount), Truncate(p.Title, consoleDescLimit))
		}
	}

	fmt.Fprintln(r.w, "\nGastos por Categoria:")
	if len(m.CategoryTotals) == 0 {
		fmt.Fprintln(r.w, "  Nenhum gasto categorizado este mês.")
	} else {
		for _, c := range m.CategoryTotals {
			fmt.Fprintf(r.w, "  %16s | %s\n", FormatBRL(c.Total), c.Category)
		}
	}
}

func (r *ConsoleRenderer) renderPeriod(p summary.PeriodSummary) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, consoleSeparator)
	fmt.Fprintln(r.w, "RESUMO GERAL DO PERÍODO")
	fmt.Fprintln(r.w, consoleSeparator)
	fmt.Fprintf(r.w, "  Período Analisado...: %s até %s\n", formatDate(p.FirstDate), formatDate(p.LastDate))
	fmt.Fprintf(r.w, "  Total de Meses......: %d\n", p.MonthCount)
	fmt.Fprintf(r.w, "  Total de Transações.: %d\n", p.TransactionCount)
	fmt.Fprintf(r.w, "  Total Gasto (Compras + IOF): %s\n", FormatBRL(p.TotalSpent))
	fmt.Fprintf(r.w, "  Total Pago..........: %s\n", FormatBRL(p.TotalPaid))
	fmt.Fprintln(r.w, consoleSeparator)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return strings.Repeat("-", len(dateDisplay))
	}
	return t.Format(dateDisplay)
}
