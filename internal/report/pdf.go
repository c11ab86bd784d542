package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/jleandrocampos/nubank-analysis-invoice/internal/summary"
)

const pdfDescLimit = 60

// PDFRenderer produces the paginated A4 report: one page per month with a
// financial summary, the five largest purchases, and category totals, plus
// a closing overall-period page.
type PDFRenderer struct{}

// NewPDF returns a PDF renderer.
func NewPDF() *PDFRenderer {
	return &PDFRenderer{}
}

// RenderFile writes the report to path, creating parent directories.
func (r *PDFRenderer) RenderFile(months []summary.MonthSummary, period summary.PeriodSummary, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("RenderFile: creating %q: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("RenderFile: creating %q: %w", path, err)
	}
	if err := r.Render(months, period, f); err != nil {
		f.Close()
		return fmt.Errorf("RenderFile: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("RenderFile: closing %q: %w", path, err)
	}
	return nil
}

// Render writes the PDF document to w.
func (r *PDFRenderer) Render(months []summary.MonthSummary, period summary.PeriodSummary, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Resumo Financeiro Mensal - Nubank", true)
	pdf.SetMargins(25, 25, 25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 139)
	pdf.CellFormat(0, 12, tr("RESUMO FINANCEIRO MENSAL - NUBANK"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for _, m := range months {
		renderMonthPage(pdf, tr, m)
		pdf.AddPage()
	}
	renderPeriodPage(pdf, tr, period)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("Render: writing pdf: %w", err)
	}
	return nil
}

func renderMonthPage(pdf *fpdf.Fpdf, tr func(string) string, m summary.MonthSummary) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("MÊS: %s", m.Month)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	sectionHeading(pdf, tr, "Resumo Financeiro")
	tableHeader(pdf, tr, []colSpec{{w: 70, text: "Item"}, {w: 40, text: "Valor"}})
	tableRow(pdf, tr, []colSpec{{w: 70, text: "Valor Total da Fatura"}, {w: 40, text: FormatBRL(m.InvoiceTotal)}})
	tableRow(pdf, tr, []colSpec{{w: 70, text: "Pagamentos Recebidos"}, {w: 40, text: FormatBRL(m.TotalPayments)}})
	tableRow(pdf, tr, []colSpec{{w: 70, text: "Saldo (Fatura - Pgto)"}, {w: 40, text: FormatBRLSigned(m.NetBalance)}})
	pdf.Ln(6)

	sectionHeading(pdf, tr, "Top 5 Maiores Gastos")
	if len(m.TopPurchases) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr("Nenhuma compra registrada este mês."), "", 1, "L", false, 0, "")
	} else {
		tableHeader(pdf, tr, []colSpec{{w: 35, text: "Valor"}, {w: 125, text: "Descrição"}})
		for _, p := range m.TopPurchases {
			tableRow(pdf, tr, []colSpec{
				{w: 35, text: FormatBRL(p.Amount), align: "R"},
				{w: 125, text: Truncate(p.Title, pdfDescLimit)},
			})
		}
	}
	pdf.Ln(6)

	sectionHeading(pdf, tr, "Gastos por Categoria")
	if len(m.CategoryTotals) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr("Nenhum gasto categorizado este mês."), "", 1, "L", false, 0, "")
	} else {
		tableHeader(pdf, tr, []colSpec{{w: 35, text: "Valor"}, {w: 125, text: "Categoria"}})
		for _, c := range m.CategoryTotals {
			tableRow(pdf, tr, []colSpec{
				{w: 35, text: FormatBRL(c.Total), align: "R"},
				{w: 125, text: c.Category},
			})
		}
	}
}

func renderPeriodPage(pdf *fpdf.Fpdf, tr func(string) string, p summary.PeriodSummary) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 139)
	pdf.CellFormat(0, 12, tr("RESUMO GERAL DO PERÍODO"), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	tableHeader(pdf, tr, []colSpec{{w: 70, text: "Item"}, {w: 70, text: "Valor"}})
	tableRow(pdf, tr, []colSpec{
		{w: 70, text: "Período Analisado"},
		{w: 70, text: fmt.Sprintf("%s até %s", formatDate(p.FirstDate), formatDate(p.LastDate))},
	})
	tableRow(pdf, tr, []colSpec{{w: 70, text: "Total de Meses"}, {w: 70, text: fmt.Sprintf("%d", p.MonthCount)}})
	tableRow(pdf, tr, []colSpec{{w: 70, text: "Total de Transações"}, {w: 70, text: fmt.Sprintf("%d", p.TransactionCount)}})
	tableRow(pdf, tr, []colSpec{{w: 70, text: "Total Gasto (Compras + IOF)"}, {w: 70, text: FormatBRL(p.TotalSpent)}})
	tableRow(pdf, tr, []colSpec{{w: 70, text: "Total Pago"}, {w: 70, text: FormatBRL(p.TotalPaid)}})
}

type colSpec struct {
	w     float64
	text  string
	align string
}

func sectionHeading(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr(text), "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func tableHeader(pdf *fpdf.Fpdf, tr func(string) string, cols []colSpec) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range cols {
		pdf.CellFormat(c.w, 7, tr(c.text), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

func tableRow(pdf *fpdf.Fpdf, tr func(string) string, cols []colSpec) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetFillColor(245, 245, 220)
	for _, c := range cols {
		align := c.align
		if align == "" {
			align = "L"
		}
		pdf.CellFormat(c.w, 6, tr(c.text), "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)
}
