package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/summary"
)

func TestPDFRender(t *testing.T) {
	var buf bytes.Buffer
	err := NewPDF().Render([]summary.MonthSummary{sampleMonth()}, samplePeriod(), &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not look like a PDF document")
	}
	if buf.Len() < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestPDFRender_NoMonths(t *testing.T) {
	var buf bytes.Buffer
	err := NewPDF().Render(nil, summary.PeriodSummary{}, &buf)
	if err != nil {
		t.Fatalf("Render with no months: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not look like a PDF document")
	}
}

func TestPDFRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "resumo.pdf")
	err := NewPDF().RenderFile([]summary.MonthSummary{sampleMonth()}, samplePeriod(), path)
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty report file")
	}
}
