package csvimport

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/logger"
	"github.com/shopspring/decimal"
)

func TestRead_ParsesRows(t *testing.T) {
	csvData := "date,title,amount\n" +
		"2025-01-05,Supermercado Mix Compra 1,89.90\n" +
		"2025-01-20,Pagamento recebido,-500.00\n"

	src, err := Read(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(src.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(src.Rows))
	}
	if src.Rows[0].Date != "2025-01-05" || src.Rows[0].Title != "Supermercado Mix Compra 1" {
		t.Errorf("row[0] = %+v", src.Rows[0])
	}
	if !src.Rows[1].Amount.Equal(decimal.RequireFromString("-500.00")) {
		t.Errorf("row[1].Amount = %s, want -500.00", src.Rows[1].Amount)
	}
}

func TestRead_HeaderColumnOrderIrrelevant(t *testing.T) {
	csvData := "amount,date,title\n" +
		"12.50,2025-02-01,IOF Transaction\n"

	src, err := Read(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(src.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(src.Rows))
	}
	if src.Rows[0].Title != "IOF Transaction" || src.Rows[0].Date != "2025-02-01" {
		t.Errorf("row = %+v", src.Rows[0])
	}
}

func TestRead_MissingColumnRejected(t *testing.T) {
	csvData := "date,description,value\n2025-01-01,x,1.00\n"
	_, err := Read(strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestRead_SkipsMalformedAmounts(t *testing.T) {
	csvData := "date,title,amount\n" +
		"2025-01-01,ok,10.00\n" +
		"2025-01-02,bad amount,abc\n" +
		"2025-01-03,short row\n"

	src, err := Read(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(src.Rows) != 1 || src.Rows[0].Title != "ok" {
		t.Errorf("rows = %+v, want only the valid row", src.Rows)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	writeFile("Nubank_2025-01.csv", "date,title,amount\n2025-01-05,Mercado,10.00\n")
	writeFile("Nubank_2025-02.csv", "date,title,amount\n2025-02-05,Posto,20.00\n")
	writeFile("Nubank_broken.csv", "wrong,header,here\n1,2,3\n")
	writeFile("unrelated.csv", "date,title,amount\n2025-03-01,ignored,1.00\n")

	log := logger.New()
	sources, err := LoadDir(log, dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2 (broken skipped, unrelated not matched)", len(sources))
	}
	if sources[0].Name != "Nubank_2025-01.csv" || sources[1].Name != "Nubank_2025-02.csv" {
		t.Errorf("source order = %s, %s", sources[0].Name, sources[1].Name)
	}
}

func TestLoadDir_NoFiles(t *testing.T) {
	log := logger.New()
	_, err := LoadDir(log, t.TempDir())
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("err = %v, want ErrNoFiles", err)
	}
}
