// Package csvimport discovers and reads Nubank CSV statement exports,
// producing raw rows for the normalizer. Structurally broken files and rows
// (missing columns, unparseable amounts) are handled here; the core only
// deals with unparseable dates.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/statement"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// FilePattern matches Nubank monthly export filenames.
const FilePattern = "Nubank_*.csv"

// ErrNoFiles is returned when the input directory has no matching exports.
var ErrNoFiles = errors.New("no Nubank_*.csv files found")

var requiredColumns = []string{"date", "title", "amount"}

// Discover lists the statement export files in dir, sorted by name so a
// given directory always loads in the same order.
func Discover(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, FilePattern))
	if err != nil {
		return nil, fmt.Errorf("Discover: globbing %q: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("Discover: %q: %w", dir, ErrNoFiles)
	}
	return matches, nil
}

// LoadDir discovers and reads every export in dir. Files that cannot be
// opened or lack the expected columns are skipped with a warning; LoadDir
// fails only when nothing at all could be read.
func LoadDir(log zerolog.Logger, dir string) ([]statement.SourceFile, error) {
	paths, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	var sources []statement.SourceFile
	for _, path := range paths {
		src, err := LoadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", filepath.Base(path)).Msg("Skipping statement file")
			continue
		}
		log.Info().Str("file", src.Name).Int("rows", len(src.Rows)).Msg("Statement file read")
		sources = append(sources, src)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("LoadDir: %q: no statement file could be read", dir)
	}
	return sources, nil
}

// LoadFile reads one export file into raw rows.
func LoadFile(path string) (statement.SourceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return statement.SourceFile{}, fmt.Errorf("LoadFile: open %q: %w", path, err)
	}
	defer f.Close()

	src, err := Read(f)
	if err != nil {
		return statement.SourceFile{}, fmt.Errorf("LoadFile: %q: %w", path, err)
	}
	src.Name = filepath.Base(path)
	return src, nil
}

// Read parses CSV content with a date,title,amount header. Header columns
// may appear in any order; extra columns are ignored. Rows with malformed
// amounts or too few fields are dropped.
func Read(r io.Reader) (statement.SourceFile, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return statement.SourceFile{}, fmt.Errorf("Read: reading header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return statement.SourceFile{}, fmt.Errorf("Read: missing required column %q", col)
		}
	}

	var src statement.SourceFile
	maxIdx := idx["date"]
	for _, col := range requiredColumns {
		if idx[col] > maxIdx {
			maxIdx = idx[col]
		}
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return statement.SourceFile{}, fmt.Errorf("Read: reading record: %w", err)
		}
		if len(record) <= maxIdx {
			continue
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(record[idx["amount"]]))
		if err != nil {
			continue
		}
		src.Rows = append(src.Rows, statement.RawRow{
			Date:   strings.TrimSpace(record[idx["date"]]),
			Title:  record[idx["title"]],
			Amount: amount,
		})
	}
	return src, nil
}
