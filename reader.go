package parqetimport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const bom = "\ufeff"

// ReadFile returns the whole content of the file at path as text.
//
// A leading UTF-8 byte order mark is dropped, spreadsheet tools add one when
// saving CSV files.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrFileAccess, path, err)
	}
	return strings.TrimPrefix(string(data), bom), nil
}

// ReadRecords reads the export at path and returns its records, header first.
//
// Files with the ".xlsx" extension are read as a workbook, the records being
// the rows of its first sheet. Any other file is parsed as comma separated
// text.
func ReadRecords(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readWorkbook(path)
	}
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCSV(text, ',')
}

// readWorkbook returns the rows of the first sheet of the workbook at path.
func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFileAccess, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w %q: workbook has no sheet", ErrFileAccess, path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w %q: reading sheet %q: %w", ErrFileAccess, path, sheets[0], err)
	}
	return rows, nil
}
