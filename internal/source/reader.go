package source

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
)

// csvSeparator matches the semicolon-delimited exports this pipeline ingests.
const csvSeparator = ';'

// ReadCSV loads a semicolon-delimited file into a Table. The first line is
// the header; short rows are padded with empty cells.
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, errors.Wrapf(err, "open csv %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = csvSeparator
	r.FieldsPerRecord = -1

	lines, err := r.ReadAll()
	if err != nil {
		return Table{}, errors.Wrapf(err, "read csv %s", path)
	}
	return tableFromLines(lines, path)
}

// ReadXLSX loads the first sheet of a spreadsheet into a Table with the same
// header-plus-rows shape as ReadCSV.
func ReadXLSX(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, errors.Wrapf(err, "open xlsx %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, errors.Newf("xlsx %s has no sheets", path)
	}
	lines, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, errors.Wrapf(err, "read xlsx %s sheet %s", path, sheets[0])
	}
	return tableFromLines(lines, path)
}

func tableFromLines(lines [][]string, path string) (Table, error) {
	if len(lines) == 0 {
		return Table{}, errors.Newf("%s is empty", path)
	}

	header := make([]string, len(lines[0]))
	for i, col := range lines[0] {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		header[i] = strings.TrimSpace(col)
	}

	rows := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(line) {
				rec[col] = strings.TrimSpace(line[i])
			} else {
				rec[col] = ""
			}
		}
		rows = append(rows, rec)
	}
	return Table{Columns: header, Rows: rows}, nil
}
