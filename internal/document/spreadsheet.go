package document

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetToCSV renders every sheet of an .xlsx workbook as CSV text.
// Each sheet is preceded by a "# <sheet name>" line and followed by a blank line.
func SpreadsheetToCSV(data []byte) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		fmt.Fprintf(&buf, "# %s\n", sheet)
		w := csv.NewWriter(&buf)
		if err := w.WriteAll(rows); err != nil {
			return nil, fmt.Errorf("write sheet %q: %w", sheet, err)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
