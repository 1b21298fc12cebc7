package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"hrpulse/pkg/contracts/domain"
)

// ErrWorkbook wraps every failure to read an upload as a spreadsheet, so
// callers can distinguish bad input from internal faults.
var ErrWorkbook = errors.New("invalid workbook")

// ExtractGrid reads an uploaded workbook and returns the raw cell grid of
// its first sheet. Numeric cells come back as float64 (so serial dates
// keep their serial form), text cells as strings, blanks as nil. Trailing
// fully-empty rows are dropped; rows are padded to the sheet's widest row
// so positional decoders see a rectangular grid.
func ExtractGrid(r io.Reader) (domain.RawGrid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open: %v", ErrWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", ErrWorkbook)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %v", ErrWorkbook, sheets[0], err)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make(domain.RawGrid, 0, len(rows))
	for _, row := range rows {
		cells := make([]domain.Cell, width)
		for i := 0; i < width; i++ {
			if i < len(row) {
				cells[i] = typeCell(row[i])
			}
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// typeCell restores the cell typing the string-based row reader flattens:
// raw numeric text becomes float64, blanks become nil.
func typeCell(raw string) domain.Cell {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}
