package report

import (
	"strconv"
	"strings"
	"time"

	"hrpulse/pkg/contracts/domain"
)

// cellString renders a raw cell as text. Blanks render as "", numbers in
// their shortest decimal form.
func cellString(cell domain.Cell) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("02/01/2006")
	default:
		return ""
	}
}

// row wraps one grid row with positional access. Out-of-range indices
// behave like blank cells, so ragged rows never panic.
type row []domain.Cell

func (r row) cell(i int) domain.Cell {
	if i < 0 || i >= len(r) {
		return nil
	}
	return r[i]
}

func (r row) str(i int) string {
	return cellString(r.cell(i))
}

// strOr returns the cell's text or a fallback when the cell is blank.
func (r row) strOr(i int, fallback string) string {
	if s := r.str(i); s != "" {
		return s
	}
	return fallback
}

func (r row) num(i int) float64 {
	return numberOrZero(r.cell(i))
}

func (r row) date(i int) string {
	return Date(r.cell(i))
}

// numSeq reads n consecutive numeric cells starting at column start,
// defaulting each failed coercion to 0.
func (r row) numSeq(start, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = r.num(start + i)
	}
	return out
}

// isEmpty reports whether every cell in the row is blank.
func (r row) isEmpty() bool {
	for _, c := range r {
		if strings.TrimSpace(cellString(c)) != "" {
			return false
		}
	}
	return true
}

// headerIndex maps trimmed header labels to their column positions for
// kinds that address columns by header text instead of fixed index.
// The first occurrence of a duplicated label wins.
type headerIndex map[string]int

func newHeaderIndex(header row) headerIndex {
	idx := make(headerIndex, len(header))
	for i, cell := range header {
		label := strings.TrimSpace(cellString(cell))
		if label == "" {
			continue
		}
		if _, seen := idx[label]; !seen {
			idx[label] = i
		}
	}
	return idx
}

func (h headerIndex) has(label string) bool {
	_, ok := h[label]
	return ok
}

// cell resolves a labeled column within a row, nil when the label is
// unknown or the row is too short.
func (h headerIndex) cell(r row, label string) domain.Cell {
	i, ok := h[label]
	if !ok {
		return nil
	}
	return r.cell(i)
}

func (h headerIndex) str(r row, label string) string {
	return cellString(h.cell(r, label))
}

func (h headerIndex) strOr(r row, label, fallback string) string {
	if s := h.str(r, label); s != "" {
		return s
	}
	return fallback
}

func (h headerIndex) num(r row, label string) float64 {
	return numberOrZero(h.cell(r, label))
}

// date formats a labeled cell as dd/mm/yyyy, "" when the cell is blank.
func (h headerIndex) date(r row, label string) string {
	return Date(h.cell(r, label))
}

// bodyRows splits a grid into its data rows, dropping the header.
func bodyRows(grid domain.RawGrid) []row {
	if len(grid) < 2 {
		return nil
	}
	rows := make([]row, 0, len(grid)-1)
	for _, r := range grid[1:] {
		rows = append(rows, row(r))
	}
	return rows
}
