package domain

// Cell is a single spreadsheet cell value as produced by grid extraction.
// It holds a float64 for numeric cells, a string for text cells, a
// time.Time for native date cells, or nil for blanks.
type Cell = any

// RawGrid is an ordered 2D array of heterogeneous cell values extracted
// from a workbook's first sheet. The first row is conventionally a header.
type RawGrid [][]Cell
