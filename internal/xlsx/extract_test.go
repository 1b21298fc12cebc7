package xlsx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, cells map[string]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, v))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestExtractGridTypesCells(t *testing.T) {
	buf := workbookBytes(t, map[string]interface{}{
		"A1": "Date",
		"B1": "Material",
		"C1": "Total",
		"A2": 45658,
		"B2": "MAT-1",
		"C2": 1234.5,
	})

	grid, err := ExtractGrid(buf)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 3)

	assert.Equal(t, "Date", grid[0][0])
	assert.Equal(t, 45658.0, grid[1][0], "numeric cells keep their serial form")
	assert.Equal(t, "MAT-1", grid[1][1])
	assert.Equal(t, 1234.5, grid[1][2])
}

func TestExtractGridPadsRaggedRows(t *testing.T) {
	buf := workbookBytes(t, map[string]interface{}{
		"A1": "a",
		"B1": "b",
		"C1": "c",
		"A2": "only one cell",
	})

	grid, err := ExtractGrid(buf)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	require.Len(t, grid[1], 3)
	assert.Nil(t, grid[1][1])
	assert.Nil(t, grid[1][2])
}

func TestExtractGridRejectsGarbage(t *testing.T) {
	_, err := ExtractGrid(strings.NewReader("not a workbook"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWorkbook)
}
