package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hrpulse/pkg/contracts/domain"
)

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell any
		want string
	}{
		{name: "nil", cell: nil, want: ""},
		{name: "string", cell: "abc", want: "abc"},
		{name: "whole float", cell: 42.0, want: "42"},
		{name: "fractional float", cell: 42.5, want: "42.5"},
		{name: "int", cell: 7, want: "7"},
		{name: "bool", cell: true, want: "true"},
		{name: "time", cell: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), want: "02/01/2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cellString(tt.cell))
		})
	}
}

func TestRowAccessorsOutOfRange(t *testing.T) {
	r := row{"a", 1.5}

	assert.Equal(t, "a", r.str(0))
	assert.Equal(t, 1.5, r.num(1))
	assert.Equal(t, "", r.str(5))
	assert.Equal(t, 0.0, r.num(5))
	assert.Nil(t, r.cell(-1))
	assert.Equal(t, "fallback", r.strOr(9, "fallback"))

	seq := r.numSeq(1, 3)
	assert.Equal(t, []float64{1.5, 0, 0}, seq)
}

func TestRowIsEmpty(t *testing.T) {
	assert.True(t, row{}.isEmpty())
	assert.True(t, row{nil, "", "  "}.isEmpty())
	assert.False(t, row{nil, "x"}.isEmpty())
	assert.False(t, row{0.0}.isEmpty(), "numeric zero renders as text")
}

func TestHeaderIndex(t *testing.T) {
	idx := newHeaderIndex(row{" NAME ", "VALUE", "", "VALUE", 42.0})

	assert.True(t, idx.has("NAME"))
	assert.True(t, idx.has("42"))
	assert.False(t, idx.has(""))

	r := row{"Somchai", 10.0, nil, 99.0}
	assert.Equal(t, "Somchai", idx.str(r, "NAME"))
	// Duplicate labels resolve to the first occurrence.
	assert.Equal(t, 10.0, idx.num(r, "VALUE"))
	assert.Equal(t, "", idx.str(r, "MISSING"))
	assert.Equal(t, "x", idx.strOr(r, "MISSING", "x"))
}

func TestBodyRows(t *testing.T) {
	assert.Nil(t, bodyRows(domain.RawGrid{{"only header"}}))

	rows := bodyRows(domain.RawGrid{{"h"}, {"r1"}, {"r2"}})
	assert.Len(t, rows, 2)
	assert.Equal(t, "r1", rows[0].str(0))
}
