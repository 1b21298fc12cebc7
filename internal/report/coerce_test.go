package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name   string
		cell   any
		want   float64
		wantOK bool
	}{
		{name: "float cell", cell: 42.5, want: 42.5, wantOK: true},
		{name: "int cell", cell: 7, want: 7, wantOK: true},
		{name: "plain string", cell: "123.45", want: 123.45, wantOK: true},
		{name: "grouped string", cell: "1,234.56", want: 1234.56, wantOK: true},
		{name: "currency suffix", cell: "1,234.50 USD", want: 1234.50, wantOK: true},
		{name: "baht prefix", cell: "฿500", want: 500, wantOK: true},
		{name: "negative string", cell: "-12", want: -12, wantOK: true},
		{name: "nil cell", cell: nil, wantOK: false},
		{name: "empty string", cell: "", wantOK: false},
		{name: "whitespace", cell: "   ", wantOK: false},
		{name: "dash sentinel", cell: "-", wantOK: false},
		{name: "div by zero marker", cell: "#DIV/0!", wantOK: false},
		{name: "pure text", cell: "pending", wantOK: false},
		{name: "bool cell", cell: true, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Number(tt.cell)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestNumberOrZero(t *testing.T) {
	assert.Equal(t, 0.0, numberOrZero("-"))
	assert.Equal(t, 99.0, numberOrZero("99"))
}

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		cell any
		want string
	}{
		{name: "serial new year 2025", cell: 45658.0, want: "01/01/2025"},
		{name: "serial new year 2024", cell: 45292.0, want: "01/01/2024"},
		{name: "serial mid year", cell: 45839.0, want: "01/07/2025"},
		{name: "native time", cell: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), want: "15/03/2025"},
		{name: "string passthrough", cell: "05/02/2025", want: "05/02/2025"},
		{name: "free text passthrough", cell: "Q1 2025", want: "Q1 2025"},
		{name: "nil", cell: nil, want: ""},
		{name: "empty string", cell: "", want: ""},
		{name: "dash sentinel", cell: "-", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.cell))
		})
	}
}

func TestParseDMY(t *testing.T) {
	got, ok := parseDMY("15/03/2025")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "03/2025", "32/01/2025", "01/13/2025", "01/01/1800", "aa/bb/cccc"} {
		_, ok := parseDMY(bad)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestYearAndMonthOfDMY(t *testing.T) {
	assert.Equal(t, 2025, yearOfDMY("31/12/2025"))
	assert.Equal(t, 0, yearOfDMY("not a date"))

	assert.Equal(t, 0, monthOfDMY("15/01/2025"))
	assert.Equal(t, 11, monthOfDMY("01/12/2025"))
	assert.Equal(t, -1, monthOfDMY("01/13/2025"))
	assert.Equal(t, -1, monthOfDMY(""))
}
