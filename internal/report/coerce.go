package report

import (
	"strconv"
	"strings"
	"time"

	"hrpulse/pkg/contracts/domain"
)

// excelEpochOffset is the number of days between the spreadsheet serial
// epoch (1899-12-30) and the Unix epoch.
const excelEpochOffset = 25569

var monthAbbrevs = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Number coerces a raw cell into a float64. It returns false for blanks,
// the `-` sentinel, worksheet error markers such as #DIV/0!, and strings
// with no numeric content. String cells are cleaned by stripping every
// character outside [0-9.-] before parsing, so "1,234.50 USD" coerces to
// 1234.50.
func Number(cell domain.Cell) (float64, bool) {
	switch v := cell.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || trimmed == "-" {
			return 0, false
		}
		cleaned := stripNonNumeric(trimmed)
		if cleaned == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// numberOrZero is the decoder default for numeric fields: failed coercion
// yields 0, never an error.
func numberOrZero(cell domain.Cell) float64 {
	n, _ := Number(cell)
	return n
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Date normalizes a raw cell into a dd/mm/yyyy display string. Positive
// numbers are interpreted as spreadsheet serial dates; native date cells
// are reformatted; any other non-empty value passes through as its string
// form. Blanks and the `-` sentinel yield "". Date never fails.
func Date(cell domain.Cell) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format("02/01/2006")
	case float64:
		if v > 0 {
			return serialToDate(v)
		}
		return cellString(cell)
	case int:
		if v > 0 {
			return serialToDate(float64(v))
		}
		return cellString(cell)
	case int64:
		if v > 0 {
			return serialToDate(float64(v))
		}
		return cellString(cell)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || trimmed == "-" {
			return ""
		}
		return v
	default:
		return cellString(cell)
	}
}

func serialToDate(serial float64) string {
	secs := int64(serial-excelEpochOffset) * 86400
	return time.Unix(secs, 0).UTC().Format("02/01/2006")
}

// parseDMY parses a dd/mm/yyyy string produced by Date. It returns the
// zero time and false for anything else.
func parseDMY(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1900 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// yearOfDMY extracts the year of a dd/mm/yyyy string, 0 when unparseable.
func yearOfDMY(s string) int {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0
	}
	return year
}

// monthOfDMY extracts the zero-based month index of a dd/mm/yyyy string,
// -1 when unparseable or out of range.
func monthOfDMY(s string) int {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return -1
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return -1
	}
	return month - 1
}
