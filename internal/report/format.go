package report

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders grouped decimal numbers ("1,234.50") for KPI values and
// comparison deltas, matching the dashboard's locale formatting.
var printer = message.NewPrinter(language.English)

// formatNumber renders v with thousands grouping and a fixed number of
// decimals.
func formatNumber(v float64, decimals int) string {
	return printer.Sprintf("%."+strconv.Itoa(decimals)+"f", v)
}

// formatBaht renders a Thai baht amount.
func formatBaht(v float64, decimals int) string {
	return "฿" + formatNumber(v, decimals)
}

// formatSigned renders v with an explicit leading sign.
func formatSigned(v float64, decimals int) string {
	s := formatNumber(v, decimals)
	if v >= 0 && !strings.HasPrefix(s, "-") {
		return "+" + s
	}
	return s
}

// formatSignedBaht renders a signed baht delta, keeping the currency
// symbol after the sign ("+฿1,234.00").
func formatSignedBaht(v float64, decimals int) string {
	if v < 0 {
		return "-" + formatBaht(-v, decimals)
	}
	return "+" + formatBaht(v, decimals)
}

// formatPercent renders a percent-change figure with one decimal place.
func formatPercent(v float64) string {
	return formatNumber(v, 1) + "%"
}

// formatCount renders an integral count with thousands grouping.
func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

func isWholeNumber(v float64) bool {
	return v == math.Trunc(v)
}
