package report

import (
	"math"
	"sort"

	"hrpulse/pkg/contracts/domain"
)

// groupTotals accumulates a numeric measure keyed by category, preserving
// first-seen insertion order so downstream ties break deterministically.
type groupTotals struct {
	order  []string
	totals map[string]float64
	counts map[string]int
}

func newGroupTotals() *groupTotals {
	return &groupTotals{
		totals: make(map[string]float64),
		counts: make(map[string]int),
	}
}

func (g *groupTotals) add(key string, v float64) {
	if _, seen := g.totals[key]; !seen {
		g.order = append(g.order, key)
	}
	g.totals[key] += v
	g.counts[key]++
}

func (g *groupTotals) get(key string) float64 {
	return g.totals[key]
}

// entries returns the accumulated totals in insertion order.
func (g *groupTotals) entries() []domain.CategoryTotal {
	out := make([]domain.CategoryTotal, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, domain.CategoryTotal{Name: key, Value: g.totals[key]})
	}
	return out
}

// sortedDesc returns the totals sorted descending by value. The sort is
// stable, so equal totals keep their first-seen order.
func (g *groupTotals) sortedDesc() []domain.CategoryTotal {
	return sortTotalsDesc(g.entries())
}

// top returns the first key after a descending sort, or fallback when no
// categories were accumulated.
func (g *groupTotals) top(fallback string) string {
	sorted := g.sortedDesc()
	if len(sorted) == 0 {
		return fallback
	}
	return sorted[0].Name
}

func sortTotalsDesc(entries []domain.CategoryTotal) []domain.CategoryTotal {
	out := make([]domain.CategoryTotal, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// topN truncates a sorted ranking to at most n entries.
func topN(entries []domain.CategoryTotal, n int) []domain.CategoryTotal {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

// totalsToChart converts category totals to chart points.
func totalsToChart(entries []domain.CategoryTotal) []domain.ChartPoint {
	out := make([]domain.ChartPoint, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.ChartPoint{Name: e.Name, Value: e.Value})
	}
	return out
}

// monthlyChart renders a fixed 12-slot accumulator as calendar-month
// chart points, index 0 = January.
func monthlyChart(totals [12]float64) []domain.ChartPoint {
	out := make([]domain.ChartPoint, 12)
	for i, v := range totals {
		out[i] = domain.ChartPoint{Name: monthAbbrevs[i], Value: v}
	}
	return out
}

// stringSet tracks distinct string values for cardinality counts.
type stringSet map[string]struct{}

func (s stringSet) add(v string) { s[v] = struct{}{} }

// percentChange computes delta and percent change with the sentinel
// behavior used by the year-over-year KPI comparisons: when previous is
// zero the percent is 100 for a positive current value and 0 otherwise.
func percentChange(current, previous float64) (delta, percent float64) {
	delta = current - previous
	if previous != 0 {
		return delta, delta / previous * 100
	}
	if current > 0 {
		return delta, 100
	}
	return delta, 0
}

// yearComparison builds a formatted year-over-year comparison with the
// sentinel percent behavior of percentChange. The delta is rendered with
// explicit sign; currency comparisons carry the baht symbol.
func yearComparison(current, previous float64, currency bool, decimals int, withPrevious bool) *domain.Comparison {
	delta, percent := percentChange(current, previous)
	comp := &domain.Comparison{
		Percentage: formatPercent(percent),
		Period:     domain.PeriodYear,
	}
	if currency {
		comp.Value = formatSignedBaht(delta, decimals)
	} else {
		comp.Value = formatSigned(delta, decimals)
	}
	if withPrevious {
		if currency {
			comp.PreviousValue = formatBaht(previous, decimals)
		} else {
			comp.PreviousValue = formatNumber(previous, decimals)
		}
	}
	return comp
}

// strictYearComparison builds a comparison that is omitted entirely when
// the previous-period total is zero. This matches the overtime report's
// behavior, which differs deliberately from the sentinel style above.
func strictYearComparison(current, previous float64, currency bool) *domain.Comparison {
	if previous == 0 {
		return nil
	}
	delta := current - previous
	percent := delta / previous * 100

	formatPrevious := func(v float64) string {
		if currency {
			return formatBaht(v, 2)
		}
		if isWholeNumber(v) {
			return formatNumber(v, 0)
		}
		return formatNumber(v, 2)
	}
	formatDelta := func(v float64) string {
		if currency {
			return formatSignedBaht(v, 2)
		}
		if isWholeNumber(current) && isWholeNumber(previous) {
			return formatSigned(math.Round(v), 0)
		}
		return formatSigned(v, 2)
	}

	return &domain.Comparison{
		Value:         formatDelta(delta),
		Percentage:    formatPercent(percent),
		Period:        domain.PeriodYear,
		PreviousValue: formatPrevious(previous),
	}
}

// trendFromComparison derives the trend tag for metrics where a decrease
// is favorable: a negative percent change trends up.
func trendFromComparison(comp *domain.Comparison) domain.TrendDirection {
	if comp == nil {
		return domain.TrendNeutral
	}
	if len(comp.Percentage) > 0 && comp.Percentage[0] == '-' {
		return domain.TrendUp
	}
	return domain.TrendDown
}

// trendFromDelta derives the trend tag for metrics where growth is
// unfavorable (costs, incidents): a positive delta trends down.
func trendFromDelta(delta float64) domain.TrendDirection {
	if delta > 0 {
		return domain.TrendDown
	}
	return domain.TrendUp
}
