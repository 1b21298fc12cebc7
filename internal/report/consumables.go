package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"hrpulse/pkg/contracts/domain"
)

// consumablesRankingYear pins the top-by-cost ranking to the most recent
// completed reporting year. Deliberately a literal, not configuration.
const consumablesRankingYear = "2025"

// assembleConsumables decodes the positional consumables sheet and builds
// the cost analytics. A row needs a material code (col 1) to survive.
func assembleConsumables(_ row, body []row, bundle *domain.ReportBundle) error {
	tableData := make([]domain.ConsumableRow, 0, len(body))
	for _, r := range body {
		if r.str(1) == "" {
			continue
		}
		tableData = append(tableData, domain.ConsumableRow{
			Date:        r.date(0),
			Material:    r.str(1),
			Description: r.str(2),
			Quantity:    r.strOr(3, "0"),
			Unit:        r.str(4),
			Price:       r.strOr(5, "0"),
			TotalPrice:  r.strOr(6, "0"),
			CostCenter:  r.str(7),
			Department:  r.str(8),
		})
	}

	// Top 10 by cost, restricted to the pinned ranking year.
	type itemAgg struct {
		ranking domain.ConsumableRanking
	}
	itemOrder := make([]string, 0)
	items := make(map[string]*itemAgg)
	for _, cr := range tableData {
		if !strings.HasSuffix(cr.Date, "/"+consumablesRankingYear) {
			continue
		}
		key := cr.Material
		if key == "" {
			key = "Unknown"
		}
		agg, ok := items[key]
		if !ok {
			name := cr.Description
			if name == "" {
				name = key
			}
			agg = &itemAgg{ranking: domain.ConsumableRanking{Material: key, Name: name}}
			items[key] = agg
			itemOrder = append(itemOrder, key)
		}
		agg.ranking.Frequency++
		agg.ranking.TotalCost += numberOrZero(cr.TotalPrice)
	}
	topItems := make([]domain.ConsumableRanking, 0, len(itemOrder))
	for _, key := range itemOrder {
		topItems = append(topItems, items[key].ranking)
	}
	sortConsumableRankings(topItems)
	if len(topItems) > 10 {
		topItems = topItems[:10]
	}

	currentYear := time.Now().Year()
	currentSuffix := "/" + strconv.Itoa(currentYear)
	previousSuffix := "/" + strconv.Itoa(currentYear-1)

	var monthlyTotals [12]float64
	var thisYearCost, lastYearCost float64
	var thisYearTx, lastYearTx int
	thisYearItems := stringSet{}
	lastYearItems := stringSet{}
	thisYearDepts := stringSet{}

	for _, cr := range tableData {
		cost := numberOrZero(cr.TotalPrice)
		switch {
		case strings.HasSuffix(cr.Date, currentSuffix):
			thisYearCost += cost
			thisYearTx++
			thisYearItems.add(cr.Material)
			thisYearDepts.add(cr.Department)
			if m := monthOfDMY(cr.Date); m >= 0 {
				monthlyTotals[m] += cost
			}
		case strings.HasSuffix(cr.Date, previousSuffix):
			lastYearCost += cost
			lastYearTx++
			lastYearItems.add(cr.Material)
		}
	}

	costDelta, _ := percentChange(thisYearCost, lastYearCost)
	txDelta, _ := percentChange(float64(thisYearTx), float64(lastYearTx))
	itemsDelta, _ := percentChange(float64(len(thisYearItems)), float64(len(lastYearItems)))

	kpis := []domain.Kpi{
		{
			Title:          "kpiTotalCost",
			Value:          formatBaht(thisYearCost, 2),
			Icon:           "CurrencyDollarIcon",
			Color:          "text-brand-success",
			TrendDirection: trendFromDelta(costDelta),
			Comparison:     yearComparison(thisYearCost, lastYearCost, true, 2, true),
		},
		{
			Title:          "kpiTransactions",
			Value:          formatCount(thisYearTx),
			Icon:           "DocumentTextIcon",
			Color:          "text-brand-secondary",
			TrendDirection: trendFromDelta(txDelta),
			Comparison:     yearComparison(float64(thisYearTx), float64(lastYearTx), false, 0, false),
		},
		{
			Title:          "kpiTotalItems",
			Value:          formatCount(len(thisYearItems)),
			Icon:           "ArchiveBoxIcon",
			Color:          "text-brand-primary",
			TrendDirection: trendFromDelta(itemsDelta),
			Comparison:     yearComparison(float64(len(thisYearItems)), float64(len(lastYearItems)), false, 0, false),
		},
		{
			Title:          "kpiDepartments",
			Value:          formatCount(len(thisYearDepts)),
			Icon:           "BuildingOfficeIcon",
			Color:          "text-brand-warning",
			TrendDirection: domain.TrendNeutral,
		},
	}

	bundle.Consumables = &domain.ConsumablesBundle{
		TableData: tableData,
		Kpis:      kpis,
		ChartData: monthlyChart(monthlyTotals),
		TopItems:  topItems,
	}
	return nil
}

func sortConsumableRankings(items []domain.ConsumableRanking) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].TotalCost > items[j].TotalCost })
}
