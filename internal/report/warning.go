package report

import (
	"sort"
	"strings"

	"hrpulse/pkg/contracts/domain"
)

// Warning type keyword sets. Sheets arrive with Thai or English wording,
// so classification is a substring match, not equality; anything
// unmatched counts as "other".
var (
	verbalKeywords  = []string{"วาจา", "verbal"}
	writtenKeywords = []string{"ลายลักษณ์อักษร", "written"}
)

type warningClass int

const (
	warningOther warningClass = iota
	warningVerbal
	warningWritten
)

func classifyWarningType(warningType string) warningClass {
	t := strings.ToLower(strings.TrimSpace(warningType))
	for _, kw := range verbalKeywords {
		if strings.Contains(t, kw) {
			return warningVerbal
		}
	}
	for _, kw := range writtenKeywords {
		if strings.Contains(t, kw) {
			return warningWritten
		}
	}
	return warningOther
}

// assembleWarningLetter decodes the positional warning letter sheet.
// Layout: col 0 id, col 1 date, col 2 employee id, col 3 employee name,
// col 4 department, cols 5-8 case fields, cols 9-11 HR process dates,
// col 12 document status. A row needs an employee id or name.
func assembleWarningLetter(_ row, body []row, bundle *domain.ReportBundle) error {
	tableData := make([]domain.WarningLetterRow, 0, len(body))
	for _, r := range body {
		if len(r) < 12 {
			continue
		}
		if r.str(2) == "" && r.str(3) == "" {
			continue
		}
		tableData = append(tableData, domain.WarningLetterRow{
			ID:                    r.str(0),
			Date:                  r.date(1),
			EmployeeID:            r.str(2),
			EmployeeName:          r.str(3),
			Department:            r.strOr(4, "Unknown"),
			Reason:                r.str(5),
			WarningID:             r.str(6),
			DamageValue:           r.num(7),
			Type:                  r.strOr(8, "Unknown"),
			HRSentDate:            r.date(9),
			HRInvestigationDate:   r.date(10),
			HRWarningReceivedDate: r.date(11),
			DocumentStatus:        r.str(12),
		})
	}

	type deptBreakdown struct {
		verbal, written, other int
	}
	byDept := make(map[string]*deptBreakdown)
	deptOrder := []string{}
	damageByDept := newGroupTotals()
	var verbal, written int
	var totalDamage float64

	for _, wr := range tableData {
		switch classifyWarningType(wr.Type) {
		case warningVerbal:
			verbal++
		case warningWritten:
			written++
		}
		totalDamage += wr.DamageValue

		bd, ok := byDept[wr.Department]
		if !ok {
			bd = &deptBreakdown{}
			byDept[wr.Department] = bd
			deptOrder = append(deptOrder, wr.Department)
		}
		switch classifyWarningType(wr.Type) {
		case warningVerbal:
			bd.verbal++
		case warningWritten:
			bd.written++
		default:
			bd.other++
		}

		if wr.DamageValue > 0 {
			damageByDept.add(wr.Department, wr.DamageValue)
		}
	}

	total := len(tableData)
	verbalPct, writtenPct := 0.0, 0.0
	if total > 0 {
		verbalPct = float64(verbal) / float64(total) * 100
		writtenPct = float64(written) / float64(total) * 100
	}

	kpis := []domain.Kpi{
		{
			Title: "totalWarnings", Value: formatCount(total),
			SubValue: "(100%)", SubValuePosition: "bottom",
			Icon: "ExclamationTriangleIcon", Color: "text-brand-danger",
		},
		{
			Title: "verbalWarnings", Value: formatCount(verbal),
			SubValue: "(" + formatNumber(verbalPct, 0) + "%)", SubValuePosition: "bottom",
			Icon: "ClipboardDocumentCheckIcon", Color: "text-brand-warning",
		},
		{
			Title: "writtenWarnings", Value: formatCount(written),
			SubValue: "(" + formatNumber(writtenPct, 0) + "%)", SubValuePosition: "bottom",
			Icon: "DocumentTextIcon", Color: "text-brand-secondary",
		},
		{
			Title: "totalDamage", Value: formatBaht(totalDamage, 0),
			Icon: "CurrencyDollarIcon", Color: "text-brand-primary",
		},
	}

	byDeptChart := make([]domain.ChartPoint, 0, len(deptOrder))
	for _, dept := range deptOrder {
		bd := byDept[dept]
		byDeptChart = append(byDeptChart, domain.ChartPoint{
			Name:  dept,
			Value: float64(bd.verbal + bd.written + bd.other),
			Series: map[string]float64{
				"verbal":  float64(bd.verbal),
				"written": float64(bd.written),
				"other":   float64(bd.other),
			},
		})
	}
	sort.SliceStable(byDeptChart, func(i, j int) bool { return byDeptChart[i].Value > byDeptChart[j].Value })

	byTypeChart := []domain.ChartPoint{}
	for _, p := range []domain.ChartPoint{
		{Name: "verbalWarnings", Value: float64(verbal)},
		{Name: "writtenWarnings", Value: float64(written)},
		{Name: "other", Value: float64(total - verbal - written)},
	} {
		if p.Value > 0 {
			byTypeChart = append(byTypeChart, p)
		}
	}

	bundle.WarningLetter = &domain.WarningLetterBundle{
		TableData:         tableData,
		Kpis:              kpis,
		ByDeptChartData:   byDeptChart,
		ByTypeChartData:   byTypeChart,
		DamageByDeptChart: totalsToChart(damageByDept.sortedDesc()),
	}
	return nil
}
