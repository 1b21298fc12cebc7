package report

import (
	"strings"

	"hrpulse/pkg/contracts/domain"
)

// kpiColors is the rotation of brand color tags applied to KPI cards.
var kpiColors = [5]string{
	"text-brand-primary",
	"text-brand-secondary",
	"text-brand-success",
	"text-brand-danger",
	"text-brand-warning",
}

// assembleKpiReport decodes the positional KPI sheet and derives the KPI
// summary cards. Layout: col 0 sequence number, col 1 title (required),
// col 2 target, col 3 unit of measurement, cols 4-15 monthly values,
// col 16 score, col 17 pass/fail result, cols 18-22 free text.
func assembleKpiReport(_ row, body []row, bundle *domain.ReportBundle) error {
	tableRows := make([]domain.KpiRow, 0, len(body))
	for _, r := range body {
		if r.str(1) == "" {
			continue
		}
		monthly := make(map[string]string, 12)
		for i, month := range monthAbbrevs {
			monthly[month] = r.str(4 + i)
		}
		tableRows = append(tableRows, domain.KpiRow{
			KpiNo:             r.str(0),
			Title:             r.str(1),
			Measurement:       r.str(3),
			Target:            r.str(2),
			Score:             r.strOr(16, "N/A"),
			Result:            r.strOr(17, "N/A"),
			MonthlyData:       monthly,
			Description:       r.str(18),
			Objective:         r.str(19),
			MeasurementMethod: r.str(20),
			Responsible:       r.str(21),
			ImprovementPlan:   r.str(22),
		})
	}

	kpis := make([]domain.Kpi, 0, len(tableRows))
	for i, tr := range tableRows {
		direction := domain.TrendDown
		if strings.EqualFold(tr.Result, "PASS") {
			direction = domain.TrendUp
		}
		kpi := domain.Kpi{
			Title:          tr.Title,
			Value:          displayKpiScore(tr.Title, tr.Score),
			Trend:          tr.Result,
			TrendDirection: direction,
			Icon:           kpiIcon(tr.Title),
			Color:          kpiColors[i%len(kpiColors)],
		}
		if isForkliftAvailability(tr.Title) {
			kpi.SubValue = "days"
		}
		kpis = append(kpis, kpi)
	}

	bundle.KpiReport = &domain.KpiReportBundle{Kpis: kpis, TableRows: tableRows}
	return nil
}

// isForkliftAvailability matches the one KPI family whose score is a bare
// day count rather than a percentage. The "avaliability" spelling appears
// in real sheets.
func isForkliftAvailability(title string) bool {
	t := strings.ToLower(title)
	return (strings.Contains(t, "availability") && strings.Contains(t, "forklift")) ||
		strings.Contains(t, "ความพร้อมของรถยก") ||
		strings.Contains(t, "avaliability")
}

// displayKpiScore renders a score for its KPI card. The forklift
// availability family keeps its raw number; every other score is shown
// as a percentage, scaling fractions up when the sheet stored a ratio.
func displayKpiScore(title, score string) string {
	if score == "" || score == "N/A" || score == "-" {
		return score
	}
	n, ok := Number(score)
	if !ok {
		return score
	}
	if isForkliftAvailability(title) {
		return cellString(n)
	}
	return formatScorePercent(n)
}

func formatScorePercent(n float64) string {
	if n <= 1 && n > 0 {
		n *= 100
	}
	if isWholeNumber(n) {
		return formatNumber(n, 0) + "%"
	}
	return formatNumber(n, 2) + "%"
}

// kpiIcon classifies a KPI title into its card icon.
func kpiIcon(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "availability") || strings.Contains(t, "ความพร้อมของรถยก") || strings.Contains(t, "avaliability"):
		return "CubeIcon"
	case strings.Contains(t, "initiative") || strings.Contains(t, "carbon") || strings.Contains(t, "ลดการปล่อยก๊าซคาร์บอน"):
		return "SparklesIcon"
	case strings.Contains(t, "อัตราการเกิดอุบัติเหตุ") || strings.Contains(t, "ifr"):
		return "ShieldCheckIcon"
	case strings.Contains(t, "lean") || strings.Contains(t, "กำหนดแผนพัฒนา"):
		return "ChartPieIcon"
	case strings.Contains(t, "idp") || strings.Contains(t, "implementation"):
		return "AcademicCapIcon"
	default:
		return "ChartBarIcon"
	}
}
