package report

import (
	"sort"
	"strings"

	"hrpulse/pkg/contracts/domain"
)

// severityOrder is the fixed display priority for accident severity
// codes; codes outside the list sort alphabetically after the known ones.
var severityOrder = []string{"L", "M", "S"}

// assembleAccident builds the decoder/assembler shared by both accident
// report kinds; only the destination bundle field differs. Layout: col 0
// id, col 1 incident date, cols 2-11 descriptive fields, col 12 damage
// value, cols 13-17 follow-up fields. A row needs an employee id (col 6)
// or an employee name (col 7).
func assembleAccident(kind Kind) assembler {
	return func(_ row, body []row, bundle *domain.ReportBundle) error {
		tableData := make([]domain.AccidentRow, 0, len(body))
		for _, r := range body {
			if len(r) < 18 {
				continue
			}
			if r.str(6) == "" && r.str(7) == "" {
				continue
			}
			tableData = append(tableData, domain.AccidentRow{
				ID:               r.str(0),
				IncidentDate:     r.date(1),
				IncidentTime:     r.str(2),
				Severity:         r.str(3),
				Occurrence:       r.str(4),
				Department:       r.str(5),
				EmployeeID:       r.str(6),
				EmployeeName:     r.str(7),
				Position:         r.str(8),
				Details:          r.str(9),
				Cause:            r.str(10),
				Prevention:       r.str(11),
				DamageValue:      r.num(12),
				InsuranceClaim:   r.str(13),
				ActionTaken:      r.str(14),
				Penalty:          r.str(15),
				Remarks:          r.str(16),
				AccidentLocation: r.str(17),
			})
		}

		deptCounts := newGroupTotals()
		severityCounts := newGroupTotals()
		damageByDept := make(map[string]*domain.DepartmentDamage)
		damageOrder := []string{}
		severityByDept := make(map[string]*domain.DepartmentSeverity)
		severityDeptOrder := []string{}
		var totalDamage float64

		for _, ar := range tableData {
			if ar.Department != "" {
				deptCounts.add(ar.Department, 1)
			}
			if ar.Severity != "" {
				severityCounts.add(ar.Severity, 1)
			}
			totalDamage += ar.DamageValue

			dept := ar.Department
			if dept == "" {
				dept = "Unknown"
			}
			dd, ok := damageByDept[dept]
			if !ok {
				dd = &domain.DepartmentDamage{Department: dept}
				damageByDept[dept] = dd
				damageOrder = append(damageOrder, dept)
			}
			dd.TotalDamage += ar.DamageValue
			dd.CaseCount++

			severity := strings.TrimSpace(ar.Severity)
			if severity == "" {
				severity = "Unknown"
			}
			ds, ok := severityByDept[dept]
			if !ok {
				ds = &domain.DepartmentSeverity{Department: dept, Counts: map[string]int{}}
				severityByDept[dept] = ds
				severityDeptOrder = append(severityDeptOrder, dept)
			}
			ds.Counts[severity]++
			ds.Total++
		}

		chartData := totalsToChart(deptCounts.sortedDesc())
		topDept := "N/A"
		if len(chartData) > 0 {
			topDept = chartData[0].Name
		}

		kpis := []domain.Kpi{
			{Title: "totalIncidents", Value: formatCount(len(tableData)), Icon: "ExclamationTriangleIcon", Color: "text-brand-danger"},
			{Title: "totalDamage", Value: formatBaht(totalDamage, 0), Icon: "CurrencyDollarIcon", Color: "text-brand-warning"},
			{Title: "topDepartmentAccident", Value: topDept, Icon: "BuildingOfficeIcon", Color: "text-brand-primary"},
			{Title: "topSeverity", Value: severityCounts.top("N/A"), Icon: "ClipboardDocumentCheckIcon", Color: "text-brand-secondary"},
		}

		damageRanking := make([]domain.DepartmentDamage, 0, len(damageOrder))
		for _, dept := range damageOrder {
			damageRanking = append(damageRanking, *damageByDept[dept])
		}
		sort.SliceStable(damageRanking, func(i, j int) bool { return damageRanking[i].TotalDamage > damageRanking[j].TotalDamage })
		if len(damageRanking) > 4 {
			damageRanking = damageRanking[:4]
		}

		severityRanking := make([]domain.DepartmentSeverity, 0, len(severityDeptOrder))
		for _, dept := range severityDeptOrder {
			severityRanking = append(severityRanking, *severityByDept[dept])
		}
		sort.SliceStable(severityRanking, func(i, j int) bool { return severityRanking[i].Total > severityRanking[j].Total })
		if len(severityRanking) > 4 {
			severityRanking = severityRanking[:4]
		}

		out := &domain.AccidentBundle{
			TableData:      tableData,
			Kpis:           kpis,
			ChartData:      chartData,
			SeverityCounts: sortBySeverityPriority(severityCounts.entries()),
			DamageByDept:   damageRanking,
			SeverityByDept: severityRanking,
		}
		if kind == KindAccidentWH1 {
			bundle.AccidentWH1 = out
		} else {
			bundle.Accident = out
		}
		return nil
	}
}

// sortBySeverityPriority orders severity totals by the fixed priority
// list, with unknown codes alphabetical after the known ones.
func sortBySeverityPriority(entries []domain.CategoryTotal) []domain.CategoryTotal {
	rank := func(code string) int {
		for i, known := range severityOrder {
			if code == known {
				return i
			}
		}
		return -1
	}
	out := make([]domain.CategoryTotal, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i].Name), rank(out[j].Name)
		switch {
		case ri == -1 && rj == -1:
			return out[i].Name < out[j].Name
		case ri == -1:
			return false
		case rj == -1:
			return true
		default:
			return ri < rj
		}
	})
	return out
}
