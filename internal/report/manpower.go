package report

import (
	"sort"

	"hrpulse/pkg/contracts/domain"
)

// Header labels the manpower sheet is recognized by. Generic roster
// exports without both marker columns are a schema mismatch, not a
// best-effort decode.
const (
	manpowerMarkerTarget  = "MANPOWER"
	manpowerMarkerCurrent = "CURRENT"
)

// assembleManpower decodes the header-keyed manpower roster and builds
// the headcount shortfall analytics. This is the one kind where a
// malformed file is a hard error.
func assembleManpower(header row, body []row, bundle *domain.ReportBundle) error {
	idx := newHeaderIndex(header)
	if !idx.has(manpowerMarkerTarget) || !idx.has(manpowerMarkerCurrent) {
		return schemaErr(KindManpower, "sheet does not match the expected manpower format: missing %s/%s columns",
			manpowerMarkerTarget, manpowerMarkerCurrent)
	}

	tableData := make([]domain.ManpowerRow, 0, len(body))
	for _, r := range body {
		if r.isEmpty() {
			continue
		}
		tableData = append(tableData, domain.ManpowerRow{
			ID:              idx.str(r, "NO."),
			EmployeeID:      idx.str(r, "EMP."),
			Name:            idx.str(r, "NAME-SURENAME"),
			Position:        idx.str(r, "POSITION"),
			Department:      idx.strOr(r, "DEPT.", "N/A"),
			Grade:           idx.str(r, "Grade"),
			Status:          idx.strOr(r, "STATUS", "Unknown"),
			Manpower:        idx.str(r, manpowerMarkerTarget),
			Current:         idx.str(r, manpowerMarkerCurrent),
			HireDate:        idx.date(r, "HIRE DATE"),
			TerminationDate: idx.date(r, "ทำงานวันสุดท้าย"),
		})
	}

	var totalManpower, totalCurrent float64
	departments := stringSet{}
	deptHeadcount := newGroupTotals()
	comparisonByDept := make(map[string]*domain.DepartmentComparison)
	deptOrder := []string{}

	for _, mr := range tableData {
		manpower := numberOrZero(mr.Manpower)
		current := numberOrZero(mr.Current)
		totalManpower += manpower
		totalCurrent += current
		departments.add(mr.Department)
		deptHeadcount.add(mr.Department, 1)

		dc, ok := comparisonByDept[mr.Department]
		if !ok {
			dc = &domain.DepartmentComparison{Department: mr.Department}
			comparisonByDept[mr.Department] = dc
			deptOrder = append(deptOrder, mr.Department)
		}
		dc.Manpower += manpower
		dc.Current += current

		if needed := manpower - current; needed > 0 {
			merged := false
			for i := range dc.NeededPositions {
				if dc.NeededPositions[i].Position == mr.Position {
					dc.NeededPositions[i].Count += needed
					merged = true
					break
				}
			}
			if !merged {
				dc.NeededPositions = append(dc.NeededPositions, domain.NeededPosition{Position: mr.Position, Count: needed})
			}
		}
	}

	additionalNeeded := totalManpower - totalCurrent
	if additionalNeeded < 0 {
		additionalNeeded = 0
	}
	currentPct, neededPct := 0.0, 0.0
	if totalManpower > 0 {
		currentPct = totalCurrent / totalManpower * 100
		neededPct = additionalNeeded / totalManpower * 100
	}

	kpis := []domain.Kpi{
		{
			Title: "manpowerTotal", Value: formatNumber(totalManpower, 0),
			SubValue: "(100%)", SubValuePosition: "bottom",
			Icon: "UserGroupIcon", Color: "text-brand-success",
		},
		{
			Title: "totalEmployees", Value: formatNumber(totalCurrent, 0),
			SubValue: "(" + formatNumber(currentPct, 2) + "%)", SubValuePosition: "bottom",
			Icon: "UsersIcon", Color: "text-brand-primary",
		},
		{
			Title: "additionalManpowerNeeded", Value: formatNumber(additionalNeeded, 0),
			SubValue: "(" + formatNumber(neededPct, 2) + "%)", SubValuePosition: "bottom",
			Icon: "UserGroupIcon", Color: "text-brand-warning",
		},
		{
			Title: "totalDepartments", Value: formatCount(len(departments)),
			Icon: "BuildingOfficeIcon", Color: "text-brand-secondary",
		},
	}

	statusChart := []domain.ChartPoint{
		{Name: "manpowerTotal", Value: totalManpower},
		{Name: "currentTotal", Value: totalCurrent},
	}

	comparisons := make([]domain.DepartmentComparison, 0, len(deptOrder))
	for _, dept := range deptOrder {
		dc := *comparisonByDept[dept]
		dc.Needed = dc.Manpower - dc.Current
		if dc.Needed < 0 {
			dc.Needed = 0
		}
		sort.SliceStable(dc.NeededPositions, func(i, j int) bool {
			return dc.NeededPositions[i].Count > dc.NeededPositions[j].Count
		})
		comparisons = append(comparisons, dc)
	}
	sort.SliceStable(comparisons, func(i, j int) bool { return comparisons[i].Department < comparisons[j].Department })

	bundle.Manpower = &domain.ManpowerBundle{
		TableData:            tableData,
		Kpis:                 kpis,
		StatusChartData:      statusChart,
		DeptChartData:        totalsToChart(topN(deptHeadcount.sortedDesc(), 10)),
		DepartmentComparison: comparisons,
	}
	return nil
}
