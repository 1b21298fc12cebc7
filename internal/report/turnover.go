package report

import (
	"sort"
	"strings"

	"hrpulse/pkg/contracts/domain"
)

// Employment status values carried by the turnover sheet.
const (
	statusActive   = "ทำงาน"
	statusResigned = "ลาออก"
)

// turnoverHireYear pins the "new hires" cohort to the current reporting
// year, matching the hardcoded ranking years elsewhere.
const turnoverHireYear = 2025

// Prior-year turnover baselines for the KPI comparisons.
const (
	turnoverPrevYearResignations = 32
	turnoverPrevYearAvgTenure    = 3.12
)

// assembleTurnover decodes the header-keyed turnover roster into the
// wide biographical record and derives resignation analytics. A row
// needs an employee id.
func assembleTurnover(header row, body []row, bundle *domain.ReportBundle) error {
	idx := newHeaderIndex(header)

	tableData := make([]domain.TurnoverRow, 0, len(body))
	for _, r := range body {
		if idx.str(r, "EMP.") == "" {
			continue
		}
		tableData = append(tableData, domain.TurnoverRow{
			ID:                idx.str(r, "NO."),
			EmployeeID:        idx.str(r, "EMP."),
			Name:              idx.str(r, "NAME-SURENAME"),
			Position:          idx.str(r, "POSITION"),
			Status:            idx.str(r, "สถานะ"),
			CostCenter:        idx.str(r, "COST CENTER"),
			Department:        idx.strOr(r, "DEPT.", "N/A"),
			Grade:             idx.str(r, "Grade"),
			HireDateBuddhist:  idx.date(r, "วันเริ่มงาน (พ.ศ.)"),
			HireDate:          idx.date(r, "วันเริ่มงาน (ค.ศ.)"),
			TenureYears:       idx.num(r, "อายุงาน (ปี)"),
			TenureMonths:      idx.num(r, "อายุงาน (เดือน)"),
			TenureDays:        idx.num(r, "อายุงาน (วัน)"),
			ProbationPassDate: idx.date(r, "วันที่ผ่านทดลองงาน"),
			Nickname:          idx.str(r, "ชื่อเล่น"),
			Now:               idx.date(r, "=Now"),
			DateOfBirth:       idx.date(r, "วัน-เดือน-ปีเกิด"),
			Age:               idx.num(r, "อายุ"),
			Religion:          idx.str(r, "ศาสนา"),
			Mobile:            idx.str(r, "โทรศัพท์มือถือ"),
			Hometown:          idx.str(r, "ภูมิลำเนา"),
			Education:         idx.str(r, "วุฒิการศึกษา"),
			EmploymentType:    idx.str(r, "STATUS"),
			TerminationDate:   idx.date(r, "ทำงานวันสุดท้าย"),
			EffectiveDate:     idx.date(r, "วันที่มีผล"),
			ReasonForLeaving:  idx.str(r, "สาเหตุการลาออก"),
		})
	}

	var resignations, hires int
	var totalTenure float64
	reasonCounts := newGroupTotals()
	deptResignations := newGroupTotals()
	var hiresByMonth, resignationsByMonth [12]float64
	type deptFlow struct {
		newHires, resignations int
	}
	deptFlows := make(map[string]*deptFlow)
	deptOrder := []string{}

	flowFor := func(dept string) *deptFlow {
		if dept == "" {
			dept = "Unknown"
		}
		df, ok := deptFlows[dept]
		if !ok {
			df = &deptFlow{}
			deptFlows[dept] = df
			deptOrder = append(deptOrder, dept)
		}
		return df
	}

	for _, tr := range tableData {
		switch tr.Status {
		case statusResigned:
			resignations++
			totalTenure += tr.TenureYears
			if reason := strings.TrimSpace(tr.ReasonForLeaving); reason != "" {
				reasonCounts.add(reason, 1)
			} else {
				reasonCounts.add("Unknown", 1)
			}
			deptResignations.add(strings.TrimSpace(orUnknown(tr.Department)), 1)
			flowFor(tr.Department).resignations++
			if m := monthOfDMY(tr.TerminationDate); m >= 0 {
				resignationsByMonth[m]++
			}
		case statusActive:
			if yearOfDMY(tr.HireDate) == turnoverHireYear {
				hires++
				flowFor(tr.Department).newHires++
				if m := monthOfDMY(tr.HireDate); m >= 0 {
					hiresByMonth[m]++
				}
			}
		}
	}

	avgTenure := 0.0
	if resignations > 0 {
		avgTenure = totalTenure / float64(resignations)
	}

	turnoverDelta, _ := percentChange(float64(resignations), turnoverPrevYearResignations)
	turnoverComparison := yearComparison(float64(resignations), turnoverPrevYearResignations, false, 0, true)
	turnoverTrend := trendFromDelta(turnoverDelta)

	tenureDelta, _ := percentChange(avgTenure, turnoverPrevYearAvgTenure)
	tenureComparison := yearComparison(avgTenure, turnoverPrevYearAvgTenure, false, 2, true)
	// Longer tenure is good, so growth trends up here.
	tenureTrend := domain.TrendDown
	if tenureDelta > 0 {
		tenureTrend = domain.TrendUp
	}

	kpis := []domain.Kpi{
		{
			Title: "totalTurnover", Value: formatCount(resignations),
			Icon: "UsersIcon", Color: "text-brand-danger",
			Comparison: turnoverComparison, TrendDirection: turnoverTrend,
		},
		{
			Title: "avgTenure", Value: formatNumber(avgTenure, 2), SubValue: "year",
			Icon: "ClockIcon", Color: "text-brand-primary",
			Comparison: tenureComparison, TrendDirection: tenureTrend,
		},
		{Title: "topReasonForLeaving", Value: reasonCounts.top("N/A"), Icon: "QuestionMarkCircleIcon", Color: "text-brand-warning"},
		{Title: "topDeptByTurnover", Value: deptResignations.top("N/A"), Icon: "BuildingOfficeIcon", Color: "text-brand-secondary"},
	}

	monthlyChartData := make([]domain.ChartPoint, 12)
	for i := range monthlyChartData {
		monthlyChartData[i] = domain.ChartPoint{
			Name: monthAbbrevs[i],
			Series: map[string]float64{
				"newHires":     hiresByMonth[i],
				"resignations": resignationsByMonth[i],
			},
		}
	}

	deptChartData := make([]domain.ChartPoint, 0, len(deptOrder))
	for _, dept := range deptOrder {
		df := deptFlows[dept]
		deptChartData = append(deptChartData, domain.ChartPoint{
			Name:  dept,
			Value: float64(df.newHires + df.resignations),
			Series: map[string]float64{
				"newHires":     float64(df.newHires),
				"resignations": float64(df.resignations),
			},
		})
	}
	sort.SliceStable(deptChartData, func(i, j int) bool { return deptChartData[i].Value > deptChartData[j].Value })

	bundle.Turnover = &domain.TurnoverBundle{
		TableData:        tableData,
		Kpis:             kpis,
		MonthlyChartData: monthlyChartData,
		ReasonChartData:  reasonCounts.sortedDesc(),
		DeptChartData:    deptChartData,
	}
	return nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
