package report

import (
	"sort"
	"time"

	"hrpulse/pkg/contracts/domain"
)

// Prior-year baselines for the overtime comparisons. The previous year's
// sheet is not uploaded alongside the current one, so the closed totals
// are carried as constants.
const (
	overtimePrevYearHours     = 57776.75
	overtimePrevYearPay       = 5230099.63
	overtimePrevYearEmployees = 105
)

// weeksPerYear is the average number of weeks in a calendar year,
// including the fractional week at the boundary. Not 52.
const weeksPerYear = 52.14

// assembleOvertime decodes the positional overtime sheet. Layout:
// cols 0-6 identity fields, cols 7-18 monthly hours, col 19 total hours,
// col 20 rate, cols 21-32 monthly pay, col 33 total pay, col 34 year
// (optional; current year when absent). A row needs an employee id.
// The working set is then restricted to the maximum year present.
func assembleOvertime(_ row, body []row, bundle *domain.ReportBundle) error {
	currentYear := time.Now().Year()

	tableData := make([]domain.OvertimeRow, 0, len(body))
	for _, r := range body {
		if len(r) < 34 {
			continue
		}
		if r.str(1) == "" {
			continue
		}
		year := int(r.num(34))
		if year == 0 {
			year = currentYear
		}
		tableData = append(tableData, domain.OvertimeRow{
			ID:           r.str(0),
			EmployeeID:   r.str(1),
			Name:         r.str(2),
			Position:     r.str(3),
			Department:   r.str(4),
			Grade:        r.str(5),
			Status:       r.str(6),
			MonthlyOT:    r.numSeq(7, 12),
			TotalOT:      r.num(19),
			OTRate:       r.num(20),
			MonthlyOTPay: r.numSeq(21, 12),
			TotalOTPay:   r.num(33),
			Year:         year,
		})
	}

	if len(tableData) == 0 {
		bundle.Overtime = &domain.OvertimeBundle{
			TableData:      []domain.OvertimeRow{},
			Kpis:           []domain.Kpi{},
			ChartData:      []domain.ChartPoint{},
			AveragesByDept: []domain.OvertimeAverage{},
			TopEmployees:   []domain.OvertimeRow{},
			TopDepartments: []domain.OvertimeDepartmentTotal{},
		}
		return nil
	}

	targetYear := 0
	for _, r := range tableData {
		if r.Year > targetYear {
			targetYear = r.Year
		}
	}
	if targetYear == 0 {
		targetYear = currentYear
	}

	thisYear := make([]domain.OvertimeRow, 0, len(tableData))
	for _, r := range tableData {
		if r.Year == targetYear {
			thisYear = append(thisYear, r)
		}
	}

	var totalHours, totalPay float64
	var monthlyHours, monthlyPay [12]float64
	deptHours := newGroupTotals()
	deptPay := newGroupTotals()
	deptEmployees := make(map[string]stringSet)

	for _, r := range thisYear {
		totalHours += r.TotalOT
		totalPay += r.TotalOTPay
		for i := 0; i < 12; i++ {
			monthlyHours[i] += r.MonthlyOT[i]
			monthlyPay[i] += r.MonthlyOTPay[i]
		}
		deptHours.add(r.Department, r.TotalOT)
		deptPay.add(r.Department, r.TotalOTPay)
		set, ok := deptEmployees[r.Department]
		if !ok {
			set = stringSet{}
			deptEmployees[r.Department] = set
		}
		set.add(r.EmployeeID)
	}

	hoursComparison := strictYearComparison(totalHours, overtimePrevYearHours, false)
	payComparison := strictYearComparison(totalPay, overtimePrevYearPay, true)
	employeesComparison := strictYearComparison(float64(len(thisYear)), overtimePrevYearEmployees, false)

	kpis := []domain.Kpi{
		{
			Title:          "totalOtHours",
			Value:          formatNumber(totalHours, 0),
			Icon:           "ClockIcon",
			Color:          "text-brand-primary",
			Comparison:     hoursComparison,
			TrendDirection: trendFromComparison(hoursComparison),
		},
		{
			Title:          "totalOtPay",
			Value:          formatBaht(totalPay, 0),
			Icon:           "CurrencyDollarIcon",
			Color:          "text-brand-success",
			Comparison:     payComparison,
			TrendDirection: trendFromComparison(payComparison),
		},
		{
			Title:          "totalEmployeesOt",
			Value:          formatCount(len(thisYear)),
			Icon:           "UsersIcon",
			Color:          "text-brand-secondary",
			Comparison:     employeesComparison,
			TrendDirection: trendFromComparison(employeesComparison),
		},
		{
			Title: "topDepartmentOt",
			Value: deptHours.top("N/A"),
			Icon:  "BuildingOfficeIcon",
			Color: "text-brand-warning",
		},
	}

	chartData := make([]domain.ChartPoint, 12)
	for i := range chartData {
		chartData[i] = domain.ChartPoint{
			Name: monthAbbrevs[i],
			Series: map[string]float64{
				"otHours": monthlyHours[i],
				"otPay":   monthlyPay[i],
			},
		}
	}

	averages := make([]domain.OvertimeAverage, 0, len(deptHours.order))
	for _, dept := range deptHours.order {
		hours := deptHours.get(dept)
		count := len(deptEmployees[dept])
		avg := domain.OvertimeAverage{
			Department:    dept,
			EmployeeCount: count,
			TotalOTHours:  hours,
		}
		if count > 0 {
			avg.AvgOTHoursPerMonth = hours / 12 / float64(count)
			avg.AvgOTHoursPerWeek = hours / weeksPerYear / float64(count)
		}
		averages = append(averages, avg)
	}

	topEmployees := make([]domain.OvertimeRow, len(thisYear))
	copy(topEmployees, thisYear)
	sort.SliceStable(topEmployees, func(i, j int) bool { return topEmployees[i].TotalOT > topEmployees[j].TotalOT })
	if len(topEmployees) > 10 {
		topEmployees = topEmployees[:10]
	}

	topDepartments := make([]domain.OvertimeDepartmentTotal, 0, len(deptHours.order))
	for _, dept := range deptHours.order {
		topDepartments = append(topDepartments, domain.OvertimeDepartmentTotal{
			Name:       dept,
			TotalHours: deptHours.get(dept),
			TotalPay:   deptPay.get(dept),
		})
	}
	sort.SliceStable(topDepartments, func(i, j int) bool { return topDepartments[i].TotalHours > topDepartments[j].TotalHours })
	if len(topDepartments) > 10 {
		topDepartments = topDepartments[:10]
	}

	bundle.Overtime = &domain.OvertimeBundle{
		TableData:      thisYear,
		Kpis:           kpis,
		ChartData:      chartData,
		AveragesByDept: averages,
		TopEmployees:   topEmployees,
		TopDepartments: topDepartments,
	}
	return nil
}
