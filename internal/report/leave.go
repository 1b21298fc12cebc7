package report

import (
	"math"
	"sort"
	"strconv"

	"hrpulse/pkg/contracts/domain"
)

// assembleLeave decodes the positional leave sheet. Layout: cols 0-6
// identity fields, cols 7-18 monthly leave, col 19 leave without
// vacation, col 20 total leave with vacation, cols 21-29 the named leave
// category totals, col 30 total leave. A row needs an employee id.
func assembleLeave(_ row, body []row, bundle *domain.ReportBundle) error {
	tableData := make([]domain.LeaveRow, 0, len(body))
	for i, r := range body {
		if len(r) < 31 {
			continue
		}
		if r.str(1) == "" {
			continue
		}
		tableData = append(tableData, domain.LeaveRow{
			ID:                     r.strOr(0, strconv.Itoa(i+1)),
			EmployeeID:             r.str(1),
			Name:                   r.str(2),
			Position:               r.str(3),
			Department:             r.str(4),
			Grade:                  r.str(5),
			Status:                 r.str(6),
			MonthlyLeave:           r.numSeq(7, 12),
			LeaveWithoutVacation:   r.num(19),
			TotalLeaveWithVacation: r.num(20),
			VacationCarriedOver:    r.num(21),
			VacationEntitlement:    r.num(22),
			TotalVacation:          r.num(23),
			VacationUsed:           r.num(24),
			VacationAccrued:        r.num(25),
			SickLeave:              r.num(26),
			PersonalLeave:          r.num(27),
			BirthdayLeave:          r.num(28),
			OtherLeave:             r.num(29),
			TotalLeave:             r.num(30),
		})
	}

	// The monthly columns mix vacation into the totals; each month is
	// scaled by the row's non-vacation share to approximate the
	// non-vacation component.
	var monthlyTotals [12]float64
	deptTotals := newGroupTotals()
	leaveTypes := newGroupTotals()
	var totalLeaveAll float64

	for _, lr := range tableData {
		ratio := 0.0
		if lr.TotalLeave > 0 {
			ratio = lr.LeaveWithoutVacation / lr.TotalLeave
		}
		for i, v := range lr.MonthlyLeave {
			monthlyTotals[i] += v * ratio
		}
		deptTotals.add(lr.Department, lr.LeaveWithoutVacation)
		leaveTypes.add("Sick", lr.SickLeave)
		leaveTypes.add("Personal", lr.PersonalLeave)
		leaveTypes.add("Birthday", lr.BirthdayLeave)
		leaveTypes.add("Other", lr.OtherLeave)
		leaveTypes.add("Vacation", lr.VacationUsed)
		totalLeaveAll += lr.LeaveWithoutVacation
	}

	nonVacation := newGroupTotals()
	for _, e := range leaveTypes.entries() {
		if e.Name != "Vacation" {
			nonVacation.add(e.Name, e.Value)
		}
	}
	topLeaveType := nonVacation.top("N/A")

	topMonth := 0
	for i, v := range monthlyTotals {
		if v > monthlyTotals[topMonth] {
			topMonth = i
		}
	}

	kpis := []domain.Kpi{
		{Title: "totalLeaveDays", Value: formatCount(int(math.Round(totalLeaveAll))), Icon: "CalendarDaysIcon", Color: "text-brand-primary"},
		{Title: "topLeaveType", Value: topLeaveType, Icon: "ClipboardDocumentCheckIcon", Color: "text-brand-secondary"},
		{Title: "topDepartmentLeave", Value: deptTotals.top("N/A"), Icon: "BuildingOfficeIcon", Color: "text-brand-warning"},
		{Title: "topMonthLeave", Value: monthAbbrevs[topMonth], Icon: "ChartBarIcon", Color: "text-brand-success"},
	}

	topEmployees := make([]domain.LeaveRow, len(tableData))
	copy(topEmployees, tableData)
	sort.SliceStable(topEmployees, func(i, j int) bool {
		return topEmployees[i].LeaveWithoutVacation > topEmployees[j].LeaveWithoutVacation
	})
	if len(topEmployees) > 10 {
		topEmployees = topEmployees[:10]
	}

	bundle.Leave = &domain.LeaveBundle{
		TableData:      tableData,
		Kpis:           kpis,
		ChartData:      monthlyChart(monthlyTotals),
		TopEmployees:   topEmployees,
		TopDepartments: topN(deptTotals.sortedDesc(), 5),
	}
	return nil
}
