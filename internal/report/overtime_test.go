package report

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrpulse/pkg/contracts/domain"
)

// otRow builds a 35-column overtime row with uniform monthly hours and pay.
func otRow(empID, name, dept string, monthlyHours, rate float64, year int) []domain.Cell {
	r := make([]domain.Cell, 35)
	r[0] = empID
	r[1] = empID
	r[2] = name
	r[3] = "Operator"
	r[4] = dept
	r[5] = "G3"
	r[6] = "ทำงาน"
	totalHours := 0.0
	totalPay := 0.0
	for i := 0; i < 12; i++ {
		r[7+i] = monthlyHours
		r[21+i] = monthlyHours * rate
		totalHours += monthlyHours
		totalPay += monthlyHours * rate
	}
	r[19] = totalHours
	r[20] = rate
	r[33] = totalPay
	r[34] = float64(year)
	return r
}

func TestAssembleOvertimeDepartmentAverages(t *testing.T) {
	grid := domain.RawGrid{
		{"header"},
		otRow("E1", "Somchai", "Milling", 10, 50, 2025),
	}

	bundle, err := Ingest(grid, KindOvertime)
	require.NoError(t, err)
	ob := bundle.Overtime
	require.NotNil(t, ob)
	require.Len(t, ob.AveragesByDept, 1)

	avg := ob.AveragesByDept[0]
	assert.Equal(t, "Milling", avg.Department)
	assert.Equal(t, 1, avg.EmployeeCount)
	assert.Equal(t, 120.0, avg.TotalOTHours)
	assert.InDelta(t, 10.0, avg.AvgOTHoursPerMonth, 1e-9)
	assert.InDelta(t, 120.0/52.14, avg.AvgOTHoursPerWeek, 1e-9)
}

func TestAssembleOvertimeRestrictsToLatestYear(t *testing.T) {
	grid := domain.RawGrid{
		{"header"},
		otRow("E1", "Somchai", "Milling", 10, 50, 2025),
		otRow("E2", "Suda", "Packing", 8, 40, 2025),
		otRow("E3", "Anan", "Milling", 20, 60, 2024),
	}

	bundle, err := Ingest(grid, KindOvertime)
	require.NoError(t, err)
	ob := bundle.Overtime

	require.Len(t, ob.TableData, 2)
	for _, r := range ob.TableData {
		assert.Equal(t, 2025, r.Year)
	}

	require.Len(t, ob.Kpis, 4)
	assert.Equal(t, "totalOtHours", ob.Kpis[0].Title)
	assert.Equal(t, "216", ob.Kpis[0].Value)
	require.NotNil(t, ob.Kpis[0].Comparison)
	assert.Equal(t, "57,776.75", ob.Kpis[0].Comparison.PreviousValue)
	assert.Equal(t, domain.TrendUp, ob.Kpis[0].TrendDirection)

	assert.Equal(t, "totalEmployeesOt", ob.Kpis[2].Title)
	assert.Equal(t, "2", ob.Kpis[2].Value)

	assert.Equal(t, "topDepartmentOt", ob.Kpis[3].Title)
	assert.Equal(t, "Milling", ob.Kpis[3].Value)
	assert.Nil(t, ob.Kpis[3].Comparison)
}

func TestAssembleOvertimeChartSeries(t *testing.T) {
	grid := domain.RawGrid{
		{"header"},
		otRow("E1", "Somchai", "Milling", 10, 50, 2025),
	}

	bundle, err := Ingest(grid, KindOvertime)
	require.NoError(t, err)
	chart := bundle.Overtime.ChartData
	require.Len(t, chart, 12)
	assert.Equal(t, "Jan", chart[0].Name)
	assert.Equal(t, 10.0, chart[0].Series["otHours"])
	assert.Equal(t, 500.0, chart[0].Series["otPay"])
}

func TestAssembleOvertimeTopEmployeesTruncated(t *testing.T) {
	grid := domain.RawGrid{{"header"}}
	for i := 0; i < 12; i++ {
		grid = append(grid, otRow("E"+strconv.Itoa(i), "Emp", "Milling", float64(i+1), 10, 2025))
	}

	bundle, err := Ingest(grid, KindOvertime)
	require.NoError(t, err)
	top := bundle.Overtime.TopEmployees
	require.Len(t, top, 10)
	assert.Equal(t, "E11", top[0].EmployeeID)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].TotalOT, top[i].TotalOT)
	}
}

func TestAssembleOvertimeEmptySheet(t *testing.T) {
	grid := domain.RawGrid{
		{"header"},
		{"short row without employee id"},
	}

	bundle, err := Ingest(grid, KindOvertime)
	require.NoError(t, err)
	ob := bundle.Overtime
	require.NotNil(t, ob)
	assert.Empty(t, ob.TableData)
	assert.Empty(t, ob.Kpis)
	assert.Empty(t, ob.ChartData)
	assert.Empty(t, ob.TopEmployees)
}
