package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrpulse/pkg/contracts/domain"
)

// leaveRow builds a 31-column leave row. Monthly values land in January
// and February only.
func leaveRow(empID, dept string, jan, feb, withoutVacation, vacationUsed, sick, personal, total float64) []domain.Cell {
	r := make([]domain.Cell, 31)
	r[0] = empID
	r[1] = empID
	r[2] = "Employee"
	r[3] = "Operator"
	r[4] = dept
	r[5] = "G2"
	r[6] = "ทำงาน"
	r[7] = jan
	r[8] = feb
	r[19] = withoutVacation
	r[20] = total
	r[24] = vacationUsed
	r[26] = sick
	r[27] = personal
	r[30] = total
	return r
}

func TestAssembleLeaveKpis(t *testing.T) {
	grid := domain.RawGrid{
		{"header"},
		// 8 non-vacation days of 10 total; sick dominates.
		leaveRow("E1", "Milling", 6, 4, 8, 2, 6, 2, 10),
		leaveRow("E2", "Packing", 1, 0, 1, 0, 0, 1, 1),
	}

	bundle, err := Ingest(grid, KindLeave)
	require.NoError(t, err)
	lb := bundle.Leave
	require.NotNil(t, lb)
	require.Len(t, lb.TableData, 2)

	kpis := lb.Kpis
	require.Len(t, kpis, 4)
	assert.Equal(t, "totalLeaveDays", kpis[0].Title)
	assert.Equal(t, "9", kpis[0].Value)

	// Vacation is excluded from the leave-type ranking.
	assert.Equal(t, "topLeaveType", kpis[1].Title)
	assert.Equal(t, "Sick", kpis[1].Value)

	assert.Equal(t, "topDepartmentLeave", kpis[2].Title)
	assert.Equal(t, "Milling", kpis[2].Value)

	assert.Equal(t, "topMonthLeave", kpis[3].Title)
	assert.Equal(t, "Jan", kpis[3].Value)
}

func TestAssembleLeaveMonthlyScaling(t *testing.T) {
	grid := domain.RawGrid{
		{"header"},
		// 5 of 10 total days are non-vacation, so each month halves.
		leaveRow("E1", "Milling", 4, 6, 5, 5, 5, 0, 10),
	}

	bundle, err := Ingest(grid, KindLeave)
	require.NoError(t, err)
	chart := bundle.Leave.ChartData
	require.Len(t, chart, 12)
	assert.InDelta(t, 2.0, chart[0].Value, 1e-9)
	assert.InDelta(t, 3.0, chart[1].Value, 1e-9)
	assert.Equal(t, 0.0, chart[2].Value)
}

func TestAssembleLeaveZeroTotalContributesNothing(t *testing.T) {
	grid := domain.RawGrid{
		{"header"},
		leaveRow("E1", "Milling", 3, 0, 0, 0, 0, 0, 0),
	}

	bundle, err := Ingest(grid, KindLeave)
	require.NoError(t, err)
	assert.Equal(t, 0.0, bundle.Leave.ChartData[0].Value)
}

func TestAssembleLeaveTopDepartmentsLimitedToFive(t *testing.T) {
	grid := domain.RawGrid{{"header"}}
	depts := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, d := range depts {
		grid = append(grid, leaveRow("E"+d, d, 1, 0, float64(i+1), 0, float64(i+1), 0, float64(i+1)))
	}

	bundle, err := Ingest(grid, KindLeave)
	require.NoError(t, err)
	top := bundle.Leave.TopDepartments
	require.Len(t, top, 5)
	assert.Equal(t, "G", top[0].Name)
	assert.Equal(t, 7.0, top[0].Value)
}
