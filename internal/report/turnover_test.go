package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrpulse/pkg/contracts/domain"
)

var turnoverHeader = []domain.Cell{
	"NO.", "EMP.", "NAME-SURENAME", "POSITION", "สถานะ", "COST CENTER", "DEPT.", "Grade",
	"วันเริ่มงาน (พ.ศ.)", "วันเริ่มงาน (ค.ศ.)", "อายุงาน (ปี)", "อายุงาน (เดือน)", "อายุงาน (วัน)",
	"วันที่ผ่านทดลองงาน", "ชื่อเล่น", "=Now", "วัน-เดือน-ปีเกิด", "อายุ", "ศาสนา",
	"โทรศัพท์มือถือ", "ภูมิลำเนา", "วุฒิการศึกษา", "STATUS", "ทำงานวันสุดท้าย", "วันที่มีผล", "สาเหตุการลาออก",
}

func turnoverRow(empID, status, dept, hireDate string, tenureYears float64, terminationDate, reason string) []domain.Cell {
	r := make([]domain.Cell, len(turnoverHeader))
	r[0] = "1"
	r[1] = empID
	r[2] = "Employee"
	r[3] = "Operator"
	r[4] = status
	r[6] = dept
	r[9] = hireDate
	r[10] = tenureYears
	r[23] = terminationDate
	r[25] = reason
	return r
}

func TestAssembleTurnoverResignationStats(t *testing.T) {
	grid := domain.RawGrid{
		turnoverHeader,
		turnoverRow("E1", "ลาออก", "Milling", "01/06/2020", 4, "15/02/2025", "ได้งานใหม่"),
		turnoverRow("E2", "ลาออก", "Milling", "01/06/2022", 2, "20/03/2025", "ได้งานใหม่"),
		turnoverRow("E3", "ลาออก", "Packing", "01/06/2024", 0.5, "10/02/2025", ""),
		turnoverRow("E4", "ทำงาน", "Packing", "15/01/2025", 0.1, "", ""),
		turnoverRow("E5", "ทำงาน", "Packing", "15/01/2019", 6, "", ""),
	}

	bundle, err := Ingest(grid, KindTurnover)
	require.NoError(t, err)
	tb := bundle.Turnover
	require.NotNil(t, tb)
	require.Len(t, tb.TableData, 5)

	kpis := tb.Kpis
	require.Len(t, kpis, 4)
	assert.Equal(t, "totalTurnover", kpis[0].Title)
	assert.Equal(t, "3", kpis[0].Value)
	require.NotNil(t, kpis[0].Comparison)
	assert.Equal(t, "-29", kpis[0].Comparison.Value)
	assert.Equal(t, "32", kpis[0].Comparison.PreviousValue)
	assert.Equal(t, domain.TrendUp, kpis[0].TrendDirection)

	// 6.5 tenure years over 3 resignations.
	assert.Equal(t, "avgTenure", kpis[1].Title)
	assert.Equal(t, "2.17", kpis[1].Value)
	assert.Equal(t, "year", kpis[1].SubValue)
	assert.Equal(t, domain.TrendDown, kpis[1].TrendDirection)

	assert.Equal(t, "topReasonForLeaving", kpis[2].Title)
	assert.Equal(t, "ได้งานใหม่", kpis[2].Value)

	assert.Equal(t, "topDeptByTurnover", kpis[3].Title)
	assert.Equal(t, "Milling", kpis[3].Value)
}

func TestAssembleTurnoverMonthlyFlows(t *testing.T) {
	grid := domain.RawGrid{
		turnoverHeader,
		turnoverRow("E1", "ลาออก", "Milling", "01/06/2020", 4, "15/02/2025", "x"),
		// Active but hired before the cohort year: not a new hire.
		turnoverRow("E2", "ทำงาน", "Milling", "15/01/2019", 6, "", ""),
		turnoverRow("E3", "ทำงาน", "Packing", "10/03/2025", 0.2, "", ""),
	}

	bundle, err := Ingest(grid, KindTurnover)
	require.NoError(t, err)
	monthly := bundle.Turnover.MonthlyChartData
	require.Len(t, monthly, 12)

	assert.Equal(t, 1.0, monthly[1].Series["resignations"], "Feb resignation")
	assert.Equal(t, 1.0, monthly[2].Series["newHires"], "Mar hire")
	assert.Equal(t, 0.0, monthly[0].Series["newHires"], "2019 hire excluded")

	dept := bundle.Turnover.DeptChartData
	require.Len(t, dept, 2)
	assert.Equal(t, "Milling", dept[0].Name)
	assert.Equal(t, 1.0, dept[0].Series["resignations"])
	assert.Equal(t, 0.0, dept[0].Series["newHires"])
}

func TestAssembleTurnoverBlankReasonBecomesUnknown(t *testing.T) {
	grid := domain.RawGrid{
		turnoverHeader,
		turnoverRow("E1", "ลาออก", "Packing", "01/06/2024", 1, "10/02/2025", "  "),
	}

	bundle, err := Ingest(grid, KindTurnover)
	require.NoError(t, err)
	reasons := bundle.Turnover.ReasonChartData
	require.Len(t, reasons, 1)
	assert.Equal(t, "Unknown", reasons[0].Name)
}
