package report

import (
	"math"
	"strings"
	"time"

	"hrpulse/pkg/contracts/domain"
)

// purchaseStatusKeywords normalizes free-form status text (Thai or
// English) to the closed status set by substring match. The table is
// consulted before the canonical pass-through check.
var purchaseStatusKeywords = []struct {
	keywords []string
	status   domain.PurchaseStatus
}{
	{[]string{"อนุมัติ", "approved"}, domain.PurchaseApproved},
	{[]string{"เสร็จสมบูรณ์", "completed"}, domain.PurchaseCompleted},
	{[]string{"สั่งซื้อแล้ว", "ordered"}, domain.PurchaseOrdered},
	{[]string{"ปฏิเสธ", "rejected"}, domain.PurchaseRejected},
	{[]string{"pending", "รอ"}, domain.PurchasePending},
}

// normalizePurchaseStatus maps raw status text to the closed set,
// defaulting to Pending when nothing matches.
func normalizePurchaseStatus(raw string) domain.PurchaseStatus {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.PurchasePending
	}
	lowered := strings.ToLower(trimmed)
	for _, entry := range purchaseStatusKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.status
			}
		}
	}
	switch domain.PurchaseStatus(trimmed) {
	case domain.PurchasePending, domain.PurchaseApproved, domain.PurchaseRejected, domain.PurchaseOrdered, domain.PurchaseCompleted:
		return domain.PurchaseStatus(trimmed)
	}
	return domain.PurchasePending
}

// committedStatuses are the states whose value counts toward spend.
func isCommittedStatus(s domain.PurchaseStatus) bool {
	return s == domain.PurchaseApproved || s == domain.PurchaseOrdered || s == domain.PurchaseCompleted
}

// leadTimeDays computes the whole-day lead time between the PR open date
// and the goods received date, both dd/mm/yyyy. It is 0 unless both
// dates parse and the received date is not earlier than the open date.
func leadTimeDays(openDate, receivedDate string) int {
	start, okStart := parseDMY(openDate)
	end, okEnd := parseDMY(receivedDate)
	if !okStart || !okEnd || end.Before(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// assemblePurchaseRequest decodes the header-keyed purchase request sheet.
// A row needs a PR number.
func assemblePurchaseRequest(header row, body []row, bundle *domain.ReportBundle) error {
	idx := newHeaderIndex(header)

	tableData := make([]domain.PurchaseRequestRow, 0, len(body))
	for _, r := range body {
		if idx.str(r, "เลขที่ PR") == "" {
			continue
		}
		openDate := idx.date(r, "วันที่เปิด PR")
		receivedDate := idx.date(r, "วันที่รับสินค้า")
		tableData = append(tableData, domain.PurchaseRequestRow{
			ID:                idx.str(r, "เลขที่ PR"),
			Date:              openDate,
			Department:        idx.strOr(r, "ส่วนงาน", "Unknown"),
			ItemDescription:   idx.str(r, "รายการสั่งซื้อ"),
			Quantity:          idx.num(r, "จำนวน"),
			Unit:              idx.str(r, "หน่วย"),
			UnitPrice:         idx.num(r, "ราคา/หน่วย"),
			TotalPrice:        idx.num(r, "รวมจำนวนเงิน"),
			Status:            normalizePurchaseStatus(idx.str(r, "สถานะ")),
			Objective:         idx.str(r, "วัตถุประสงค์"),
			GoodsReceivedDate: receivedDate,
			LeadTimeDays:      leadTimeDays(openDate, receivedDate),
		})
	}

	var committedValue float64
	var pending int
	deptValue := newGroupTotals()
	statusCounts := newGroupTotals()
	latestYear := 0

	for _, pr := range tableData {
		if isCommittedStatus(pr.Status) {
			committedValue += pr.TotalPrice
			deptValue.add(pr.Department, pr.TotalPrice)
		}
		if pr.Status == domain.PurchasePending {
			pending++
		}
		statusCounts.add(string(pr.Status), 1)
		if y := yearOfDMY(pr.Date); y > latestYear {
			latestYear = y
		}
	}
	if latestYear == 0 {
		latestYear = time.Now().Year()
	}

	var monthlyTotals [12]float64
	for _, pr := range tableData {
		if yearOfDMY(pr.Date) != latestYear {
			continue
		}
		if m := monthOfDMY(pr.Date); m >= 0 {
			monthlyTotals[m] += pr.TotalPrice
		}
	}

	kpis := []domain.Kpi{
		{Title: "totalRequests", Value: formatCount(len(tableData)), Icon: "ClipboardDocumentListIcon", Color: "text-brand-primary"},
		{Title: "totalApprovedValue", Value: formatBaht(committedValue, 0), Icon: "CurrencyDollarIcon", Color: "text-brand-success"},
		{Title: "pendingRequests", Value: formatCount(pending), Icon: "ClockIcon", Color: "text-brand-warning"},
		{Title: "topDeptByValue", Value: deptValue.top("N/A"), Icon: "BuildingOfficeIcon", Color: "text-brand-secondary"},
	}

	bundle.PurchaseRequest = &domain.PurchaseRequestBundle{
		TableData:        tableData,
		Kpis:             kpis,
		ByDeptChartData:  totalsToChart(deptValue.sortedDesc()),
		ByStatusChart:    totalsToChart(statusCounts.entries()),
		MonthlyChartData: monthlyChart(monthlyTotals),
	}
	return nil
}
