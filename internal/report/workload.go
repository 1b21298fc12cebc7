package report

import (
	"strings"

	"hrpulse/pkg/contracts/domain"
)

// tonPerPersonHour is the one sub-product section title the workload
// sheet flags distinctly.
const tonPerPersonHour = "Ton/Person/Hr."

// nonSubRowPrefixes marks description rows that are section-level
// aggregate lines rather than sub-rows.
var nonSubRowPrefixes = []string{"Sum", "Manpower", "Workday", "Working Hours", "OT"}

// assembleWorkload performs the stateful multi-row decoding of the
// workload sheet: a non-empty product cell (col 0) opens a new section,
// and description rows (col 1) accumulate into the current one. Each row
// carries 12 monthly values (cols 3-14) plus precomputed average/min/max
// (cols 16-18); failed coercions stay null rather than defaulting to 0.
func assembleWorkload(_ row, body []row, bundle *domain.ReportBundle) error {
	sections := []domain.WorkloadSection{}
	var current *domain.WorkloadSection

	flush := func() {
		if current != nil {
			sections = append(sections, *current)
			current = nil
		}
	}

	for _, r := range body {
		if r.isEmpty() {
			continue
		}
		if product, ok := r.cell(0).(string); ok && strings.TrimSpace(product) != "" {
			flush()
			title := strings.TrimSpace(product)
			current = &domain.WorkloadSection{
				Product:      title,
				IsSubProduct: title == tonPerPersonHour,
				Rows:         []domain.WorkloadDetailRow{},
			}
		}
		description, ok := r.cell(1).(string)
		if !ok || strings.TrimSpace(description) == "" || current == nil {
			continue
		}
		description = strings.TrimSpace(description)

		values := make([]*float64, 12)
		for i := 0; i < 12; i++ {
			values[i] = optionalNumber(r.cell(3 + i))
		}
		current.Rows = append(current.Rows, domain.WorkloadDetailRow{
			Description: description,
			IsSubRow:    !hasAnyPrefix(description, nonSubRowPrefixes),
			Unit:        r.str(2),
			Values:      values,
			Average:     optionalNumber(r.cell(16)),
			Min:         optionalNumber(r.cell(17)),
			Max:         optionalNumber(r.cell(18)),
		})
	}
	flush()

	bundle.Workload = &domain.WorkloadBundle{Sections: sections}
	return nil
}

func optionalNumber(cell domain.Cell) *float64 {
	n, ok := Number(cell)
	if !ok {
		return nil
	}
	return &n
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
