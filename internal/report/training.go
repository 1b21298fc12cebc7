package report

import (
	"hrpulse/pkg/contracts/domain"
)

// assembleTraining is intentionally a no-op decoder: the training sheet
// format has not been finalized, so every upload yields an empty bundle.
// TODO: decode course attendance rows once HR settles the column layout.
func assembleTraining(_ row, _ []row, bundle *domain.ReportBundle) error {
	bundle.Training = &domain.TrainingBundle{
		TableData: []domain.TrainingRow{},
		Kpis:      []domain.Kpi{},
		ChartData: []domain.ChartPoint{},
	}
	return nil
}
