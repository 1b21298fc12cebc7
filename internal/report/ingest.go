package report

import (
	"hrpulse/pkg/contracts/domain"
)

// assembler decodes a grid's body rows and composes the kind-specific
// bundle fields in one pass.
type assembler func(header row, body []row, bundle *domain.ReportBundle) error

var assemblers = map[Kind]assembler{
	KindKpiReport:       assembleKpiReport,
	KindConsumables:     assembleConsumables,
	KindOvertime:        assembleOvertime,
	KindLeave:           assembleLeave,
	KindAccident:        assembleAccident(KindAccident),
	KindAccidentWH1:     assembleAccident(KindAccidentWH1),
	KindWorkload:        assembleWorkload,
	KindManpower:        assembleManpower,
	KindWarningLetter:   assembleWarningLetter,
	KindTurnover:        assembleTurnover,
	KindTraining:        assembleTraining,
	KindPurchaseRequest: assemblePurchaseRequest,
}

// Ingest converts a raw grid into the assembled report bundle for the
// requested kind. It fails only with a *SchemaError: when the grid has no
// header or no body rows, or when the manpower marker columns are absent.
// Rows that miss a kind's required identifying field are dropped
// silently; an empty bundle is a valid outcome.
func Ingest(grid domain.RawGrid, kind Kind) (*domain.ReportBundle, error) {
	assemble, ok := assemblers[kind]
	if !ok {
		return nil, schemaErr(kind, "no decoder registered")
	}
	if len(grid) < 2 {
		return nil, schemaErr(kind, "sheet is empty or has no data rows")
	}
	if len(grid[0]) == 0 {
		return nil, schemaErr(kind, "sheet has no columns")
	}

	bundle := &domain.ReportBundle{Kind: string(kind)}
	if err := assemble(row(grid[0]), bodyRows(grid), bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}
