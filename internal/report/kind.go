package report

import "fmt"

// Kind is the closed set of report schemas the engine understands. The
// accident schema has two independent instances (general site and the
// WH1 warehouse), so twelve tags cover the eleven layouts.
type Kind string

const (
	KindKpiReport       Kind = "kpiReport"
	KindConsumables     Kind = "consumablesReport"
	KindOvertime        Kind = "otReport"
	KindLeave           Kind = "leaveReport"
	KindAccident        Kind = "accidentReport"
	KindAccidentWH1     Kind = "accidentWh1Report"
	KindWorkload        Kind = "workloadReport"
	KindManpower        Kind = "manpowerReport"
	KindWarningLetter   Kind = "warningLetterReport"
	KindTurnover        Kind = "turnoverReport"
	KindTraining        Kind = "trainingReport"
	KindPurchaseRequest Kind = "purchaseRequestReport"
)

// Kinds returns every supported report kind in presentation order.
func Kinds() []Kind {
	return []Kind{
		KindKpiReport,
		KindConsumables,
		KindOvertime,
		KindLeave,
		KindAccident,
		KindAccidentWH1,
		KindWorkload,
		KindManpower,
		KindWarningLetter,
		KindTurnover,
		KindTraining,
		KindPurchaseRequest,
	}
}

// ParseKind validates a kind tag received from a caller.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown report kind %q", s)
}

// SchemaError is the only error the ingestion boundary surfaces: the grid
// does not match the expected shape for the requested kind. Every other
// decode irregularity is absorbed as silent row filtering.
type SchemaError struct {
	Kind    Kind
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func schemaErr(kind Kind, format string, args ...any) *SchemaError {
	return &SchemaError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
