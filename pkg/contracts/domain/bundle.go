package domain

// KpiReportBundle is the assembled output for the KPI report kind.
type KpiReportBundle struct {
	Kpis      []Kpi    `json:"kpis"`
	TableRows []KpiRow `json:"tableRows"`
}

// ConsumablesBundle is the assembled output for the consumables kind.
type ConsumablesBundle struct {
	TableData []ConsumableRow     `json:"tableData"`
	Kpis      []Kpi               `json:"kpis"`
	ChartData []ChartPoint        `json:"chartData"`
	TopItems  []ConsumableRanking `json:"topItems"`
}

// OvertimeBundle is the assembled output for the overtime kind. TableData
// holds only the target (maximum) year's records.
type OvertimeBundle struct {
	TableData       []OvertimeRow             `json:"tableData"`
	Kpis            []Kpi                     `json:"kpis"`
	ChartData       []ChartPoint              `json:"chartData"`
	AveragesByDept  []OvertimeAverage         `json:"otAveragesByDept"`
	TopEmployees    []OvertimeRow             `json:"topEmployees"`
	TopDepartments  []OvertimeDepartmentTotal `json:"topDepartments"`
}

// LeaveBundle is the assembled output for the leave kind.
type LeaveBundle struct {
	TableData      []LeaveRow      `json:"tableData"`
	Kpis           []Kpi           `json:"kpis"`
	ChartData      []ChartPoint    `json:"chartData"`
	TopEmployees   []LeaveRow      `json:"topEmployees"`
	TopDepartments []CategoryTotal `json:"topDepartments"`
}

// AccidentBundle is the assembled output for both accident kinds.
type AccidentBundle struct {
	TableData      []AccidentRow        `json:"tableData"`
	Kpis           []Kpi                `json:"kpis"`
	ChartData      []ChartPoint         `json:"chartData"`
	SeverityCounts []CategoryTotal      `json:"severityCounts"`
	DamageByDept   []DepartmentDamage   `json:"damageByDept"`
	SeverityByDept []DepartmentSeverity `json:"severityByDept"`
}

// WorkloadBundle is the assembled output for the workload kind.
type WorkloadBundle struct {
	Sections []WorkloadSection `json:"data"`
}

// ManpowerBundle is the assembled output for the manpower kind.
type ManpowerBundle struct {
	TableData            []ManpowerRow          `json:"tableData"`
	Kpis                 []Kpi                  `json:"kpis"`
	StatusChartData      []ChartPoint           `json:"statusChartData"`
	DeptChartData        []ChartPoint           `json:"deptChartData"`
	DepartmentComparison []DepartmentComparison `json:"departmentComparisonData"`
}

// WarningLetterBundle is the assembled output for the warning letter kind.
type WarningLetterBundle struct {
	TableData          []WarningLetterRow `json:"tableData"`
	Kpis               []Kpi              `json:"kpis"`
	ByDeptChartData    []ChartPoint       `json:"byDeptChartData"`
	ByTypeChartData    []ChartPoint       `json:"byTypeChartData"`
	DamageByDeptChart  []ChartPoint       `json:"damageByDeptChartData"`
}

// TurnoverBundle is the assembled output for the turnover kind.
type TurnoverBundle struct {
	TableData        []TurnoverRow   `json:"tableData"`
	Kpis             []Kpi           `json:"kpis"`
	MonthlyChartData []ChartPoint    `json:"monthlyChartData"`
	ReasonChartData  []CategoryTotal `json:"reasonChartData"`
	DeptChartData    []ChartPoint    `json:"deptChartData"`
}

// TrainingBundle is the assembled output for the training kind.
type TrainingBundle struct {
	TableData []TrainingRow `json:"tableData"`
	Kpis      []Kpi         `json:"kpis"`
	ChartData []ChartPoint  `json:"chartData"`
}

// PurchaseRequestBundle is the assembled output for the purchase request
// kind.
type PurchaseRequestBundle struct {
	TableData        []PurchaseRequestRow `json:"tableData"`
	Kpis             []Kpi                `json:"kpis"`
	ByDeptChartData  []ChartPoint         `json:"byDeptChartData"`
	ByStatusChart    []ChartPoint         `json:"byStatusChartData"`
	MonthlyChartData []ChartPoint         `json:"monthlyChartData"`
}

// ReportBundle is the self-contained output of one ingestion call.
// Exactly one kind-specific field is populated, matching the requested
// report kind.
type ReportBundle struct {
	Kind            string                 `json:"kind"`
	KpiReport       *KpiReportBundle       `json:"kpiReport,omitempty"`
	Consumables     *ConsumablesBundle     `json:"consumablesReport,omitempty"`
	Overtime        *OvertimeBundle        `json:"otReport,omitempty"`
	Leave           *LeaveBundle           `json:"leaveReport,omitempty"`
	Accident        *AccidentBundle        `json:"accidentReport,omitempty"`
	AccidentWH1     *AccidentBundle        `json:"accidentWh1Report,omitempty"`
	Workload        *WorkloadBundle        `json:"workloadReport,omitempty"`
	Manpower        *ManpowerBundle        `json:"manpowerReport,omitempty"`
	WarningLetter   *WarningLetterBundle   `json:"warningLetterReport,omitempty"`
	Turnover        *TurnoverBundle        `json:"turnoverReport,omitempty"`
	Training        *TrainingBundle        `json:"trainingReport,omitempty"`
	PurchaseRequest *PurchaseRequestBundle `json:"purchaseRequestReport,omitempty"`
}
