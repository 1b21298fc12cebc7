package domain

// KpiRow is one decoded row of the KPI report sheet. Monthly values are
// keyed by month abbreviation (Jan..Dec) and kept as display strings.
type KpiRow struct {
	KpiNo             string            `json:"kpiNo"`
	Title             string            `json:"title"`
	Measurement       string            `json:"measurement"`
	Target            string            `json:"target"`
	Score             string            `json:"score"`
	Result            string            `json:"result"`
	MonthlyData       map[string]string `json:"monthlyData"`
	Description       string            `json:"description"`
	Objective         string            `json:"objective"`
	MeasurementMethod string            `json:"measurementMethod"`
	Responsible       string            `json:"responsible"`
	ImprovementPlan   string            `json:"improvementPlan"`
}

// ConsumableRow is one consumable purchase transaction. Numeric columns
// stay as display strings; aggregation re-coerces them on demand.
type ConsumableRow struct {
	Date        string `json:"date"`
	Material    string `json:"material"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	Price       string `json:"price"`
	TotalPrice  string `json:"totalPrice"`
	CostCenter  string `json:"costCenter"`
	Department  string `json:"department"`
}

// ConsumableRanking is one entry of the top-by-cost consumables ranking.
type ConsumableRanking struct {
	Material  string  `json:"material"`
	Name      string  `json:"name"`
	Frequency int     `json:"frequency"`
	TotalCost float64 `json:"totalCost"`
}

// OvertimeRow is one employee's overtime record for a year. MonthlyOT and
// MonthlyOTPay are fixed 12-slot sequences, index 0 = January.
type OvertimeRow struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	Department   string    `json:"department"`
	Grade        string    `json:"grade"`
	Status       string    `json:"status"`
	MonthlyOT    []float64 `json:"monthlyOT"`
	TotalOT      float64   `json:"totalOT"`
	OTRate       float64   `json:"otRate"`
	MonthlyOTPay []float64 `json:"monthlyOTPay"`
	TotalOTPay   float64   `json:"totalOTPay"`
	Year         int       `json:"year"`
}

// OvertimeAverage is the per-department overtime average breakdown.
type OvertimeAverage struct {
	Department        string  `json:"department"`
	EmployeeCount     int     `json:"employeeCount"`
	TotalOTHours      float64 `json:"totalOtHours"`
	AvgOTHoursPerMonth float64 `json:"avgOtHoursPerMonth"`
	AvgOTHoursPerWeek  float64 `json:"avgOtHoursPerWeek"`
}

// OvertimeDepartmentTotal ranks a department by summed hours and pay.
type OvertimeDepartmentTotal struct {
	Name       string  `json:"name"`
	TotalHours float64 `json:"totalHours"`
	TotalPay   float64 `json:"totalPay"`
}

// LeaveRow is one employee's leave record. MonthlyLeave is a fixed
// 12-slot sequence, index 0 = January.
type LeaveRow struct {
	ID                    string    `json:"id"`
	EmployeeID            string    `json:"employeeId"`
	Name                  string    `json:"name"`
	Position              string    `json:"position"`
	Department            string    `json:"department"`
	Grade                 string    `json:"grade"`
	Status                string    `json:"status"`
	MonthlyLeave          []float64 `json:"monthlyLeave"`
	LeaveWithoutVacation  float64   `json:"leaveWithoutVacation"`
	TotalLeaveWithVacation float64  `json:"totalLeaveWithVacation"`
	VacationCarriedOver   float64   `json:"vacationCarriedOver"`
	VacationEntitlement   float64   `json:"vacationEntitlement"`
	TotalVacation         float64   `json:"totalVacation"`
	VacationUsed          float64   `json:"vacationUsed"`
	VacationAccrued       float64   `json:"vacationAccrued"`
	SickLeave             float64   `json:"sickLeave"`
	PersonalLeave         float64   `json:"personalLeave"`
	BirthdayLeave         float64   `json:"birthdayLeave"`
	OtherLeave            float64   `json:"otherLeave"`
	TotalLeave            float64   `json:"totalLeave"`
}

// AccidentRow is one incident record, shared by both accident report
// variants.
type AccidentRow struct {
	ID               string  `json:"id"`
	IncidentDate     string  `json:"incidentDate"`
	IncidentTime     string  `json:"incidentTime"`
	Severity         string  `json:"severity"`
	Occurrence       string  `json:"occurrence"`
	Department       string  `json:"department"`
	EmployeeID       string  `json:"employeeId"`
	EmployeeName     string  `json:"employeeName"`
	Position         string  `json:"position"`
	Details          string  `json:"details"`
	Cause            string  `json:"cause"`
	Prevention       string  `json:"prevention"`
	DamageValue      float64 `json:"damageValue"`
	InsuranceClaim   string  `json:"insuranceClaim"`
	ActionTaken      string  `json:"actionTaken"`
	Penalty          string  `json:"penalty"`
	Remarks          string  `json:"remarks"`
	AccidentLocation string  `json:"accidentLocation"`
}

// DepartmentDamage aggregates accident damage per department.
type DepartmentDamage struct {
	Department  string  `json:"department"`
	TotalDamage float64 `json:"totalDamage"`
	CaseCount   int     `json:"caseCount"`
}

// DepartmentSeverity aggregates accident counts per department broken
// down by severity code.
type DepartmentSeverity struct {
	Department string             `json:"department"`
	Counts     map[string]int     `json:"counts"`
	Total      int                `json:"total"`
}

// WorkloadDetailRow is one description row inside a workload product
// section. Values are nullable: a nil entry means the cell held no number.
type WorkloadDetailRow struct {
	Description string     `json:"description"`
	IsSubRow    bool       `json:"isSubRow"`
	Unit        string     `json:"unit"`
	Values      []*float64 `json:"values"`
	Average     *float64   `json:"average"`
	Min         *float64   `json:"min"`
	Max         *float64   `json:"max"`
}

// WorkloadSection groups workload rows under a product heading.
type WorkloadSection struct {
	Product      string              `json:"product"`
	IsSubProduct bool                `json:"isSubProduct"`
	Rows         []WorkloadDetailRow `json:"rows"`
}

// ManpowerRow is one roster line of the manpower sheet. HireDate and
// TerminationDate are true optionals and stay empty when the source cell
// is blank.
type ManpowerRow struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employeeId"`
	Name            string `json:"name"`
	Position        string `json:"position"`
	Department      string `json:"department"`
	Grade           string `json:"grade"`
	Status          string `json:"status"`
	Manpower        string `json:"manpower"`
	Current         string `json:"current"`
	HireDate        string `json:"hireDate,omitempty"`
	TerminationDate string `json:"terminationDate,omitempty"`
}

// NeededPosition is a position shortfall within a department.
type NeededPosition struct {
	Position string  `json:"position"`
	Count    float64 `json:"count"`
}

// DepartmentComparison contrasts a department's manpower target with its
// current headcount.
type DepartmentComparison struct {
	Department      string           `json:"department"`
	Manpower        float64          `json:"manpower"`
	Current         float64          `json:"current"`
	Needed          float64          `json:"needed"`
	NeededPositions []NeededPosition `json:"neededPositions,omitempty"`
}

// WarningLetterRow is one disciplinary warning record.
type WarningLetterRow struct {
	ID                    string  `json:"id"`
	Date                  string  `json:"date"`
	EmployeeID            string  `json:"employeeId"`
	EmployeeName          string  `json:"employeeName"`
	Department            string  `json:"department"`
	Reason                string  `json:"reason"`
	WarningID             string  `json:"warningId"`
	DamageValue           float64 `json:"damageValue"`
	Type                  string  `json:"type"`
	HRSentDate            string  `json:"hrSentDate"`
	HRInvestigationDate   string  `json:"hrInvestigationDate"`
	HRWarningReceivedDate string  `json:"hrWarningReceivedDate"`
	DocumentStatus        string  `json:"documentStatus"`
}

// TurnoverRow is one employee biographical record from the header-keyed
// turnover sheet.
type TurnoverRow struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employeeId"`
	Name              string  `json:"name"`
	Position          string  `json:"position"`
	Status            string  `json:"status"`
	CostCenter        string  `json:"costCenter"`
	Department        string  `json:"department"`
	Grade             string  `json:"grade"`
	HireDateBuddhist  string  `json:"hireDateBuddhist"`
	HireDate          string  `json:"hireDate"`
	TenureYears       float64 `json:"tenureYears"`
	TenureMonths      float64 `json:"tenureMonths"`
	TenureDays        float64 `json:"tenureDays"`
	ProbationPassDate string  `json:"probationPassDate"`
	Nickname          string  `json:"nickname"`
	Now               string  `json:"now"`
	DateOfBirth       string  `json:"dob"`
	Age               float64 `json:"age"`
	Religion          string  `json:"religion"`
	Mobile            string  `json:"mobile"`
	Hometown          string  `json:"hometown"`
	Education         string  `json:"education"`
	EmploymentType    string  `json:"employmentType"`
	TerminationDate   string  `json:"terminationDate"`
	EffectiveDate     string  `json:"effectiveDate"`
	ReasonForLeaving  string  `json:"reasonForLeaving"`
}

// PurchaseStatus is the closed set of normalized purchase request states.
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "Pending"
	PurchaseApproved  PurchaseStatus = "Approved"
	PurchaseRejected  PurchaseStatus = "Rejected"
	PurchaseOrdered   PurchaseStatus = "Ordered"
	PurchaseCompleted PurchaseStatus = "Completed"
)

// PurchaseRequestRow is one purchase request record.
type PurchaseRequestRow struct {
	ID                string         `json:"id"`
	Date              string         `json:"date"`
	Requester         string         `json:"requester"`
	Department        string         `json:"department"`
	ItemDescription   string         `json:"itemDescription"`
	Quantity          float64        `json:"quantity"`
	Unit              string         `json:"unit"`
	UnitPrice         float64        `json:"unitPrice"`
	TotalPrice        float64        `json:"totalPrice"`
	Supplier          string         `json:"supplier"`
	Status            PurchaseStatus `json:"status"`
	Objective         string         `json:"objective"`
	GoodsReceivedDate string         `json:"goodsReceivedDate"`
	LeadTimeDays      int            `json:"leadTimeDays"`
}

// TrainingRow is one training attendance record. The training sheet
// format is not finalized; its decoder currently yields no rows.
type TrainingRow struct {
	ID            string  `json:"id"`
	CourseName    string  `json:"courseName"`
	EmployeeID    string  `json:"employeeId"`
	EmployeeName  string  `json:"employeeName"`
	Department    string  `json:"department"`
	TrainingDate  string  `json:"trainingDate"`
	DurationHours float64 `json:"durationHours"`
	Cost          float64 `json:"cost"`
	Status        string  `json:"status"`
	Trainer       string  `json:"trainer"`
	Location      string  `json:"location"`
}
