package model

type CalculationMetadata struct {
	CalculationID          string `json:"calculationId"`
	CalculationStartedAt   string `json:"calculationStartedAt"`
	CalculationCompletedAt string `json:"calculationCompletedAt"`
	CalculationDurationMs  int64  `json:"calculationDurationMs"`
	CalculationOutcome     string `json:"calculationOutcome"`
	Period                 Period `json:"period"`
}

type CalculationResponse struct {
	Metadata CalculationMetadata  `json:"metadata"`
	Payroll  *PayrollResult       `json:"payroll"`
	Messages []CalculationMessage `json:"messages"`
}

type BatchCalculationResponse struct {
	Metadata CalculationMetadata `json:"metadata"`
	Results  []WorkerOutcome     `json:"results"`
	Summary  PayrollSummary      `json:"summary"`
}

// WorkerOutcome is the result slot for input position Index.
type WorkerOutcome struct {
	Index    int                  `json:"index"`
	WorkerID string               `json:"workerId"`
	Payroll  *PayrollResult       `json:"payroll"`
	Messages []CalculationMessage `json:"messages"`
	// Record is the validated input behind Payroll.
	Record *WorkerRecord `json:"-"`
}

type ProRataResponse struct {
	ProRataSalary float64 `json:"proRataSalary"`
	DaysWorked    int     `json:"daysWorked"`
	DaysInMonth   int     `json:"daysInMonth"`
	Basis         string  `json:"basis"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomePartial = "PARTIAL"
	OutcomeFailure = "FAILURE"
)
