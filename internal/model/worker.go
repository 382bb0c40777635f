package model

// WorkerRecord is one employee's compensation input for a month.
// Optional components are nil when absent; absent and explicit zero compute
// the same but stay distinguishable at the boundary.
type WorkerRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	BasicSalary         float64 `json:"basicSalary"`
	Housing             float64 `json:"housing"`
	WorkNatureAllowance float64 `json:"workNatureAllowance"`
	TransportAllowance  float64 `json:"transportAllowance"`
	PhoneAllowance      float64 `json:"phoneAllowance"`
	FoodAllowance       float64 `json:"foodAllowance"`

	Commission *float64 `json:"commission,omitempty"`
	Advances   *float64 `json:"advances,omitempty"`
	Penalties  *float64 `json:"penalties,omitempty"`
	// TotalOvertimeHours is in hours, not currency.
	TotalOvertimeHours *float64 `json:"totalOvertimeHours,omitempty"`
	AbsentDays         *float64 `json:"absentDays,omitempty"`
	AnnualLeaveDays    *float64 `json:"annualLeaveDays,omitempty"`
	SickLeaveDays      *float64 `json:"sickLeaveDays,omitempty"`
}

// OrZero returns *v, or 0 when v is nil.
func OrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Float returns a pointer to v, for filling optional components.
func Float(v float64) *float64 {
	return &v
}
