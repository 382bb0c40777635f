package model

import (
	"fmt"
	"time"
)

// PayrollResult is the monthly breakdown for one worker. All amounts are
// rounded to 2 decimal places.
type PayrollResult struct {
	OvertimePay      float64 `json:"overtimePay"`
	AbsenceDeduction float64 `json:"absenceDeduction"`
	NetSalary        float64 `json:"netSalary"`
	TotalAllowances  float64 `json:"totalAllowances"`
	GrossSalary      float64 `json:"grossSalary"`
	TotalDeductions  float64 `json:"totalDeductions"`
}

// Period identifies a payroll month. Month is 1-based.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (p Period) Valid() bool {
	return p.Year > 0 && p.Month >= 1 && p.Month <= 12
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// PayrollSummary holds totals across a batch.
type PayrollSummary struct {
	EmployeeCount         int     `json:"employeeCount"`
	TotalGross            float64 `json:"totalGross"`
	TotalAllowances       float64 `json:"totalAllowances"`
	TotalOvertimePay      float64 `json:"totalOvertimePay"`
	TotalAbsenceDeduction float64 `json:"totalAbsenceDeduction"`
	TotalDeductions       float64 `json:"totalDeductions"`
	TotalNet              float64 `json:"totalNet"`
}

// DaysIn returns the calendar length of the period's month.
func (p Period) DaysIn() int {
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
