// Package payroll computes monthly salary breakdowns.
//
// The formula works on a fixed 30-day month and an 8-hour day regardless of
// the period being paid. Overtime is paid at 1.5x the hourly rate of basic
// salary alone, while absence, annual leave and sick leave are all deducted
// at the daily rate of basic salary plus allowances.
package payroll

import (
	"math"

	"payroll-engine/internal/model"
)

const (
	DaysPerMonth       = 30.0
	RegularHoursPerDay = 8.0
	OvertimeMultiplier = 1.5
)

// Compute returns the payroll breakdown for w. The period is accepted for
// callers that track it but does not affect the result.
func Compute(w model.WorkerRecord, _ model.Period) model.PayrollResult {
	totalAllowances := w.Housing + w.WorkNatureAllowance + w.TransportAllowance +
		w.PhoneAllowance + w.FoodAllowance + model.OrZero(w.Commission)
	deductibleGross := w.BasicSalary + totalAllowances

	dailyRate := deductibleGross / DaysPerMonth
	hourlyRate := (w.BasicSalary / DaysPerMonth) / RegularHoursPerDay

	overtimePay := model.OrZero(w.TotalOvertimeHours) * hourlyRate * OvertimeMultiplier
	absenceAndLeaveDays := model.OrZero(w.AbsentDays) + model.OrZero(w.AnnualLeaveDays) + model.OrZero(w.SickLeaveDays)
	absenceDeduction := dailyRate * absenceAndLeaveDays

	grossSalary := deductibleGross + overtimePay
	totalDeductions := absenceDeduction + model.OrZero(w.Advances) + model.OrZero(w.Penalties)
	netSalary := grossSalary - totalDeductions

	return model.PayrollResult{
		OvertimePay:      Round2(overtimePay),
		AbsenceDeduction: Round2(absenceDeduction),
		NetSalary:        Round2(netSalary),
		TotalAllowances:  Round2(totalAllowances),
		GrossSalary:      Round2(grossSalary),
		TotalDeductions:  Round2(totalDeductions),
	}
}

// Round2 rounds v to cents, half away from zero, on the float64 value of
// v*100. Values such as 1.005 whose product lands just below .5 round down.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Finite reports whether every amount in r is a real number. Inputs near
// the float64 limit can overflow to ±Inf or NaN inside Compute.
func Finite(r model.PayrollResult) bool {
	for _, v := range []float64{r.OvertimePay, r.AbsenceDeduction, r.NetSalary, r.TotalAllowances, r.GrossSalary, r.TotalDeductions} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
