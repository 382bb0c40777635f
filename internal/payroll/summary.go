package payroll

import (
	"github.com/shopspring/decimal"

	"payroll-engine/internal/model"
)

// Summarize totals a batch. Sums are taken in decimal so that adding many
// cent-rounded amounts does not drift.
func Summarize(results []model.PayrollResult) model.PayrollSummary {
	var gross, allowances, overtime, absence, deductions, net decimal.Decimal
	for _, r := range results {
		gross = gross.Add(decimal.NewFromFloat(r.GrossSalary))
		allowances = allowances.Add(decimal.NewFromFloat(r.TotalAllowances))
		overtime = overtime.Add(decimal.NewFromFloat(r.OvertimePay))
		absence = absence.Add(decimal.NewFromFloat(r.AbsenceDeduction))
		deductions = deductions.Add(decimal.NewFromFloat(r.TotalDeductions))
		net = net.Add(decimal.NewFromFloat(r.NetSalary))
	}
	return model.PayrollSummary{
		EmployeeCount:         len(results),
		TotalGross:            gross.Round(2).InexactFloat64(),
		TotalAllowances:       allowances.Round(2).InexactFloat64(),
		TotalOvertimePay:      overtime.Round(2).InexactFloat64(),
		TotalAbsenceDeduction: absence.Round(2).InexactFloat64(),
		TotalDeductions:       deductions.Round(2).InexactFloat64(),
		TotalNet:              net.Round(2).InexactFloat64(),
	}
}
