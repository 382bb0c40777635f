package payroll

import (
	"fmt"

	"payroll-engine/internal/model"
)

// SyntheticWorkers builds n deterministic workers whose salary, overtime
// and absences grow with their index.
func SyntheticWorkers(n int) []model.WorkerRecord {
	workers := make([]model.WorkerRecord, 0, n)
	for i := 0; i < n; i++ {
		f := float64(i)
		workers = append(workers, model.WorkerRecord{
			ID:                  fmt.Sprintf("emp_%d", i),
			Name:                fmt.Sprintf("Employee %d", i),
			BasicSalary:         5000 + f*100,
			Housing:             1000,
			WorkNatureAllowance: 500,
			TransportAllowance:  300,
			PhoneAllowance:      100,
			FoodAllowance:       200,
			Commission:          model.Float(0),
			Advances:            model.Float(0),
			Penalties:           model.Float(0),
			TotalOvertimeHours:  model.Float(f * 2),
			AbsentDays:          model.Float(float64(i % 5)),
			AnnualLeaveDays:     model.Float(float64(i % 3)),
			SickLeaveDays:       model.Float(float64(i % 2)),
		})
	}
	return workers
}

// Simulate runs the formula over n synthetic workers and returns the sum of
// their net salaries.
func Simulate(n int) float64 {
	var total float64
	for _, w := range SyntheticWorkers(n) {
		total += Compute(w, model.Period{Year: 2023, Month: 1}).NetSalary
	}
	return total
}
