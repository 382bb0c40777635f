// Package attendance folds a month of daily attendance entries into the
// variable components of a worker record.
package attendance

import "payroll-engine/internal/model"

type Status string

const (
	StatusPresent     Status = "present"
	StatusAbsent      Status = "absent"
	StatusAnnualLeave Status = "annual_leave"
	StatusSickLeave   Status = "sick_leave"
)

// Day is one calendar day of attendance. Day is the day of the month.
type Day struct {
	Day           int      `json:"day"`
	Status        Status   `json:"status"`
	RegularHours  *float64 `json:"regularHours,omitempty"`
	OvertimeHours *float64 `json:"overtimeHours,omitempty"`
}

type Summary struct {
	RegularHours    float64 `json:"regularHours"`
	OvertimeHours   float64 `json:"overtimeHours"`
	AbsentDays      int     `json:"absentDays"`
	AnnualLeaveDays int     `json:"annualLeaveDays"`
	SickLeaveDays   int     `json:"sickLeaveDays"`
}

// Summarize counts the days of period's month. Entries for days outside the
// month are dropped, a later entry for the same day replaces an earlier one,
// and unknown statuses count for nothing. Hours only count on present days.
func Summarize(days []Day, period model.Period) Summary {
	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		byDay[d.Day] = d
	}

	var s Summary
	for day := 1; day <= period.DaysIn(); day++ {
		d, ok := byDay[day]
		if !ok {
			continue
		}
		switch d.Status {
		case StatusPresent:
			s.RegularHours += model.OrZero(d.RegularHours)
			s.OvertimeHours += model.OrZero(d.OvertimeHours)
		case StatusAbsent:
			s.AbsentDays++
		case StatusAnnualLeave:
			s.AnnualLeaveDays++
		case StatusSickLeave:
			s.SickLeaveDays++
		}
	}
	return s
}

// FillMissing copies the summary into the variable components of w that
// were not supplied. Supplied values, including explicit zeros, are kept.
func (s Summary) FillMissing(w *model.WorkerRecord) {
	if w.TotalOvertimeHours == nil {
		w.TotalOvertimeHours = model.Float(s.OvertimeHours)
	}
	if w.AbsentDays == nil {
		w.AbsentDays = model.Float(float64(s.AbsentDays))
	}
	if w.AnnualLeaveDays == nil {
		w.AnnualLeaveDays = model.Float(float64(s.AnnualLeaveDays))
	}
	if w.SickLeaveDays == nil {
		w.SickLeaveDays = model.Float(float64(s.SickLeaveDays))
	}
}
