// Package intake turns raw worker input into model.WorkerRecord values.
//
// Required components that are missing or not numbers are reported as
// CRITICAL messages and never defaulted. Optional components may be left
// out and keep their absence in the record.
package intake

import (
	"bytes"
	"fmt"
	"math"

	json "github.com/goccy/go-json"

	"payroll-engine/internal/attendance"
	"payroll-engine/internal/model"
)

// RawWorker is a worker object as it arrives. All amounts are pointers so
// that a missing key can be told apart from zero.
type RawWorker struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	BasicSalary         *float64 `json:"basicSalary"`
	Housing             *float64 `json:"housing"`
	WorkNatureAllowance *float64 `json:"workNatureAllowance"`
	TransportAllowance  *float64 `json:"transportAllowance"`
	PhoneAllowance      *float64 `json:"phoneAllowance"`
	FoodAllowance       *float64 `json:"foodAllowance"`

	Commission         *float64 `json:"commission"`
	Advances           *float64 `json:"advances"`
	Penalties          *float64 `json:"penalties"`
	TotalOvertimeHours *float64 `json:"totalOvertimeHours"`
	AbsentDays         *float64 `json:"absentDays"`
	AnnualLeaveDays    *float64 `json:"annualLeaveDays"`
	SickLeaveDays      *float64 `json:"sickLeaveDays"`

	// Older front-end keys.
	WorkNature    *float64 `json:"workNature"`
	Transport     *float64 `json:"transport"`
	Phone         *float64 `json:"phone"`
	Food          *float64 `json:"food"`
	TotalOvertime *float64 `json:"totalOvertime"`

	Days []attendance.Day `json:"days"`
}

// Entry is one worker as received plus any problem found while decoding it.
type Entry struct {
	Raw      RawWorker
	Messages []model.CalculationMessage
}

// DecodeJSON decodes one worker object. Decoding problems are carried on
// the entry rather than returned, so a batch can keep going. Each known key
// is decoded on its own so a bad value is reported under its JSON name.
func DecodeJSON(data []byte) Entry {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Entry{Messages: []model.CalculationMessage{malformed("", "worker must be a JSON object")}}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return Entry{Messages: []model.CalculationMessage{malformed("", "invalid worker object: "+err.Error())}}
	}

	var raw RawWorker
	var msgs []model.CalculationMessage
	for _, k := range raw.keys() {
		value, ok := obj[k.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, k.dst); err != nil {
			msgs = append(msgs, malformed(k.name, fmt.Sprintf("%s must be %s", k.name, k.want)))
		}
	}
	return Entry{Raw: raw, Messages: msgs}
}

type key struct {
	name string
	dst  interface{}
	want string
}

func (r *RawWorker) keys() []key {
	const number = "a number"
	return []key{
		{"id", &r.ID, "a string"},
		{"name", &r.Name, "a string"},
		{"basicSalary", &r.BasicSalary, number},
		{"housing", &r.Housing, number},
		{"workNatureAllowance", &r.WorkNatureAllowance, number},
		{"transportAllowance", &r.TransportAllowance, number},
		{"phoneAllowance", &r.PhoneAllowance, number},
		{"foodAllowance", &r.FoodAllowance, number},
		{"commission", &r.Commission, number},
		{"advances", &r.Advances, number},
		{"penalties", &r.Penalties, number},
		{"totalOvertimeHours", &r.TotalOvertimeHours, number},
		{"absentDays", &r.AbsentDays, number},
		{"annualLeaveDays", &r.AnnualLeaveDays, number},
		{"sickLeaveDays", &r.SickLeaveDays, number},
		{"workNature", &r.WorkNature, number},
		{"transport", &r.Transport, number},
		{"phone", &r.Phone, number},
		{"food", &r.Food, number},
		{"totalOvertime", &r.TotalOvertime, number},
		{"days", &r.Days, "a list of {day, status, regularHours, overtimeHours} entries"},
	}
}

// Validate resolves the entry into a record. When any returned message is
// CRITICAL the record is the zero value and must not be computed.
func (e Entry) Validate(period model.Period) (model.WorkerRecord, []model.CalculationMessage) {
	if model.HasCritical(e.Messages) {
		return model.WorkerRecord{}, append([]model.CalculationMessage(nil), e.Messages...)
	}
	rec, msgs := Validate(e.Raw, period)
	return rec, append(append([]model.CalculationMessage{}, e.Messages...), msgs...)
}

type field struct {
	name     string
	value    *float64
	required bool
	target   *float64
	optional **float64
}

// Validate checks raw and builds the record. Attendance days, when given,
// need a valid period and fill the variable components left out of raw.
func Validate(raw RawWorker, period model.Period) (model.WorkerRecord, []model.CalculationMessage) {
	rec := model.WorkerRecord{ID: raw.ID, Name: raw.Name}
	fields := []field{
		{name: "basicSalary", value: raw.BasicSalary, required: true, target: &rec.BasicSalary},
		{name: "housing", value: raw.Housing, required: true, target: &rec.Housing},
		{name: "workNatureAllowance", value: coalesce(raw.WorkNatureAllowance, raw.WorkNature), required: true, target: &rec.WorkNatureAllowance},
		{name: "transportAllowance", value: coalesce(raw.TransportAllowance, raw.Transport), required: true, target: &rec.TransportAllowance},
		{name: "phoneAllowance", value: coalesce(raw.PhoneAllowance, raw.Phone), required: true, target: &rec.PhoneAllowance},
		{name: "foodAllowance", value: coalesce(raw.FoodAllowance, raw.Food), required: true, target: &rec.FoodAllowance},
		{name: "commission", value: raw.Commission, optional: &rec.Commission},
		{name: "advances", value: raw.Advances, optional: &rec.Advances},
		{name: "penalties", value: raw.Penalties, optional: &rec.Penalties},
		{name: "totalOvertimeHours", value: coalesce(raw.TotalOvertimeHours, raw.TotalOvertime), optional: &rec.TotalOvertimeHours},
		{name: "absentDays", value: raw.AbsentDays, optional: &rec.AbsentDays},
		{name: "annualLeaveDays", value: raw.AnnualLeaveDays, optional: &rec.AnnualLeaveDays},
		{name: "sickLeaveDays", value: raw.SickLeaveDays, optional: &rec.SickLeaveDays},
	}

	var msgs []model.CalculationMessage
	for _, f := range fields {
		if f.value == nil {
			if f.required {
				msgs = append(msgs, model.CalculationMessage{
					Level:   model.LevelCritical,
					Code:    model.CodeMissingField,
					Message: f.name + " is required",
					Field:   f.name,
				})
			}
			continue
		}
		v := *f.value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeNonFiniteValue,
				Message: f.name + " must be a finite number",
				Field:   f.name,
			})
			continue
		}
		if v < 0 {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    model.CodeNegativeValue,
				Message: fmt.Sprintf("%s is negative (%.2f)", f.name, v),
				Field:   f.name,
			})
		}
		if f.required {
			*f.target = v
		} else {
			*f.optional = model.Float(v)
		}
	}

	if len(raw.Days) > 0 {
		if !period.Valid() {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeInvalidPeriod,
				Message: fmt.Sprintf("attendance days need a valid year and month, got %d/%d", period.Year, period.Month),
				Field:   "days",
			})
		} else {
			attendance.Summarize(raw.Days, period).FillMissing(&rec)
		}
	}

	if model.HasCritical(msgs) {
		return model.WorkerRecord{}, msgs
	}
	return rec, msgs
}

func coalesce(canonical, legacy *float64) *float64 {
	if canonical != nil {
		return canonical
	}
	return legacy
}

func malformed(field, message string) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    model.CodeMalformedRecord,
		Message: message,
		Field:   field,
	}
}
