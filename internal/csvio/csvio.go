// Package csvio reads worker files and writes payroll result files.
//
// Column names match the JSON keys. Blank optional cells mean absent, blank
// required cells are reported as missing by intake.
package csvio

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"payroll-engine/internal/intake"
	"payroll-engine/internal/model"
)

var ErrEmptyInput = errors.New("no worker rows")

type workerRow struct {
	ID                  string `csv:"id"`
	Name                string `csv:"name"`
	BasicSalary         string `csv:"basicSalary"`
	Housing             string `csv:"housing"`
	WorkNatureAllowance string `csv:"workNatureAllowance"`
	TransportAllowance  string `csv:"transportAllowance"`
	PhoneAllowance      string `csv:"phoneAllowance"`
	FoodAllowance       string `csv:"foodAllowance"`
	Commission          string `csv:"commission"`
	Advances            string `csv:"advances"`
	Penalties           string `csv:"penalties"`
	TotalOvertimeHours  string `csv:"totalOvertimeHours"`
	AbsentDays          string `csv:"absentDays"`
	AnnualLeaveDays     string `csv:"annualLeaveDays"`
	SickLeaveDays       string `csv:"sickLeaveDays"`
}

type resultRow struct {
	Index            int    `csv:"index"`
	ID               string `csv:"id"`
	Name             string `csv:"name"`
	Status           string `csv:"status"`
	TotalAllowances  string `csv:"totalAllowances"`
	OvertimePay      string `csv:"overtimePay"`
	GrossSalary      string `csv:"grossSalary"`
	AbsenceDeduction string `csv:"absenceDeduction"`
	TotalDeductions  string `csv:"totalDeductions"`
	NetSalary        string `csv:"netSalary"`
	Messages         string `csv:"messages"`
}

const (
	StatusOK       = "ok"
	StatusWarning  = "warning"
	StatusRejected = "rejected"
)

// ReadWorkers decodes a worker CSV into intake entries, one per row.
// Cells that are not numbers are reported on the entry.
func ReadWorkers(r io.Reader) ([]intake.Entry, error) {
	var rows []*workerRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read workers csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	entries := make([]intake.Entry, len(rows))
	for i, row := range rows {
		entries[i] = row.entry()
	}
	return entries, nil
}

func (row *workerRow) entry() intake.Entry {
	var msgs []model.CalculationMessage
	parse := func(column, cell string) *float64 {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return nil
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeMalformedRecord,
				Message: fmt.Sprintf("%s must be a number, got %q", column, cell),
				Field:   column,
			})
			return nil
		}
		return &v
	}

	raw := intake.RawWorker{
		ID:                  strings.TrimSpace(row.ID),
		Name:                strings.TrimSpace(row.Name),
		BasicSalary:         parse("basicSalary", row.BasicSalary),
		Housing:             parse("housing", row.Housing),
		WorkNatureAllowance: parse("workNatureAllowance", row.WorkNatureAllowance),
		TransportAllowance:  parse("transportAllowance", row.TransportAllowance),
		PhoneAllowance:      parse("phoneAllowance", row.PhoneAllowance),
		FoodAllowance:       parse("foodAllowance", row.FoodAllowance),
		Commission:          parse("commission", row.Commission),
		Advances:            parse("advances", row.Advances),
		Penalties:           parse("penalties", row.Penalties),
		TotalOvertimeHours:  parse("totalOvertimeHours", row.TotalOvertimeHours),
		AbsentDays:          parse("absentDays", row.AbsentDays),
		AnnualLeaveDays:     parse("annualLeaveDays", row.AnnualLeaveDays),
		SickLeaveDays:       parse("sickLeaveDays", row.SickLeaveDays),
	}
	return intake.Entry{Raw: raw, Messages: msgs}
}

// WriteResults writes one row per outcome. Rejected rows keep their
// position with empty amounts.
func WriteResults(w io.Writer, entries []intake.Entry, outcomes []model.WorkerOutcome) error {
	rows := make([]*resultRow, len(outcomes))
	for i, o := range outcomes {
		row := &resultRow{
			Index:    o.Index,
			ID:       o.WorkerID,
			Messages: joinMessages(o.Messages),
		}
		if o.Index < len(entries) {
			row.Name = entries[o.Index].Raw.Name
		}
		switch {
		case o.Payroll == nil:
			row.Status = StatusRejected
		case len(o.Messages) > 0:
			row.Status = StatusWarning
		default:
			row.Status = StatusOK
		}
		if p := o.Payroll; p != nil {
			row.TotalAllowances = amount(p.TotalAllowances)
			row.OvertimePay = amount(p.OvertimePay)
			row.GrossSalary = amount(p.GrossSalary)
			row.AbsenceDeduction = amount(p.AbsenceDeduction)
			row.TotalDeductions = amount(p.TotalDeductions)
			row.NetSalary = amount(p.NetSalary)
		}
		rows[i] = row
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write results csv: %w", err)
	}
	return nil
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func joinMessages(msgs []model.CalculationMessage) string {
	parts := make([]string, len(msgs))
	for i, m := range msgs {
		parts[i] = m.Code + ": " + m.Message
	}
	return strings.Join(parts, "; ")
}
