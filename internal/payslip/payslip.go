package payslip

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jung-kurt/gofpdf"

	"payroll-engine/internal/model"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Render writes a one-page PDF payslip for rec to w.
func Render(w io.Writer, rec model.WorkerRecord, result model.PayrollResult, period model.Period) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", rec.Name, rec.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(10)

	lines := []struct {
		label string
		value float64
	}{
		{"Basic salary", rec.BasicSalary},
		{"Total allowances", result.TotalAllowances},
		{fmt.Sprintf("Overtime pay (%.2f h)", model.OrZero(rec.TotalOvertimeHours)), result.OvertimePay},
		{"Gross salary", result.GrossSalary},
		{fmt.Sprintf("Absence and leave (%.2f days)", absenceDays(rec)), result.AbsenceDeduction},
		{"Advances", model.OrZero(rec.Advances)},
		{"Penalties", model.OrZero(rec.Penalties)},
		{"Total deductions", result.TotalDeductions},
	}
	for _, l := range lines {
		pdf.CellFormat(100, 8, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", l.value), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(100, 8, "Net salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", result.NetSalary), "T", 1, "R", false, 0, "")

	return pdf.Output(w)
}

// WriteFile renders the payslip into dir and returns its path. The file name
// starts with the batch index, so workers whose ids clean up to the same
// name, or share an id, each get their own file.
func WriteFile(dir string, index int, rec model.WorkerRecord, result model.PayrollResult, period model.Period) (string, error) {
	name := unsafeChars.ReplaceAllString(rec.ID, "_")
	if name == "" || name == "_" {
		name = "worker"
	}
	path := filepath.Join(dir, fmt.Sprintf("%03d-%s-%s.pdf", index, name, period))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create payslip: %w", err)
	}
	if err := Render(f, rec, result, period); err != nil {
		f.Close()
		return "", fmt.Errorf("render payslip %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close payslip %s: %w", path, err)
	}
	return path, nil
}

func absenceDays(rec model.WorkerRecord) float64 {
	return model.OrZero(rec.AbsentDays) + model.OrZero(rec.AnnualLeaveDays) + model.OrZero(rec.SickLeaveDays)
}
