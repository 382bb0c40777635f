package payslip

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-engine/internal/model"
)

var (
	period = model.Period{Year: 2024, Month: 3}
	rec    = model.WorkerRecord{
		ID:                 "w-1",
		Name:               "Jane Doe",
		BasicSalary:        6000,
		Housing:            1000,
		TotalOvertimeHours: model.Float(10),
		AbsentDays:         model.Float(2),
	}
	result = model.PayrollResult{OvertimePay: 375, AbsenceDeduction: 540, NetSalary: 7935, TotalAllowances: 2100, GrossSalary: 8475, TotalDeductions: 540}
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rec, result, period))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output is a PDF")
	assert.Greater(t, buf.Len(), 500)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, 0, rec, result, period)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "000-w-1-2024-03.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestWriteFileSanitizesName(t *testing.T) {
	dir := t.TempDir()

	odd := rec
	odd.ID = "../etc/passwd"
	path, err := WriteFile(dir, 3, odd, result, period)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	odd.ID = ""
	path, err = WriteFile(dir, 3, odd, result, period)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "003-worker-2024-03.pdf"), path)
}

func TestWriteFileKeepsCollidingIDsApart(t *testing.T) {
	dir := t.TempDir()

	a := rec
	a.ID = "a/b"
	b := rec
	b.ID = "a_b"
	workers := []model.WorkerRecord{a, b, b}

	paths := make(map[string]bool)
	for i, w := range workers {
		path, err := WriteFile(dir, i, w, result, period)
		require.NoError(t, err)
		paths[path] = true
	}
	assert.Len(t, paths, 3)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestWriteFileMissingDir(t *testing.T) {
	_, err := WriteFile(filepath.Join(t.TempDir(), "nope"), 0, rec, result, period)
	assert.Error(t, err)
}
