package csvio

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-engine/internal/engine"
	"payroll-engine/internal/model"
)

const workersCSV = `id,name,basicSalary,housing,workNatureAllowance,transportAllowance,phoneAllowance,foodAllowance,commission,advances,penalties,totalOvertimeHours,absentDays,annualLeaveDays,sickLeaveDays
w-1,Jane Doe,6000,1000,500,300,100,200,,,,10,2,,
w-2,John Roe,3000,0,0,0,0,,0,,,,,,
w-3,Bad Cell,abc,0,0,0,0,0,,,,,,,
w-4,Refund,3000,0,0,0,0,0,,,-100,,,,
`

func TestReadWorkers(t *testing.T) {
	entries, err := ReadWorkers(strings.NewReader(workersCSV))
	require.NoError(t, err)
	require.Len(t, entries, 4)

	first := entries[0]
	assert.Empty(t, first.Messages)
	assert.Equal(t, "w-1", first.Raw.ID)
	assert.Equal(t, "Jane Doe", first.Raw.Name)
	assert.Equal(t, 6000.0, *first.Raw.BasicSalary)
	assert.Equal(t, 10.0, *first.Raw.TotalOvertimeHours)
	assert.Nil(t, first.Raw.Commission, "blank optional cell is absent")

	assert.Nil(t, entries[1].Raw.FoodAllowance)
	require.NotNil(t, entries[1].Raw.Commission)
	assert.Equal(t, 0.0, *entries[1].Raw.Commission)

	require.Len(t, entries[2].Messages, 1)
	assert.Equal(t, model.CodeMalformedRecord, entries[2].Messages[0].Code)
	assert.Equal(t, "basicSalary", entries[2].Messages[0].Field)
}

func TestReadWorkersOptionalColumnsMayBeLeftOut(t *testing.T) {
	in := "id,basicSalary,housing,workNatureAllowance,transportAllowance,phoneAllowance,foodAllowance\nw-9,1,2,3,4,5,6\n"

	entries, err := ReadWorkers(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Messages)
	assert.Nil(t, entries[0].Raw.SickLeaveDays)
}

func TestReadWorkersEmpty(t *testing.T) {
	_, err := ReadWorkers(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadWorkers(strings.NewReader("id,name,basicSalary\n"))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestWriteResults(t *testing.T) {
	entries, err := ReadWorkers(strings.NewReader(workersCSV))
	require.NoError(t, err)

	resp, err := engine.ProcessBatch(context.Background(), entries, model.Period{Year: 2024, Month: 3}, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, entries, resp.Results))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	header := records[0]
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("missing column %s", name)
		return -1
	}

	assert.Equal(t, "w-1", records[1][col("id")])
	assert.Equal(t, "Jane Doe", records[1][col("name")])
	assert.Equal(t, StatusOK, records[1][col("status")])
	assert.Equal(t, "7935.00", records[1][col("netSalary")])
	assert.Equal(t, "8475.00", records[1][col("grossSalary")])

	assert.Equal(t, StatusRejected, records[2][col("status")])
	assert.Empty(t, records[2][col("netSalary")])
	assert.Contains(t, records[2][col("messages")], model.CodeMissingField)

	assert.Equal(t, StatusRejected, records[3][col("status")])
	assert.Contains(t, records[3][col("messages")], "basicSalary must be a number")

	assert.Equal(t, StatusWarning, records[4][col("status")])
	assert.Equal(t, "3100.00", records[4][col("netSalary")])
}
