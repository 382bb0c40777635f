package payroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-engine/internal/model"
)

var march2024 = model.Period{Year: 2024, Month: 3}

func baseWorker() model.WorkerRecord {
	return model.WorkerRecord{
		ID:                  "w-1",
		Name:                "Test Employee",
		BasicSalary:         6000,
		Housing:             1000,
		WorkNatureAllowance: 500,
		TransportAllowance:  300,
		PhoneAllowance:      100,
		FoodAllowance:       200,
	}
}

func TestComputeReferenceCase(t *testing.T) {
	w := baseWorker()
	w.TotalOvertimeHours = model.Float(10)
	w.AbsentDays = model.Float(2)

	got := Compute(w, march2024)

	assert.Equal(t, model.PayrollResult{
		OvertimePay:      375,
		AbsenceDeduction: 540,
		NetSalary:        7935,
		TotalAllowances:  2100,
		GrossSalary:      8475,
		TotalDeductions:  540,
	}, got)
}

func TestComputeWithoutOptionalFields(t *testing.T) {
	got := Compute(baseWorker(), march2024)

	assert.Equal(t, 2100.0, got.TotalAllowances)
	assert.Equal(t, 0.0, got.OvertimePay)
	assert.Equal(t, 0.0, got.AbsenceDeduction)
	assert.Equal(t, 0.0, got.TotalDeductions)
	assert.Equal(t, 8100.0, got.GrossSalary)
	assert.Equal(t, 8100.0, got.NetSalary)
}

func TestComputeExplicitZeroMatchesAbsent(t *testing.T) {
	explicit := baseWorker()
	explicit.Commission = model.Float(0)
	explicit.Advances = model.Float(0)
	explicit.Penalties = model.Float(0)
	explicit.TotalOvertimeHours = model.Float(0)
	explicit.AbsentDays = model.Float(0)
	explicit.AnnualLeaveDays = model.Float(0)
	explicit.SickLeaveDays = model.Float(0)

	assert.Equal(t, Compute(baseWorker(), march2024), Compute(explicit, march2024))
}

func TestComputeLeaveDeductedLikeAbsence(t *testing.T) {
	absent := baseWorker()
	absent.AbsentDays = model.Float(3)

	leave := baseWorker()
	leave.AnnualLeaveDays = model.Float(2)
	leave.SickLeaveDays = model.Float(1)

	a := Compute(absent, march2024)
	l := Compute(leave, march2024)
	assert.Equal(t, 810.0, a.AbsenceDeduction)
	assert.Equal(t, a, l)
}

func TestComputeCommissionCountsAsAllowance(t *testing.T) {
	w := baseWorker()
	w.Commission = model.Float(900)
	w.AbsentDays = model.Float(1)

	got := Compute(w, march2024)
	assert.Equal(t, 3000.0, got.TotalAllowances)
	// (6000+3000)/30
	assert.Equal(t, 300.0, got.AbsenceDeduction)
}

func TestComputeOvertimeUsesBasicSalaryOnly(t *testing.T) {
	w := baseWorker()
	w.Housing = 50000
	w.TotalOvertimeHours = model.Float(8)

	// 6000/30/8 = 25 per hour, 8h at 1.5x
	assert.Equal(t, 300.0, Compute(w, march2024).OvertimePay)
}

func TestComputeAdvancesAndPenalties(t *testing.T) {
	w := baseWorker()
	w.Advances = model.Float(1000)
	w.Penalties = model.Float(250.5)

	got := Compute(w, march2024)
	assert.Equal(t, 1250.5, got.TotalDeductions)
	assert.Equal(t, 6849.5, got.NetSalary)
}

func TestComputeIgnoresPeriod(t *testing.T) {
	w := baseWorker()
	w.AbsentDays = model.Float(4)
	w.TotalOvertimeHours = model.Float(3.5)

	feb := Compute(w, model.Period{Year: 2023, Month: 2})
	jan := Compute(w, model.Period{Year: 2024, Month: 1})
	none := Compute(w, model.Period{})
	assert.Equal(t, feb, jan)
	assert.Equal(t, feb, none)
}

func TestComputeIsIdempotentAndLeavesInputAlone(t *testing.T) {
	w := baseWorker()
	w.TotalOvertimeHours = model.Float(7.3)
	w.SickLeaveDays = model.Float(1.5)
	before := w
	overtime := *w.TotalOvertimeHours

	first := Compute(w, march2024)
	second := Compute(w, march2024)

	assert.Equal(t, math.Float64bits(first.NetSalary), math.Float64bits(second.NetSalary))
	assert.Equal(t, first, second)
	assert.Equal(t, before, w)
	assert.Equal(t, overtime, *w.TotalOvertimeHours)
}

func TestComputeNegativeInputsPassThrough(t *testing.T) {
	w := baseWorker()
	w.Housing = -1000
	w.Penalties = model.Float(-50)

	got := Compute(w, march2024)
	assert.Equal(t, 100.0, got.TotalAllowances)
	assert.Equal(t, -50.0, got.TotalDeductions)
	assert.Equal(t, 6150.0, got.NetSalary)
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.13},
		{-0.125, -0.13},
		{0.375, 0.38},
		{1.234, 1.23},
		{1.236, 1.24},
		// 1.005*100 is 100.49999999999999 in float64
		{1.005, 1.00},
		{0, 0},
		{8475, 8475},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestComputeRoundsOnlyAtOutput(t *testing.T) {
	w := model.WorkerRecord{Penalties: model.Float(0.125)}

	got := Compute(w, march2024)
	// half-to-even would give 0.12 and -0.12
	assert.Equal(t, 0.13, got.TotalDeductions)
	assert.Equal(t, -0.13, got.NetSalary)
}

func TestComputeArithmeticIdentities(t *testing.T) {
	workers := SyntheticWorkers(500)
	odd := baseWorker()
	odd.BasicSalary = 4321.17
	odd.Commission = model.Float(13.333)
	odd.TotalOvertimeHours = model.Float(11.7)
	odd.AbsentDays = model.Float(0.5)
	odd.Advances = model.Float(99.999)
	workers = append(workers, odd)

	for _, w := range workers {
		r := Compute(w, march2024)
		assert.InDelta(t, r.GrossSalary-r.TotalDeductions, r.NetSalary, 0.0101, "net for %s", w.ID)
		assert.InDelta(t, w.BasicSalary+r.TotalAllowances+r.OvertimePay, r.GrossSalary, 0.0151, "gross for %s", w.ID)
	}
}

func TestComputeLargeBatchStaysFinite(t *testing.T) {
	workers := make([]model.WorkerRecord, 1000)
	for i := range workers {
		f := float64(i + 1)
		workers[i] = model.WorkerRecord{
			ID:                  "scale",
			BasicSalary:         f * 1000,
			Housing:             f * 100,
			WorkNatureAllowance: f * 10,
			TransportAllowance:  f,
			PhoneAllowance:      f / 2,
			FoodAllowance:       f / 3,
			TotalOvertimeHours:  model.Float(f),
			AbsentDays:          model.Float(float64(i % 31)),
			Advances:            model.Float(f * 7),
		}
	}

	results := ComputeAll(workers, march2024)
	require.Len(t, results, len(workers))
	for i, r := range results {
		for _, v := range []float64{r.OvertimePay, r.AbsenceDeduction, r.NetSalary, r.TotalAllowances, r.GrossSalary, r.TotalDeductions} {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "record %d produced %v", i, v)
		}
	}
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(Compute(baseWorker(), march2024)))

	huge := baseWorker()
	huge.BasicSalary = 1.7e308
	huge.Housing = 1.7e308
	r := Compute(huge, march2024)
	assert.True(t, math.IsInf(r.GrossSalary, 1))
	assert.False(t, Finite(r))

	assert.False(t, Finite(model.PayrollResult{NetSalary: math.NaN()}))
}
