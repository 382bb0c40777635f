package engine

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"payroll-engine/internal/intake"
	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
)

// Process calculates one worker's payroll. Intake problems come back as
// messages with a FAILURE outcome and no payroll.
func Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()
	period := req.Period()

	rec, msgs := intake.DecodeJSON(req.Worker).Validate(period)

	resp := &model.CalculationResponse{}
	outcome := model.OutcomeFailure
	if !model.HasCritical(msgs) {
		result := payroll.Compute(rec, period)
		if payroll.Finite(result) {
			resp.Payroll = &result
			outcome = model.OutcomeSuccess
		} else {
			msgs = append(msgs, nonFiniteResult())
		}
	}
	numberMessages(msgs, 0)
	resp.Messages = nonNil(msgs)
	resp.Metadata = metadata(start, outcome, period)
	return resp
}

// ProcessBatch validates every entry, computes the valid ones and returns
// one outcome per entry in input order. An invalid entry never stops the
// others, and neither does one whose result overflows. The only error is
// ctx being cancelled.
func ProcessBatch(ctx context.Context, entries []intake.Entry, period model.Period, concurrency int) (*model.BatchCalculationResponse, error) {
	start := time.Now()

	outcomes := make([]model.WorkerOutcome, len(entries))
	valid := make([]model.WorkerRecord, 0, len(entries))
	positions := make([]int, 0, len(entries))
	nextID := 0

	for i, entry := range entries {
		rec, msgs := entry.Validate(period)
		nextID = numberMessages(msgs, nextID)
		outcomes[i] = model.WorkerOutcome{
			Index:    i,
			WorkerID: entry.Raw.ID,
			Messages: nonNil(msgs),
		}
		if model.HasCritical(msgs) {
			continue
		}
		valid = append(valid, rec)
		positions = append(positions, i)
	}

	results, err := payroll.ComputeAllConcurrent(ctx, valid, period, concurrency)
	if err != nil {
		return nil, err
	}
	computed := make([]model.PayrollResult, 0, len(results))
	for j := range results {
		o := &outcomes[positions[j]]
		if !payroll.Finite(results[j]) {
			msg := nonFiniteResult()
			msg.ID = nextID
			nextID++
			o.Messages = append(o.Messages, msg)
			continue
		}
		o.Payroll = &results[j]
		o.Record = &valid[j]
		computed = append(computed, results[j])
	}

	outcome := model.OutcomeSuccess
	switch {
	case len(entries) > 0 && len(computed) == 0:
		outcome = model.OutcomeFailure
	case len(computed) < len(entries):
		outcome = model.OutcomePartial
	}

	return &model.BatchCalculationResponse{
		Metadata: metadata(start, outcome, period),
		Results:  outcomes,
		Summary:  payroll.Summarize(computed),
	}, nil
}

// DecodeBatch decodes raw worker objects into entries.
func DecodeBatch(workers []json.RawMessage) []intake.Entry {
	entries := make([]intake.Entry, len(workers))
	for i, w := range workers {
		entries[i] = intake.DecodeJSON(w)
	}
	return entries
}

func metadata(start time.Time, outcome string, period model.Period) model.CalculationMetadata {
	elapsed := time.Since(start)
	now := time.Now().UTC()
	return model.CalculationMetadata{
		CalculationID:          uuid.New().String(),
		CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339Nano),
		CalculationCompletedAt: now.Format(time.RFC3339Nano),
		CalculationDurationMs:  elapsed.Milliseconds(),
		CalculationOutcome:     outcome,
		Period:                 period,
	}
}

// numberMessages gives msgs response-wide ids starting at next and returns
// the id after the last one used.
func numberMessages(msgs []model.CalculationMessage, next int) int {
	for i := range msgs {
		msgs[i].ID = next
		next++
	}
	return next
}

func nonFiniteResult() model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    model.CodeNonFiniteResult,
		Message: "payroll amounts overflow the float64 range",
	}
}

func nonNil(msgs []model.CalculationMessage) []model.CalculationMessage {
	if msgs == nil {
		return []model.CalculationMessage{}
	}
	return msgs
}
