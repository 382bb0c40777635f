package payroll

import (
	"context"

	"golang.org/x/sync/errgroup"

	"payroll-engine/internal/model"
)

// ComputeAll applies Compute to each worker. results[i] belongs to workers[i].
func ComputeAll(workers []model.WorkerRecord, period model.Period) []model.PayrollResult {
	results := make([]model.PayrollResult, len(workers))
	for i := range workers {
		results[i] = Compute(workers[i], period)
	}
	return results
}

// ComputeAllConcurrent is ComputeAll split across at most limit goroutines.
// Each goroutine owns a contiguous range of the output, so no locking is
// needed. A cancelled ctx abandons the batch and returns ctx.Err().
func ComputeAllConcurrent(ctx context.Context, workers []model.WorkerRecord, period model.Period, limit int) ([]model.PayrollResult, error) {
	if limit <= 1 || len(workers) < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return ComputeAll(workers, period), nil
	}
	if limit > len(workers) {
		limit = len(workers)
	}

	results := make([]model.PayrollResult, len(workers))
	chunk := (len(workers) + limit - 1) / limit

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(workers); start += chunk {
		start := start
		end := min(start+chunk, len(workers))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = Compute(workers[i], period)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
