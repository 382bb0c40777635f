package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"payroll-engine/internal/config"
	"payroll-engine/internal/engine"
	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
)

const (
	pathHealth    = "/health"
	pathCalculate = "/api/v1/payroll/calculate"
	pathBatch     = "/api/v1/payroll/calculate/batch"
	pathProRata   = "/api/v1/payroll/prorata"
)

type Handler struct {
	cfg config.Config
	log *log.Logger
}

func New(cfg config.Config, logger *log.Logger) *Handler {
	return &Handler{cfg: cfg, log: logger}
}

// HandleRequest routes a request and logs its outcome.
func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch path {
	case pathHealth:
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			break
		}
		ctx.SetContentType("text/plain")
		ctx.SetBodyString("ok")
	case pathCalculate:
		if h.requirePost(ctx) {
			h.handleCalculate(ctx)
		}
	case pathBatch:
		if h.requirePost(ctx) {
			h.handleBatch(ctx)
		}
	case pathProRata:
		if h.requirePost(ctx) {
			h.handleProRata(ctx)
		}
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	entry := h.log.WithFields(log.Fields{
		"method":      string(ctx.Method()),
		"path":        path,
		"status":      ctx.Response.StatusCode(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if path == pathHealth {
		entry.Debug("request")
		return
	}
	entry.Info("request")
}

func (h *Handler) requirePost(ctx *fasthttp.RequestCtx) bool {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	return true
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := engine.Process(&req)

	status := fasthttp.StatusOK
	if resp.Metadata.CalculationOutcome == model.OutcomeFailure {
		status = fasthttp.StatusUnprocessableEntity
		h.log.WithFields(log.Fields{
			"calculation_id": resp.Metadata.CalculationID,
			"messages":       len(resp.Messages),
		}).Warn("worker rejected")
	}
	writeJSON(ctx, status, resp)
}

func (h *Handler) handleBatch(ctx *fasthttp.RequestCtx) {
	var req model.BatchCalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Workers) > h.cfg.MaxBatchSize {
		writeError(ctx, fasthttp.StatusRequestEntityTooLarge, fmt.Sprintf("Batch exceeds the maximum of %d workers", h.cfg.MaxBatchSize))
		return
	}

	cctx, cancel := context.WithTimeout(context.Background(), h.cfg.WriteTimeout)
	defer cancel()

	resp, err := engine.ProcessBatch(cctx, engine.DecodeBatch(req.Workers), req.Period(), h.cfg.BatchConcurrency)
	if err != nil {
		h.log.WithError(err).Error("batch calculation aborted")
		writeError(ctx, fasthttp.StatusServiceUnavailable, "Batch calculation aborted")
		return
	}

	h.log.WithFields(log.Fields{
		"calculation_id": resp.Metadata.CalculationID,
		"workers":        len(req.Workers),
		"computed":       resp.Summary.EmployeeCount,
		"outcome":        resp.Metadata.CalculationOutcome,
	}).Info("batch calculated")
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleProRata(ctx *fasthttp.RequestCtx) {
	var req model.ProRataRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	period := model.Period{Year: req.Year, Month: req.Month}
	if !period.Valid() {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, "year and month are required")
		return
	}
	if req.Basis == "" {
		req.Basis = model.BasisFixed30
	}

	daysInMonth := period.DaysIn()
	var (
		salary float64
		err    error
	)
	switch req.Basis {
	case model.BasisFixed30:
		salary, err = payroll.ProRataSalary(req.MonthlySalary, req.StartDay, daysInMonth)
	case model.BasisActual:
		salary, err = payroll.ProRataSalaryActualDays(req.MonthlySalary, req.StartDay, daysInMonth)
	default:
		writeError(ctx, fasthttp.StatusBadRequest, "basis must be fixed30 or actual")
		return
	}
	if err != nil {
		status := fasthttp.StatusInternalServerError
		if errors.Is(err, payroll.ErrInvalidStartDay) {
			status = fasthttp.StatusUnprocessableEntity
		}
		writeError(ctx, status, err.Error())
		return
	}
	if math.IsInf(salary, 0) || math.IsNaN(salary) {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, "pro-rata salary overflows the float64 range")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, model.ProRataResponse{
		ProRataSalary: salary,
		DaysWorked:    daysInMonth - req.StartDay + 1,
		DaysInMonth:   daysInMonth,
		Basis:         req.Basis,
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.ResetBody()
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"status":500,"message":"failed to encode response"}`)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
