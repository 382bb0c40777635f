package model

import json "github.com/goccy/go-json"

// CalculationRequest asks for a single worker's payroll. Worker is kept raw
// so that intake can report missing and malformed fields itself.
type CalculationRequest struct {
	Worker json.RawMessage `json:"worker"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
}

func (r *CalculationRequest) Period() Period {
	return Period{Year: r.Year, Month: r.Month}
}

type BatchCalculationRequest struct {
	Workers []json.RawMessage `json:"workers"`
	Year    int               `json:"year"`
	Month   int               `json:"month"`
}

func (r *BatchCalculationRequest) Period() Period {
	return Period{Year: r.Year, Month: r.Month}
}

type ProRataRequest struct {
	MonthlySalary float64 `json:"monthlySalary"`
	StartDay      int     `json:"startDay"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Basis         string  `json:"basis"`
}

const (
	BasisFixed30 = "fixed30"
	BasisActual  = "actual"
)
