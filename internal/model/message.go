package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeMissingField    = "MISSING_FIELD"
	CodeMalformedRecord = "MALFORMED_RECORD"
	CodeNonFiniteValue  = "NON_FINITE_VALUE"
	CodeInvalidPeriod   = "INVALID_PERIOD"
	CodeNegativeValue   = "NEGATIVE_VALUE"
	CodeNonFiniteResult = "NON_FINITE_RESULT"
)

// HasCritical reports whether any message blocks the calculation.
func HasCritical(msgs []CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == LevelCritical {
			return true
		}
	}
	return false
}
