package shift

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNegativeCash is returned when a declared cash count is below zero.
var ErrNegativeCash = errors.New("actual cash must not be negative")

// Status classifies the gap between counted and expected cash.
type Status string

const (
	StatusMatched          Status = "matched"
	StatusMinorDiscrepancy Status = "minor_discrepancy"
	StatusCriticalAlert    Status = "critical_alert"
)

// Report is the immutable outcome of one shift close.
type Report struct {
	ID           uuid.UUID
	EmployeeID   uuid.UUID
	ClosedAt     time.Time
	ExpectedCash decimal.Decimal
	ActualCash   decimal.Decimal
	Discrepancy  decimal.Decimal
	Status       Status
}

// Classify maps a discrepancy to its audit status. A gap at or beyond the
// critical threshold, in either direction, is a critical alert.
func Classify(discrepancy, criticalThreshold decimal.Decimal) Status {
	if discrepancy.IsZero() {
		return StatusMatched
	}

	if discrepancy.Abs().GreaterThanOrEqual(criticalThreshold) {
		return StatusCriticalAlert
	}

	return StatusMinorDiscrepancy
}
