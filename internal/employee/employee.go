package employee

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when an employee does not exist.
var ErrNotFound = errors.New("employee not found")

// Employee holds cumulative performance totals for one staff member.
// The cumulative fields only grow, and only through committed sales.
type Employee struct {
	ID              uuid.UUID
	Name            string
	NodeLocation    string
	ItemsSold       int
	TotalSalesValue decimal.Decimal
	ProfitGenerated decimal.Decimal
	AvgDiscount     decimal.Decimal
	Rating          string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
