package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nodemart/backend/internal/employee"
	"github.com/nodemart/backend/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=shift
type Repository interface {
	AppendReport(ctx context.Context, report *Report) error
	ListRecent(ctx context.Context, limit int) ([]*Report, error)
}

// SaleLedger is the read surface of the sale transaction log.
type SaleLedger interface {
	FindByEmployeeSince(ctx context.Context, employeeID uuid.UUID, since time.Time, method *ledger.PaymentMethod) ([]*ledger.SaleTransaction, error)
}

// EmployeeDirectory resolves employee references.
type EmployeeDirectory interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
}

const defaultListLimit = 50

type Service struct {
	repo              Repository
	sales             SaleLedger
	employees         EmployeeDirectory
	criticalThreshold decimal.Decimal
	now               func() time.Time
	log               *zap.Logger
}

type Option func(*Service)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, sales SaleLedger, employees EmployeeDirectory, criticalThreshold decimal.Decimal, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		repo:              repo,
		sales:             sales,
		employees:         employees,
		criticalThreshold: criticalThreshold,
		now:               time.Now,
		log:               log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Close reconciles an employee's declared cash count against the day's cash
// sales and appends an immutable report. The expected figure is computed
// here, after the operator has committed to a count, never before.
func (s *Service) Close(ctx context.Context, employeeID uuid.UUID, actualCash decimal.Decimal) (*Report, error) {
	if actualCash.IsNegative() {
		return nil, ErrNegativeCash
	}

	if _, err := s.employees.GetEmployee(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("employee %s: %w", employeeID, err)
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	method := ledger.PaymentCash

	txs, err := s.sales.FindByEmployeeSince(ctx, employeeID, dayStart, &method)
	if err != nil {
		return nil, fmt.Errorf("reading today's cash sales: %w", err)
	}

	expected := decimal.Zero
	for _, tx := range txs {
		expected = expected.Add(tx.TotalAmount)
	}

	discrepancy := actualCash.Sub(expected)

	report := &Report{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		ClosedAt:     now.UTC().Truncate(time.Microsecond),
		ExpectedCash: expected,
		ActualCash:   actualCash,
		Discrepancy:  discrepancy,
		Status:       Classify(discrepancy, s.criticalThreshold),
	}

	if err := s.repo.AppendReport(ctx, report); err != nil {
		return nil, fmt.Errorf("appending shift report: %w", err)
	}

	if report.Status == StatusCriticalAlert {
		s.log.Warn("critical cash discrepancy",
			zap.String("employee_id", employeeID.String()),
			zap.String("discrepancy", discrepancy.StringFixed(2)),
		)
	}

	return report, nil
}

// ListRecent returns the newest shift reports, most recent first.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Report, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	return s.repo.ListRecent(ctx, limit)
}
