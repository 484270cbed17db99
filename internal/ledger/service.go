package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nodemart/backend/internal/catalog"
	"github.com/nodemart/backend/internal/employee"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	// BeginSale opens a unit of work that serializes ledger appends. Every
	// mutation of a sale happens inside it or not at all.
	BeginSale(ctx context.Context) (SaleTx, error)

	LatestTransaction(ctx context.Context) (*SaleTransaction, error)
	FindByEmployeeSince(ctx context.Context, employeeID uuid.UUID, since time.Time, method *PaymentMethod) ([]*SaleTransaction, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*SaleTransaction, error)
	ListAll(ctx context.Context) ([]*SaleTransaction, error)
}

// SaleTx is the unit of work for one sale. Implementations must guarantee
// that Commit applies everything and Rollback leaves no trace.
type SaleTx interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error)

	// DecrementStock subtracts qty only if the current level covers it and
	// reports whether the decrement was applied.
	DecrementStock(ctx context.Context, productID uuid.UUID, qty int) (bool, error)

	ApplySaleMetrics(ctx context.Context, employeeID uuid.UUID, totalAmount, profit decimal.Decimal, itemsSold int) error

	// LatestHash returns the hash and sequence number of the newest ledger
	// entry, or the genesis hash and zero when the ledger is empty.
	LatestHash(ctx context.Context) (hash string, seq int64, err error)

	// Append writes the transaction if the ledger head still is
	// expectedPrevSeq, otherwise it fails with ErrChainConflict.
	Append(ctx context.Context, tx *SaleTransaction, expectedPrevSeq int64) error

	Commit() error
	Rollback() error
}

// maxAppendRetries bounds how often a sale is retried after a chain conflict.
const maxAppendRetries = 3

type Service struct {
	repo       Repository
	marginRate decimal.Decimal
	now        func() time.Time
	log        *zap.Logger
}

type Option func(*Service)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, marginRate decimal.Decimal, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		marginRate: marginRate,
		now:        time.Now,
		log:        log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateSaleLine struct {
	ProductID uuid.UUID
	Quantity  int
}

type CreateSaleParams struct {
	EmployeeID    uuid.UUID
	PaymentMethod PaymentMethod
	Lines         []CreateSaleLine
}

func (p CreateSaleParams) validate() error {
	if len(p.Lines) == 0 {
		return &ValidationError{Reason: "cart is empty"}
	}

	if !p.PaymentMethod.Valid() {
		return &ValidationError{Reason: fmt.Sprintf("unknown payment method %q", p.PaymentMethod)}
	}

	for _, line := range p.Lines {
		if line.Quantity <= 0 {
			return &ValidationError{Reason: fmt.Sprintf("quantity %d for product %s must be positive", line.Quantity, line.ProductID)}
		}
	}

	return nil
}

// CreateSale turns a cart into one committed, hash-chained SaleTransaction.
// Stock decrements, employee rollups and the ledger append all commit
// together or not at all. A chain conflict rolls the whole attempt back and
// retries from a fresh read of the ledger head.
func (s *Service) CreateSale(ctx context.Context, params CreateSaleParams) (*SaleTransaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	var lastErr error

	for attempt := 1; attempt <= maxAppendRetries; attempt++ {
		sale, err := s.createSale(ctx, params)
		if err == nil {
			return sale, nil
		}

		if !errors.Is(err, ErrChainConflict) {
			return nil, err
		}

		lastErr = err

		s.log.Warn("ledger append conflict, retrying",
			zap.Int("attempt", attempt),
			zap.String("employee_id", params.EmployeeID.String()),
		)
	}

	return nil, lastErr
}

func (s *Service) createSale(ctx context.Context, params CreateSaleParams) (*SaleTransaction, error) {
	stx, err := s.repo.BeginSale(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin sale: %w", err)
	}
	defer stx.Rollback()

	if _, err := stx.GetEmployee(ctx, params.EmployeeID); err != nil {
		return nil, fmt.Errorf("employee %s: %w", params.EmployeeID, err)
	}

	// Resolve and check every line before touching any stock level, so a
	// failing line never leaves earlier lines decremented.
	products := make([]*catalog.Product, len(params.Lines))

	for i, line := range params.Lines {
		product, err := stx.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, err)
		}

		if product.StockLevel < line.Quantity {
			return nil, &InsufficientStockError{
				ProductID: product.ID,
				Name:      product.Name,
				Requested: line.Quantity,
				Available: product.StockLevel,
			}
		}

		products[i] = product
	}

	for i, line := range params.Lines {
		applied, err := stx.DecrementStock(ctx, line.ProductID, line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("decrement stock for %s: %w", line.ProductID, err)
		}

		if !applied {
			// The pre-check passed but the conditional update did not:
			// another sale got there first. The rollback undoes the lines
			// already decremented in this transaction.
			return nil, &InsufficientStockError{
				ProductID: products[i].ID,
				Name:      products[i].Name,
				Requested: line.Quantity,
				Available: products[i].StockLevel,
			}
		}
	}

	lines := make([]LineItem, len(params.Lines))
	total := decimal.Zero
	itemsSold := 0

	for i, line := range params.Lines {
		product := products[i]
		subtotal := product.CurrentPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))

		lines[i] = LineItem{
			ProductID:   product.ID,
			Name:        product.Name,
			Quantity:    line.Quantity,
			PriceAtSale: product.CurrentPrice,
			Subtotal:    subtotal,
		}

		total = total.Add(subtotal)
		itemsSold += line.Quantity
	}

	profit := total.Mul(s.marginRate)
	if err := stx.ApplySaleMetrics(ctx, params.EmployeeID, total, profit, itemsSold); err != nil {
		return nil, fmt.Errorf("apply sale metrics: %w", err)
	}

	prevHash, prevSeq, err := stx.LatestHash(ctx)
	if err != nil {
		return nil, fmt.Errorf("read ledger head: %w", err)
	}

	sale := &SaleTransaction{
		ID:            uuid.New(),
		EmployeeID:    params.EmployeeID,
		OccurredAt:    s.now().UTC().Truncate(time.Microsecond),
		Lines:         lines,
		TotalAmount:   total,
		PaymentMethod: params.PaymentMethod,
		PreviousHash:  prevHash,
	}
	sale.TransactionHash = sale.ComputeHash()

	if err := stx.Append(ctx, sale, prevSeq); err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}

	if err := stx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sale: %w", err)
	}

	return sale, nil
}

// HistoryForEmployee returns an employee's transactions, newest first.
func (s *Service) HistoryForEmployee(ctx context.Context, employeeID uuid.UUID) ([]*SaleTransaction, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}

// TrustScore is the percentage of an employee's transactions that carry a
// content hash. An employee with no transactions scores 100.
func (s *Service) TrustScore(ctx context.Context, employeeID uuid.UUID) (int, error) {
	txs, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	if len(txs) == 0 {
		return 100, nil
	}

	verified := 0

	for _, tx := range txs {
		if tx.TransactionHash != "" {
			verified++
		}
	}

	return int(math.Round(100 * float64(verified) / float64(len(txs)))), nil
}

// ChainBreak describes the first transaction at which chain verification failed.
type ChainBreak struct {
	Seq    int64
	ID     uuid.UUID
	Reason string
}

// VerifyChain walks the whole ledger in append order, recomputing every
// content hash and checking every predecessor link. It returns nil when the
// chain is intact.
func (s *Service) VerifyChain(ctx context.Context) (*ChainBreak, error) {
	txs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ledger: %w", err)
	}

	prevHash := GenesisHash

	for _, tx := range txs {
		if tx.PreviousHash != prevHash {
			return &ChainBreak{Seq: tx.Seq, ID: tx.ID, Reason: "previous hash does not match predecessor"}, nil
		}

		if !tx.VerifyHash() {
			return &ChainBreak{Seq: tx.Seq, ID: tx.ID, Reason: "content hash does not match record"}, nil
		}

		prevHash = tx.TransactionHash
	}

	return nil, nil
}
