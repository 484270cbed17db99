package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nodemart/backend/internal/catalog"
	"github.com/nodemart/backend/internal/employee"
	"github.com/nodemart/backend/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// chainLockKey is the advisory lock key that serializes ledger appends.
// Every BeginSale takes it for the lifetime of its transaction, so two
// concurrent sales can never chain to the same predecessor.
func chainLockKey() int64 {
	h := fnv.New64a()
	h.Write([]byte("sale_transactions"))

	return int64(h.Sum64())
}

func (s *Store) BeginSale(ctx context.Context) (ledger.SaleTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning sale tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", chainLockKey()); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring ledger lock: %w", err)
	}

	return &saleTx{tx: dbTx}, nil
}

type saleTx struct {
	tx *sql.Tx
}

func (stx *saleTx) Commit() error   { return stx.tx.Commit() }
func (stx *saleTx) Rollback() error { return stx.tx.Rollback() }

func (stx *saleTx) GetEmployee(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	query := `
		SELECT id, name, node_location, items_sold, total_sales_value, profit_generated, avg_discount, rating, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee

	err := stx.tx.QueryRowContext(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.NodeLocation, &emp.ItemsSold,
		&emp.TotalSalesValue, &emp.ProfitGenerated, &emp.AvgDiscount, &emp.Rating,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employee.ErrNotFound
		}

		return nil, fmt.Errorf("getting employee: %w", err)
	}

	return &emp, nil
}

// GetProduct reads the product with a row lock held until commit, so the
// price snapshotted into the sale cannot change under the transaction.
func (stx *saleTx) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	query := `
		SELECT id, name, category, current_price, stock_level, student_benefits, available_in_other_nodes, created_at, updated_at
		FROM products
		WHERE id = $1
		FOR UPDATE
	`

	var p catalog.Product

	err := stx.tx.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.CurrentPrice, &p.StockLevel,
		&p.StudentBenefits, &p.AvailableInOtherNodes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return &p, nil
}

func (stx *saleTx) DecrementStock(ctx context.Context, productID uuid.UUID, qty int) (bool, error) {
	query := `
		UPDATE products
		SET stock_level = stock_level - $1, updated_at = NOW()
		WHERE id = $2 AND stock_level >= $1
	`

	res, err := stx.tx.ExecContext(ctx, query, qty, productID)
	if err != nil {
		return false, fmt.Errorf("decrementing stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}

	return affected == 1, nil
}

func (stx *saleTx) ApplySaleMetrics(ctx context.Context, employeeID uuid.UUID, totalAmount, profit decimal.Decimal, itemsSold int) error {
	query := `
		UPDATE employees
		SET total_sales_value = total_sales_value + $1,
		    profit_generated = profit_generated + $2,
		    items_sold = items_sold + $3,
		    updated_at = NOW()
		WHERE id = $4
	`

	if _, err := stx.tx.ExecContext(ctx, query, totalAmount, profit, itemsSold, employeeID); err != nil {
		return fmt.Errorf("applying sale metrics: %w", err)
	}

	return nil
}

func (stx *saleTx) LatestHash(ctx context.Context) (string, int64, error) {
	query := `SELECT transaction_hash, seq FROM sale_transactions ORDER BY seq DESC LIMIT 1`

	var (
		hash string
		seq  int64
	)

	err := stx.tx.QueryRowContext(ctx, query).Scan(&hash, &seq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ledger.GenesisHash, 0, nil
		}

		return "", 0, fmt.Errorf("reading ledger head: %w", err)
	}

	return hash, seq, nil
}

func (stx *saleTx) Append(ctx context.Context, tx *ledger.SaleTransaction, expectedPrevSeq int64) error {
	// The advisory lock already serializes appends; this re-check turns a
	// violated assumption into an abort instead of a silently re-pointed chain.
	var headSeq int64
	if err := stx.tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM sale_transactions`).Scan(&headSeq); err != nil {
		return fmt.Errorf("re-reading ledger head: %w", err)
	}

	if headSeq != expectedPrevSeq {
		return ledger.ErrChainConflict
	}

	insertTx := `
		INSERT INTO sale_transactions (id, employee_id, occurred_at, total_amount, payment_method, transaction_hash, previous_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq
	`

	err := stx.tx.QueryRowContext(ctx, insertTx,
		tx.ID, tx.EmployeeID, tx.OccurredAt, tx.TotalAmount, tx.PaymentMethod, tx.TransactionHash, tx.PreviousHash,
	).Scan(&tx.Seq)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}

	insertLine := `
		INSERT INTO sale_line_items (transaction_id, position, product_id, name, quantity, price_at_sale, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for i, li := range tx.Lines {
		if _, err := stx.tx.ExecContext(ctx, insertLine,
			tx.ID, i, li.ProductID, li.Name, li.Quantity, li.PriceAtSale, li.Subtotal,
		); err != nil {
			return fmt.Errorf("inserting line item: %w", err)
		}
	}

	return nil
}

const selectTransactionColumns = `
	t.id, t.seq, t.employee_id, t.occurred_at, t.total_amount, t.payment_method, t.transaction_hash, t.previous_hash,
	l.product_id, l.name, l.quantity, l.price_at_sale, l.subtotal
`

// collectTransactions folds joined transaction/line rows into transactions.
// Rows must be ordered by transaction first, line position second.
func collectTransactions(rows *sql.Rows) ([]*ledger.SaleTransaction, error) {
	var txs []*ledger.SaleTransaction

	var current *ledger.SaleTransaction

	for rows.Next() {
		var (
			tx ledger.SaleTransaction
			li ledger.LineItem
		)

		if err := rows.Scan(
			&tx.ID, &tx.Seq, &tx.EmployeeID, &tx.OccurredAt, &tx.TotalAmount,
			&tx.PaymentMethod, &tx.TransactionHash, &tx.PreviousHash,
			&li.ProductID, &li.Name, &li.Quantity, &li.PriceAtSale, &li.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("scanning transaction row: %w", err)
		}

		if current == nil || current.ID != tx.ID {
			tx.Lines = []ledger.LineItem{li}
			txs = append(txs, &tx)
			current = txs[len(txs)-1]

			continue
		}

		current.Lines = append(current.Lines, li)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]*ledger.SaleTransaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (s *Store) LatestTransaction(ctx context.Context) (*ledger.SaleTransaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM sale_transactions t
		JOIN sale_line_items l ON l.transaction_id = t.id
		WHERE t.seq = (SELECT MAX(seq) FROM sale_transactions)
		ORDER BY l.position ASC`

	txs, err := s.queryTransactions(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(txs) == 0 {
		return nil, nil
	}

	return txs[0], nil
}

func (s *Store) FindByEmployeeSince(ctx context.Context, employeeID uuid.UUID, since time.Time, method *ledger.PaymentMethod) ([]*ledger.SaleTransaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM sale_transactions t
		JOIN sale_line_items l ON l.transaction_id = t.id
		WHERE t.employee_id = $1 AND t.occurred_at >= $2`

	args := []any{employeeID, since}

	if method != nil {
		query += ` AND t.payment_method = $3`

		args = append(args, *method)
	}

	query += ` ORDER BY t.seq ASC, l.position ASC`

	return s.queryTransactions(ctx, query, args...)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*ledger.SaleTransaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM sale_transactions t
		JOIN sale_line_items l ON l.transaction_id = t.id
		WHERE t.employee_id = $1
		ORDER BY t.seq DESC, l.position ASC`

	return s.queryTransactions(ctx, query, employeeID)
}

func (s *Store) ListAll(ctx context.Context) ([]*ledger.SaleTransaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM sale_transactions t
		JOIN sale_line_items l ON l.transaction_id = t.id
		ORDER BY t.seq ASC, l.position ASC`

	return s.queryTransactions(ctx, query)
}
