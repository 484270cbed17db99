package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nodemart/backend/internal/catalog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*catalog.Product, error) {
	var p catalog.Product

	if err := s.Scan(
		&p.ID, &p.Name, &p.Category, &p.CurrentPrice, &p.StockLevel,
		&p.StudentBenefits, &p.AvailableInOtherNodes, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

const selectProductColumns = `
	id, name, category, current_price, stock_level, student_benefits, available_in_other_nodes, created_at, updated_at
`

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	historyQuery := `
		SELECT price, recorded_at
		FROM product_price_history
		WHERE product_id = $1
		ORDER BY recorded_at ASC
	`

	rows, err := s.db.QueryContext(ctx, historyQuery, id)
	if err != nil {
		return nil, fmt.Errorf("loading price history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pp catalog.PricePoint

		if err := rows.Scan(&pp.Price, &pp.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning price point: %w", err)
		}

		p.PriceHistory = append(p.PriceHistory, pp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price history: %w", err)
	}

	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*catalog.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

// UpdatePrice sets the new price and archives the old one in the same
// database transaction.
func (s *Store) UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	historyQuery := `
		INSERT INTO product_price_history (product_id, price, recorded_at)
		SELECT id, current_price, NOW() FROM products WHERE id = $1
	`

	res, err := dbTx.ExecContext(ctx, historyQuery, id)
	if err != nil {
		return fmt.Errorf("archiving current price: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}

	if affected == 0 {
		return catalog.ErrNotFound
	}

	updateQuery := `
		UPDATE products
		SET current_price = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := dbTx.ExecContext(ctx, updateQuery, price, id); err != nil {
		return fmt.Errorf("updating price: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing price update: %w", err)
	}

	return nil
}
