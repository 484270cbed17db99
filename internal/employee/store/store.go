package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nodemart/backend/internal/employee"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s scanner) (*employee.Employee, error) {
	var emp employee.Employee

	if err := s.Scan(
		&emp.ID, &emp.Name, &emp.NodeLocation, &emp.ItemsSold,
		&emp.TotalSalesValue, &emp.ProfitGenerated, &emp.AvgDiscount, &emp.Rating,
		&emp.CreatedAt, &emp.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &emp, nil
}

const selectEmployeeColumns = `
	id, name, node_location, items_sold, total_sales_value, profit_generated, avg_discount, rating, created_at, updated_at
`

func (s *Store) GetEmployee(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employee.ErrNotFound
		}

		return nil, fmt.Errorf("getting employee: %w", err)
	}

	return emp, nil
}

func (s *Store) ListEmployees(ctx context.Context, nodeLocation string) ([]*employee.Employee, error) {
	query := `SELECT ` + selectEmployeeColumns + ` FROM employees`

	var args []any

	if nodeLocation != "" {
		query += ` WHERE node_location = $1`

		args = append(args, nodeLocation)
	}

	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*employee.Employee

	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}

		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}

	return employees, nil
}
