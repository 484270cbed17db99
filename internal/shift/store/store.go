package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nodemart/backend/internal/shift"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) AppendReport(ctx context.Context, report *shift.Report) error {
	query := `
		INSERT INTO shift_reports (id, employee_id, closed_at, expected_cash, actual_cash, discrepancy, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		report.ID, report.EmployeeID, report.ClosedAt,
		report.ExpectedCash, report.ActualCash, report.Discrepancy, report.Status,
	)
	if err != nil {
		return fmt.Errorf("inserting shift report: %w", err)
	}

	return nil
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]*shift.Report, error) {
	query := `
		SELECT id, employee_id, closed_at, expected_cash, actual_cash, discrepancy, status
		FROM shift_reports
		ORDER BY closed_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing shift reports: %w", err)
	}
	defer rows.Close()

	var reports []*shift.Report

	for rows.Next() {
		var r shift.Report

		if err := rows.Scan(
			&r.ID, &r.EmployeeID, &r.ClosedAt,
			&r.ExpectedCash, &r.ActualCash, &r.Discrepancy, &r.Status,
		); err != nil {
			return nil, fmt.Errorf("scanning shift report: %w", err)
		}

		reports = append(reports, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shift reports: %w", err)
	}

	return reports, nil
}
