package shift_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/nodemart/backend/internal/employee"
	"github.com/nodemart/backend/internal/ledger"
	"github.com/nodemart/backend/internal/shift"
)

var testClock = func() time.Time {
	return time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
}

const criticalThreshold = "10"

func newTestService(repo shift.Repository, sales shift.SaleLedger, employees shift.EmployeeDirectory) *shift.Service {
	return shift.NewService(
		repo, sales, employees,
		decimal.RequireFromString(criticalThreshold),
		zap.NewNop(),
		shift.WithClock(testClock),
	)
}

func cashSales(amounts ...string) []*ledger.SaleTransaction {
	txs := make([]*ledger.SaleTransaction, len(amounts))
	for i, a := range amounts {
		txs[i] = &ledger.SaleTransaction{
			ID:            uuid.New(),
			TotalAmount:   decimal.RequireFromString(a),
			PaymentMethod: ledger.PaymentCash,
		}
	}

	return txs
}

func TestClassify(t *testing.T) {
	threshold := decimal.RequireFromString(criticalThreshold)

	tests := []struct {
		discrepancy string
		want        shift.Status
	}{
		{"0", shift.StatusMatched},
		{"0.01", shift.StatusMinorDiscrepancy},
		{"-0.01", shift.StatusMinorDiscrepancy},
		{"9.99", shift.StatusMinorDiscrepancy},
		{"-9.99", shift.StatusMinorDiscrepancy},
		{"10", shift.StatusCriticalAlert},
		{"-10", shift.StatusCriticalAlert},
		{"15", shift.StatusCriticalAlert},
	}

	for _, tt := range tests {
		t.Run(tt.discrepancy, func(t *testing.T) {
			got := shift.Classify(decimal.RequireFromString(tt.discrepancy), threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Close(t *testing.T) {
	empID := uuid.New()

	tests := []struct {
		name            string
		todaysCashSales []*ledger.SaleTransaction
		actualCash      string
		wantExpected    string
		wantDiscrepancy string
		wantStatus      shift.Status
	}{
		{
			name:            "ExactMatch",
			todaysCashSales: cashSales("40.00", "60.00"),
			actualCash:      "100.00",
			wantExpected:    "100.00",
			wantDiscrepancy: "0.00",
			wantStatus:      shift.StatusMatched,
		},
		{
			name:            "FiveOver",
			todaysCashSales: cashSales("40.00", "60.00"),
			actualCash:      "105.00",
			wantExpected:    "100.00",
			wantDiscrepancy: "5.00",
			wantStatus:      shift.StatusMinorDiscrepancy,
		},
		{
			name:            "FifteenOver",
			todaysCashSales: cashSales("40.00", "60.00"),
			actualCash:      "115.00",
			wantExpected:    "100.00",
			wantDiscrepancy: "15.00",
			wantStatus:      shift.StatusCriticalAlert,
		},
		{
			name:            "ShortBySeven",
			todaysCashSales: cashSales("100.00"),
			actualCash:      "93.00",
			wantExpected:    "100.00",
			wantDiscrepancy: "-7.00",
			wantStatus:      shift.StatusMinorDiscrepancy,
		},
		{
			name:            "NoSalesToday",
			todaysCashSales: nil,
			actualCash:      "0",
			wantExpected:    "0",
			wantDiscrepancy: "0",
			wantStatus:      shift.StatusMatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := shift.NewMockRepository(ctrl)
			sales := shift.NewMockSaleLedger(ctrl)
			employees := shift.NewMockEmployeeDirectory(ctrl)

			employees.EXPECT().GetEmployee(gomock.Any(), empID).Return(&employee.Employee{ID: empID}, nil)

			sales.EXPECT().
				FindByEmployeeSince(gomock.Any(), empID, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, since time.Time, method *ledger.PaymentMethod) ([]*ledger.SaleTransaction, error) {
					wantDayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
					assert.True(t, since.Equal(wantDayStart), "since = %s", since)

					require.NotNil(t, method)
					assert.Equal(t, ledger.PaymentCash, *method)

					return tt.todaysCashSales, nil
				})

			var persisted *shift.Report

			repo.EXPECT().
				AppendReport(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, r *shift.Report) error {
					persisted = r
					return nil
				})

			svc := newTestService(repo, sales, employees)

			report, err := svc.Close(context.Background(), empID, decimal.RequireFromString(tt.actualCash))

			require.NoError(t, err)
			require.NotNil(t, report)
			assert.Same(t, persisted, report)

			assert.Equal(t, empID, report.EmployeeID)
			assert.True(t, report.ExpectedCash.Equal(decimal.RequireFromString(tt.wantExpected)), "expected = %s", report.ExpectedCash)
			assert.True(t, report.Discrepancy.Equal(decimal.RequireFromString(tt.wantDiscrepancy)), "discrepancy = %s", report.Discrepancy)
			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Equal(t, testClock().UTC(), report.ClosedAt)
		})
	}
}

func TestService_Close_NegativeCash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nothing is touched: the declared count is rejected up front.
	repo := shift.NewMockRepository(ctrl)
	sales := shift.NewMockSaleLedger(ctrl)
	employees := shift.NewMockEmployeeDirectory(ctrl)

	svc := newTestService(repo, sales, employees)

	report, err := svc.Close(context.Background(), uuid.New(), decimal.RequireFromString("-1"))

	assert.ErrorIs(t, err, shift.ErrNegativeCash)
	assert.Nil(t, report)
}

func TestService_Close_EmployeeMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	empID := uuid.New()

	repo := shift.NewMockRepository(ctrl)
	sales := shift.NewMockSaleLedger(ctrl)
	employees := shift.NewMockEmployeeDirectory(ctrl)

	employees.EXPECT().GetEmployee(gomock.Any(), empID).Return(nil, employee.ErrNotFound)

	svc := newTestService(repo, sales, employees)

	report, err := svc.Close(context.Background(), empID, decimal.Zero)

	assert.ErrorIs(t, err, employee.ErrNotFound)
	assert.Nil(t, report)
}

func TestService_Close_AppendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	empID := uuid.New()

	repo := shift.NewMockRepository(ctrl)
	sales := shift.NewMockSaleLedger(ctrl)
	employees := shift.NewMockEmployeeDirectory(ctrl)

	employees.EXPECT().GetEmployee(gomock.Any(), empID).Return(&employee.Employee{ID: empID}, nil)
	sales.EXPECT().FindByEmployeeSince(gomock.Any(), empID, gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().AppendReport(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	svc := newTestService(repo, sales, employees)

	report, err := svc.Close(context.Background(), empID, decimal.Zero)

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestService_ListRecent(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "DefaultWhenZero", limit: 0, wantLimit: 50},
		{name: "DefaultWhenNegative", limit: -3, wantLimit: 50},
		{name: "ClampedWhenTooLarge", limit: 500, wantLimit: 50},
		{name: "PassedThrough", limit: 10, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := shift.NewMockRepository(ctrl)
			sales := shift.NewMockSaleLedger(ctrl)
			employees := shift.NewMockEmployeeDirectory(ctrl)

			reports := []*shift.Report{{ID: uuid.New()}}
			repo.EXPECT().ListRecent(gomock.Any(), tt.wantLimit).Return(reports, nil)

			svc := newTestService(repo, sales, employees)

			got, err := svc.ListRecent(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Equal(t, reports, got)
		})
	}
}
