package ledger_test

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

	"github.com/nodemart/backend/internal/catalog"
	"github.com/nodemart/backend/internal/employee"
	"github.com/nodemart/backend/internal/ledger"
)

var (
	testClock = func() time.Time {
		return time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	}

	marginRate = decimal.RequireFromString("0.20")
)

func newTestService(repo ledger.Repository) *ledger.Service {
	return ledger.NewService(repo, marginRate, zap.NewNop(), ledger.WithClock(testClock))
}

func testProduct(name, price string, stock int) *catalog.Product {
	return &catalog.Product{
		ID:           uuid.New(),
		Name:         name,
		CurrentPrice: decimal.RequireFromString(price),
		StockLevel:   stock,
	}
}

func TestService_CreateSale_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	empID := uuid.New()
	notebook := testProduct("Notebook", "5.50", 3)
	pen := testProduct("Pen", "1.25", 10)

	repo := ledger.NewMockRepository(ctrl)
	stx := ledger.NewMockSaleTx(ctrl)

	repo.EXPECT().BeginSale(gomock.Any()).Return(stx, nil)
	stx.EXPECT().GetEmployee(gomock.Any(), empID).Return(&employee.Employee{ID: empID, Name: "Asha"}, nil)
	stx.EXPECT().GetProduct(gomock.Any(), notebook.ID).Return(notebook, nil)
	stx.EXPECT().GetProduct(gomock.Any(), pen.ID).Return(pen, nil)
	stx.EXPECT().DecrementStock(gomock.Any(), notebook.ID, 2).Return(true, nil)
	stx.EXPECT().DecrementStock(gomock.Any(), pen.ID, 4).Return(true, nil)
	stx.EXPECT().
		ApplySaleMetrics(gomock.Any(), empID, gomock.Any(), gomock.Any(), 6).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, total, profit decimal.Decimal, _ int) error {
			assert.True(t, total.Equal(decimal.RequireFromString("16.00")), "total = %s", total)
			assert.True(t, profit.Equal(decimal.RequireFromString("3.20")), "profit = %s", profit)
			return nil
		})
	stx.EXPECT().LatestHash(gomock.Any()).Return(ledger.GenesisHash, int64(0), nil)
	stx.EXPECT().Append(gomock.Any(), gomock.Any(), int64(0)).Return(nil)
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := newTestService(repo)

	sale, err := svc.CreateSale(context.Background(), ledger.CreateSaleParams{
		EmployeeID:    empID,
		PaymentMethod: ledger.PaymentCash,
		Lines: []ledger.CreateSaleLine{
			{ProductID: notebook.ID, Quantity: 2},
			{ProductID: pen.ID, Quantity: 4},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, empID, sale.EmployeeID)
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("16.00")))
	assert.Equal(t, ledger.GenesisHash, sale.PreviousHash)
	assert.True(t, sale.VerifyHash(), "stored hash must be reproducible from the record")
	assert.Equal(t, testClock().UTC(), sale.OccurredAt)

	require.Len(t, sale.Lines, 2)
	assert.True(t, sale.Lines[0].PriceAtSale.Equal(decimal.RequireFromString("5.50")))
	assert.True(t, sale.Lines[0].Subtotal.Equal(decimal.RequireFromString("11.00")))
	assert.True(t, sale.Lines[1].Subtotal.Equal(decimal.RequireFromString("5.00")))
}

func TestService_CreateSale_Validation(t *testing.T) {
	empID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name   string
		params ledger.CreateSaleParams
	}{
		{
			name: "EmptyCart",
			params: ledger.CreateSaleParams{
				EmployeeID:    empID,
				PaymentMethod: ledger.PaymentCash,
			},
		},
		{
			name: "ZeroQuantity",
			params: ledger.CreateSaleParams{
				EmployeeID:    empID,
				PaymentMethod: ledger.PaymentCash,
				Lines:         []ledger.CreateSaleLine{{ProductID: productID, Quantity: 0}},
			},
		},
		{
			name: "NegativeQuantity",
			params: ledger.CreateSaleParams{
				EmployeeID:    empID,
				PaymentMethod: ledger.PaymentCard,
				Lines:         []ledger.CreateSaleLine{{ProductID: productID, Quantity: -1}},
			},
		},
		{
			name: "UnknownPaymentMethod",
			params: ledger.CreateSaleParams{
				EmployeeID:    empID,
				PaymentMethod: "upi",
				Lines:         []ledger.CreateSaleLine{{ProductID: productID, Quantity: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No BeginSale expected: validation rejects before any store access.
			repo := ledger.NewMockRepository(ctrl)
			svc := newTestService(repo)

			sale, err := svc.CreateSale(context.Background(), tt.params)

			var validationErr *ledger.ValidationError

			require.Error(t, err)
			assert.ErrorAs(t, err, &validationErr)
			assert.Nil(t, sale)
		})
	}
}

func TestService_CreateSale_NotFound(t *testing.T) {
	empID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(stx *ledger.MockSaleTx)
		wantErr   error
	}{
		{
			name: "EmployeeMissing",
			setupMock: func(stx *ledger.MockSaleTx) {
				stx.EXPECT().GetEmployee(gomock.Any(), empID).Return(nil, employee.ErrNotFound)
			},
			wantErr: employee.ErrNotFound,
		},
		{
			name: "ProductMissing",
			setupMock: func(stx *ledger.MockSaleTx) {
				stx.EXPECT().GetEmployee(gomock.Any(), empID).Return(&employee.Employee{ID: empID}, nil)
				stx.EXPECT().GetProduct(gomock.Any(), productID).Return(nil, catalog.ErrNotFound)
			},
			wantErr: catalog.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			stx := ledger.NewMockSaleTx(ctrl)

			repo.EXPECT().BeginSale(gomock.Any()).Return(stx, nil)
			stx.EXPECT().Rollback().Return(nil)
			tt.setupMock(stx)

			svc := newTestService(repo)

			sale, err := svc.CreateSale(context.Background(), ledger.CreateSaleParams{
				EmployeeID:    empID,
				PaymentMethod: ledger.PaymentCash,
				Lines:         []ledger.CreateSaleLine{{ProductID: productID, Quantity: 1}},
			})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, sale)
		})
	}
}

func TestService_CreateSale_InsufficientStockAbortsWholeCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	empID := uuid.New()
	notebook := testProduct("Notebook", "5.50", 10)
	pen := testProduct("Pen", "1.25", 1)

	repo := ledger.NewMockRepository(ctrl)
	stx := ledger.NewMockSaleTx(ctrl)

	// Both products are resolved, but no stock is touched: the second line
	// fails the pre-check before any decrement runs.
	repo.EXPECT().BeginSale(gomock.Any()).Return(stx, nil)
	stx.EXPECT().GetEmployee(gomock.Any(), empID).Return(&employee.Employee{ID: empID}, nil)
	stx.EXPECT().GetProduct(gomock.Any(), notebook.ID).Return(notebook, nil)
	stx.EXPECT().GetProduct(gomock.Any(), pen.ID).Return(pen, nil)
	stx.EXPECT().Rollback().Return(nil)

	svc := newTestService(repo)

	sale, err := svc.CreateSale(context.Background(), ledger.CreateSaleParams{
		EmployeeID:    empID,
		PaymentMethod: ledger.PaymentCash,
		Lines: []ledger.CreateSaleLine{
			{ProductID: notebook.ID, Quantity: 2},
			{ProductID: pen.ID, Quantity: 3},
		},
	})

	var stockErr *ledger.InsufficientStockError

	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, pen.ID, stockErr.ProductID)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)
	assert.Nil(t, sale)
}

func TestService_CreateSale_ConditionalDecrementLosesRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	empID := uuid.New()
	notebook := testProduct("Notebook", "5.50", 2)

	repo := ledger.NewMockRepository(ctrl)
	stx := ledger.NewMockSaleTx(ctrl)

	repo.EXPECT().BeginSale(gomock.Any()).Return(stx, nil)
	stx.EXPECT().GetEmployee(gomock.Any(), empID).Return(&employee.Employee{ID: empID}, nil)
	stx.EXPECT().GetProduct(gomock.Any(), notebook.ID).Return(notebook, nil)
	// The pre-check saw enough stock, but the conditional update reports
	// that another sale drained it first.
	stx.EXPECT().DecrementStock(gomock.Any(), notebook.ID, 2).Return(false, nil)
	stx.EXPECT().Rollback().Return(nil)

	svc := newTestService(repo)

	sale, err := svc.CreateSale(context.Background(), ledger.CreateSaleParams{
		EmployeeID:    empID,
		PaymentMethod: ledger.PaymentCard,
		Lines:         []ledger.CreateSaleLine{{ProductID: notebook.ID, Quantity: 2}},
	})

	var stockErr *ledger.InsufficientStockError

	require.ErrorAs(t, err, &stockErr)
	assert.Nil(t, sale)
}

func TestService_CreateSale_RetriesOnChainConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	empID := uuid.New()
	notebook := testProduct("Notebook", "5.50", 10)

	repo := ledger.NewMockRepository(ctrl)

	expectAttempt := func(appendErr error) {
		stx := ledger.NewMockSaleTx(ctrl)

		repo.EXPECT().BeginSale(gomock.Any()).Return(stx, nil)
		stx.EXPECT().GetEmployee(gomock.Any(), empID).Return(&employee.Employee{ID: empID}, nil)
		stx.EXPECT().GetProduct(gomock.Any(), notebook.ID).Return(notebook, nil)
		stx.EXPECT().DecrementStock(gomock.Any(), notebook.ID, 1).Return(true, nil)
		stx.EXPECT().ApplySaleMetrics(gomock.Any(), empID, gomock.Any(), gomock.Any(), 1).Return(nil)
		stx.EXPECT().LatestHash(gomock.Any()).Return(ledger.GenesisHash, int64(0), nil)
		stx.EXPECT().Append(gomock.Any(), gomock.Any(), int64(0)).Return(appendErr)
		stx.EXPECT().Rollback().Return(nil).AnyTimes()

		if appendErr == nil {
			stx.EXPECT().Commit().Return(nil)
		}
	}

	expectAttempt(ledger.ErrChainConflict)
	expectAttempt(nil)

	svc := newTestService(repo)

	sale, err := svc.CreateSale(context.Background(), ledger.CreateSaleParams{
		EmployeeID:    empID,
		PaymentMethod: ledger.PaymentCash,
		Lines:         []ledger.CreateSaleLine{{ProductID: notebook.ID, Quantity: 1}},
	})

	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.True(t, sale.VerifyHash())
}

// TestService_CreateSale_StockDepletionScenario drives three sequential sales
// against one product with stock 3: sell 2, fail to sell 2, sell 1.
func TestService_CreateSale_StockDepletionScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	empID := uuid.New()
	productID := uuid.New()
	price := decimal.RequireFromString("4.00")

	stock := 3

	var (
		headHash = ledger.GenesisHash
		headSeq  int64
	)

	repo := ledger.NewMockRepository(ctrl)
	stx := ledger.NewMockSaleTx(ctrl)

	repo.EXPECT().BeginSale(gomock.Any()).Return(stx, nil).AnyTimes()
	stx.EXPECT().GetEmployee(gomock.Any(), empID).Return(&employee.Employee{ID: empID}, nil).AnyTimes()
	stx.EXPECT().
		GetProduct(gomock.Any(), productID).
		DoAndReturn(func(context.Context, uuid.UUID) (*catalog.Product, error) {
			return &catalog.Product{ID: productID, Name: "Notebook", CurrentPrice: price, StockLevel: stock}, nil
		}).
		AnyTimes()
	stx.EXPECT().
		DecrementStock(gomock.Any(), productID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, qty int) (bool, error) {
			if stock < qty {
				return false, nil
			}
			stock -= qty
			return true, nil
		}).
		AnyTimes()
	stx.EXPECT().ApplySaleMetrics(gomock.Any(), empID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	stx.EXPECT().
		LatestHash(gomock.Any()).
		DoAndReturn(func(context.Context) (string, int64, error) {
			return headHash, headSeq, nil
		}).
		AnyTimes()
	stx.EXPECT().
		Append(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *ledger.SaleTransaction, expectedPrevSeq int64) error {
			require.Equal(t, headSeq, expectedPrevSeq)
			headSeq++
			headHash = tx.TransactionHash
			tx.Seq = headSeq
			return nil
		}).
		AnyTimes()
	stx.EXPECT().Commit().Return(nil).AnyTimes()
	stx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := newTestService(repo)

	sell := func(qty int) (*ledger.SaleTransaction, error) {
		return svc.CreateSale(context.Background(), ledger.CreateSaleParams{
			EmployeeID:    empID,
			PaymentMethod: ledger.PaymentCash,
			Lines:         []ledger.CreateSaleLine{{ProductID: productID, Quantity: qty}},
		})
	}

	first, err := sell(2)
	require.NoError(t, err)
	assert.Equal(t, 1, stock)

	_, err = sell(2)

	var stockErr *ledger.InsufficientStockError

	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 1, stock, "failed sale must not change stock")

	third, err := sell(1)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)

	// The failed sale left no gap in the chain.
	assert.Equal(t, first.TransactionHash, third.PreviousHash)
}

func TestService_TrustScore(t *testing.T) {
	empID := uuid.New()

	verified := func() *ledger.SaleTransaction {
		return &ledger.SaleTransaction{ID: uuid.New(), TransactionHash: "a1b2"}
	}
	unverified := func() *ledger.SaleTransaction {
		return &ledger.SaleTransaction{ID: uuid.New()}
	}

	tests := []struct {
		name    string
		txs     []*ledger.SaleTransaction
		repoErr error
		want    int
		wantErr bool
	}{
		{
			name: "NoTransactionsVacuouslyTrusted",
			want: 100,
		},
		{
			name: "AllVerified",
			txs:  []*ledger.SaleTransaction{verified(), verified()},
			want: 100,
		},
		{
			name: "TwoOfThreeVerified",
			txs:  []*ledger.SaleTransaction{verified(), verified(), unverified()},
			want: 67,
		},
		{
			name: "NoneVerified",
			txs:  []*ledger.SaleTransaction{unverified()},
			want: 0,
		},
		{
			name:    "RepoError",
			repoErr: errors.New("db down"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			repo.EXPECT().ListByEmployee(gomock.Any(), empID).Return(tt.txs, tt.repoErr)

			svc := newTestService(repo)

			got, err := svc.TrustScore(context.Background(), empID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_VerifyChain(t *testing.T) {
	empID := uuid.New()

	buildChain := func(n int) []*ledger.SaleTransaction {
		txs := make([]*ledger.SaleTransaction, n)
		prev := ledger.GenesisHash

		for i := range txs {
			tx := &ledger.SaleTransaction{
				ID:         uuid.New(),
				Seq:        int64(i + 1),
				EmployeeID: empID,
				OccurredAt: time.Date(2026, 3, 14, 9+i, 0, 0, 0, time.UTC),
				Lines: []ledger.LineItem{{
					ProductID:   uuid.New(),
					Name:        "Notebook",
					Quantity:    1,
					PriceAtSale: decimal.RequireFromString("5.50"),
					Subtotal:    decimal.RequireFromString("5.50"),
				}},
				TotalAmount:   decimal.RequireFromString("5.50"),
				PaymentMethod: ledger.PaymentCash,
				PreviousHash:  prev,
			}
			tx.TransactionHash = tx.ComputeHash()
			prev = tx.TransactionHash
			txs[i] = tx
		}

		return txs
	}

	t.Run("IntactChain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return(buildChain(3), nil)

		svc := newTestService(repo)

		chainBreak, err := svc.VerifyChain(context.Background())
		require.NoError(t, err)
		assert.Nil(t, chainBreak)
	})

	t.Run("EmptyChain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		svc := newTestService(repo)

		chainBreak, err := svc.VerifyChain(context.Background())
		require.NoError(t, err)
		assert.Nil(t, chainBreak)
	})

	t.Run("TamperedRecordDetected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		txs := buildChain(3)
		txs[1].TotalAmount = decimal.RequireFromString("999.00")

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return(txs, nil)

		svc := newTestService(repo)

		chainBreak, err := svc.VerifyChain(context.Background())
		require.NoError(t, err)
		require.NotNil(t, chainBreak)
		assert.Equal(t, txs[1].Seq, chainBreak.Seq)
	})

	t.Run("RepointedPredecessorDetected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		txs := buildChain(3)
		txs[2].PreviousHash = txs[0].TransactionHash

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return(txs, nil)

		svc := newTestService(repo)

		chainBreak, err := svc.VerifyChain(context.Background())
		require.NoError(t, err)
		require.NotNil(t, chainBreak)
		assert.Equal(t, txs[2].Seq, chainBreak.Seq)
	})
}
