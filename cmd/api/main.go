package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nodemart/backend/internal/catalog"
	catalogStore "github.com/nodemart/backend/internal/catalog/store"
	"github.com/nodemart/backend/internal/config"
	"github.com/nodemart/backend/internal/database"
	"github.com/nodemart/backend/internal/employee"
	employeeStore "github.com/nodemart/backend/internal/employee/store"
	nodemartHttp "github.com/nodemart/backend/internal/http"
	catalogHandler "github.com/nodemart/backend/internal/http/catalog"
	employeeHandler "github.com/nodemart/backend/internal/http/employee"
	ledgerHandler "github.com/nodemart/backend/internal/http/ledger"
	shiftHandler "github.com/nodemart/backend/internal/http/shift"
	"github.com/nodemart/backend/internal/ledger"
	ledgerStore "github.com/nodemart/backend/internal/ledger/store"
	"github.com/nodemart/backend/internal/logger"
	"github.com/nodemart/backend/internal/shift"
	shiftStore "github.com/nodemart/backend/internal/shift/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	zap.ReplaceGlobals(log)

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatal("failed to apply schema", zap.Error(err))
	}

	var (
		catalogSt  = catalogStore.New(db)
		employeeSt = employeeStore.New(db)
		ledgerSt   = ledgerStore.New(db)
		shiftSt    = shiftStore.New(db)
	)

	var (
		catalogService  = catalog.NewService(catalogSt)
		employeeService = employee.NewService(employeeSt)
		ledgerService   = ledger.NewService(ledgerSt, decimal.NewFromFloat(cfg.Ledger.MarginRate), log.Named("svc.ledger"))
		shiftService    = shift.NewService(shiftSt, ledgerSt, employeeSt, decimal.NewFromFloat(cfg.Shift.CriticalThreshold), log.Named("svc.shift"))
	)

	var (
		productsH     = catalogHandler.NewHandler(catalogService, log.Named("handlers.catalog"))
		employeesH    = employeeHandler.NewHandler(employeeService, ledgerService, log.Named("handlers.employee"))
		transactionsH = ledgerHandler.NewHandler(ledgerService, log.Named("handlers.ledger"))
		shiftsH       = shiftHandler.NewHandler(shiftService, log.Named("handlers.shift"))
	)

	router := nodemartHttp.New(log.Named("router"), cfg.CORS.AllowedOrigins, productsH, employeesH, transactionsH, shiftsH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", zap.Int("port", cfg.App.Port))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
