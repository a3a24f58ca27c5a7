package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/shopledger/shopledger/internal/config"
	"github.com/shopledger/shopledger/internal/repository/mongodb"
	"github.com/shopledger/shopledger/internal/scheduler"
	"github.com/shopledger/shopledger/internal/server/handlers"
	"github.com/shopledger/shopledger/internal/server/router"
	directorysvc "github.com/shopledger/shopledger/internal/service/directory"
	inventorysvc "github.com/shopledger/shopledger/internal/service/inventory"
	ledgersvc "github.com/shopledger/shopledger/internal/service/ledger"
	reportingsvc "github.com/shopledger/shopledger/internal/service/reporting"
	"github.com/shopledger/shopledger/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Logging.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	inventorySvc := inventorysvc.NewService(repo, repo, baseLogger.Named("svc.inventory"))
	ledgerSvc := ledgersvc.NewService(repo, inventorySvc, baseLogger.Named("svc.ledger"))
	directorySvc := directorysvc.NewService(repo, baseLogger.Named("svc.directory"))
	reportingSvc := reportingsvc.NewService(ledgerSvc, inventorySvc, repo, cfg.Currency.Symbol, baseLogger.Named("svc.reporting"))

	ledgerHandler := handlers.NewLedgerHandler(ledgerSvc, baseLogger.Named("handlers.ledger"))
	stockHandler := handlers.NewStockHandler(inventorySvc, baseLogger.Named("handlers.stock"))
	partyHandler := handlers.NewPartyHandler(directorySvc, baseLogger.Named("handlers.parties"))
	engine := router.New(ledgerHandler, stockHandler, partyHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Snapshot, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
