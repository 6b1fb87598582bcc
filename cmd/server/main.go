package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/legend-harry/pranir-aquatech/internal/config"
	"github.com/legend-harry/pranir-aquatech/internal/repository/mongodb"
	"github.com/legend-harry/pranir-aquatech/internal/repository/sheets"
	"github.com/legend-harry/pranir-aquatech/internal/scheduler"
	"github.com/legend-harry/pranir-aquatech/internal/server/handlers"
	"github.com/legend-harry/pranir-aquatech/internal/server/router"
	advisorsvc "github.com/legend-harry/pranir-aquatech/internal/service/advisor"
	financialsvc "github.com/legend-harry/pranir-aquatech/internal/service/financial"
	"github.com/legend-harry/pranir-aquatech/pkg/clients/generation"
	"github.com/legend-harry/pranir-aquatech/pkg/clients/retrieval"
	"github.com/legend-harry/pranir-aquatech/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var priceRepo sheets.Repository
	if cfg.Sheets.Enabled() {
		priceRepo, err = sheets.NewPriceHistoryRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init price history repository", zap.Error(err))
		}
	} else {
		baseLogger.Warn("price history spreadsheet not configured, market trend endpoints disabled")
	}

	// Initialize AI collaborator clients
	var generationClient generation.Client
	if cfg.Advisory.GenerationURL != "" {
		generationClient = generation.NewClient(cfg.Advisory.GenerationURL)
		baseLogger.Info("generation service client enabled")
	} else {
		baseLogger.Warn("generation service url missing, ai insights disabled")
	}

	var retrievalClient retrieval.Client
	if cfg.Advisory.RetrievalURL != "" {
		retrievalClient = retrieval.NewClient(cfg.Advisory.RetrievalURL)
		baseLogger.Info("retrieval service client enabled")
	} else {
		baseLogger.Warn("retrieval service url missing, insight prompts run without knowledge context")
	}

	financialSvc := financialsvc.NewService(baseLogger.Named("svc.financial"))
	advisorSvc := advisorsvc.NewService(generationClient, retrievalClient, baseLogger.Named("svc.advisor"))

	analysisHandler := handlers.NewAnalysisHandler(financialSvc, priceRepo, mongoRepo, baseLogger.Named("handlers.analysis"))
	advisorHandler := handlers.NewAdvisorHandler(advisorSvc, mongoRepo, baseLogger.Named("handlers.advisor"))
	engine := router.New(analysisHandler, advisorHandler, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(cfg.Reporting, financialSvc, priceRepo, mongoRepo, baseLogger.Named("scheduler"))
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
