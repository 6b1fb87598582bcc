package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/legend-harry/pranir-aquatech/internal/config"
	"github.com/legend-harry/pranir-aquatech/internal/domain/models"
	"github.com/legend-harry/pranir-aquatech/internal/repository/mongodb"
	"github.com/legend-harry/pranir-aquatech/internal/repository/sheets"
	"github.com/legend-harry/pranir-aquatech/internal/service/financial"
)

const outlookPeriods = 6

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	financialSvc *financial.Service
	priceRepo    sheets.Repository
	historyRepo  mongodb.Repository
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. A nil price repository
// disables the outlook job (the spreadsheet is optional).
func NewScheduler(cfg config.ReportingConfig, financialSvc *financial.Service, priceRepo sheets.Repository, historyRepo mongodb.Repository, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to UTC", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.UTC
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour,
	// dom, month, dow).
	c := cron.New(cron.WithLocation(location))

	return &Scheduler{
		cron:         c,
		financialSvc: financialSvc,
		priceRepo:    priceRepo,
		historyRepo:  historyRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	if s.priceRepo == nil {
		s.logger.Info("price history not configured, market outlook job disabled")
		return
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.generateMarketOutlook); err != nil {
		s.logger.Error("failed to schedule market outlook job", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) generateMarketOutlook() {
	s.logger.Info("generating market outlook")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	prices, err := s.priceRepo.ReadPriceHistory(ctx)
	if err != nil {
		s.logger.Error("failed to read price history", zap.Error(err))
		return
	}

	forecast, err := s.financialSvc.PredictMarketTrends(prices, outlookPeriods)
	if err != nil {
		s.logger.Error("failed to forecast market trends", zap.Error(err))
		return
	}

	outlook := models.MarketOutlook{
		Forecast:    forecast,
		PricePoints: len(prices),
		GeneratedAt: time.Now().UTC(),
	}

	if err := s.historyRepo.SaveMarketOutlook(ctx, outlook); err != nil {
		s.logger.Error("failed to persist market outlook", zap.Error(err))
		return
	}

	s.logger.Info("market outlook persisted", zap.String("trend", forecast.Trend))
}
