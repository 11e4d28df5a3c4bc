package service

import (
	"context"
	"time"

	"crypto-scanner/config"
	"crypto-scanner/pkg/logger"
	"crypto-scanner/pkg/utils"

	"github.com/robfig/cron/v3"
)

// WarmupService periodically refreshes scan results for the configured
// watchlist so interactive requests land on a warm cache.
type WarmupService interface {
	Start(ctx context.Context)
	Stop()
}

type warmupService struct {
	cfg     *config.Config
	log     *logger.Logger
	scanner ScannerService
	cron    *cron.Cron
}

func NewWarmupService(cfg *config.Config, log *logger.Logger, scanner ScannerService) WarmupService {
	return &warmupService{
		cfg:     cfg,
		log:     log,
		scanner: scanner,
		cron:    cron.New(),
	}
}

func (s *warmupService) Start(ctx context.Context) {
	if !s.cfg.Warmup.Enabled || len(s.cfg.Warmup.Symbols) == 0 {
		s.log.Info("Cache warmup disabled")
		return
	}

	_, err := s.cron.AddFunc(s.cfg.Warmup.CronSpec, func() {
		utils.GoSafe(func() {
			runCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()

			batch := s.scanner.BatchScan(runCtx, s.cfg.Warmup.Symbols, s.cfg.Warmup.Interval)
			s.log.Info("Cache warmup run finished",
				logger.IntField("total", batch.Total),
				logger.IntField("failed", batch.Failed))
		})
	})
	if err != nil {
		s.log.Error("Failed to register warmup cron job", logger.ErrorField(err))
		return
	}

	s.log.Info("Starting cache warmup",
		logger.StringField("cron_spec", s.cfg.Warmup.CronSpec),
		logger.IntField("symbols", len(s.cfg.Warmup.Symbols)))
	s.cron.Start()
}

func (s *warmupService) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(10 * time.Second):
		s.log.Warn("Timeout waiting for warmup jobs to finish")
	}
}
