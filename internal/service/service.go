package service

import (
	"crypto-scanner/config"
	"crypto-scanner/internal/repository"
	"crypto-scanner/pkg/cache"
	"crypto-scanner/pkg/logger"
)

type Service struct {
	ScannerService ScannerService
	MarketService  MarketService
	WarmupService  WarmupService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	scannerService := NewScannerService(cfg, log, inmemoryCache, repo.CandleRepo)
	marketService := NewMarketService(cfg, log, repo.CandleRepo)
	warmupService := NewWarmupService(cfg, log, scannerService)

	return &Service{
		ScannerService: scannerService,
		MarketService:  marketService,
		WarmupService:  warmupService,
	}
}
