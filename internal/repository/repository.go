package repository

import (
	"crypto-scanner/config"
	"crypto-scanner/pkg/cache"
	"crypto-scanner/pkg/logger"
)

type Repository struct {
	BinanceRepo   BinanceRepository
	SyntheticRepo SyntheticCandleRepository
	CandleRepo    CandleRepository
}

func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, log *logger.Logger) *Repository {
	binanceRepo := NewBinanceRepository(cfg, log)
	syntheticRepo := NewSyntheticCandleRepository()
	candleRepo := NewCandleRepository(cfg, log, inmemoryCache, binanceRepo, syntheticRepo)

	return &Repository{
		BinanceRepo:   binanceRepo,
		SyntheticRepo: syntheticRepo,
		CandleRepo:    candleRepo,
	}
}
