package service

import (
	"context"
	"fmt"

	"crypto-scanner/config"
	"crypto-scanner/internal/dto"
	"crypto-scanner/internal/repository"
	"crypto-scanner/pkg/logger"
)

// MarketService exposes raw market data. Unlike the scanner it is strict:
// upstream failures propagate to the caller instead of falling back to
// synthetic data.
type MarketService interface {
	GetCandles(ctx context.Context, symbol, interval string, limit int) (*dto.CandleData, error)
	GetLastPrice(ctx context.Context, symbol string) (*dto.LastPrice, error)
}

type marketService struct {
	cfg        *config.Config
	log        *logger.Logger
	candleRepo repository.CandleRepository
}

func NewMarketService(cfg *config.Config, log *logger.Logger, candleRepo repository.CandleRepository) MarketService {
	return &marketService{
		cfg:        cfg,
		log:        log,
		candleRepo: candleRepo,
	}
}

func (s *marketService) GetCandles(ctx context.Context, symbol, interval string, limit int) (*dto.CandleData, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if interval == "" {
		interval = s.cfg.Scanner.DefaultInterval
	}
	if !dto.IsValidInterval(interval) {
		return nil, fmt.Errorf("unsupported interval: %s", interval)
	}
	if limit <= 0 || limit > 1000 {
		limit = s.cfg.Scanner.CandleLimit
	}

	return s.candleRepo.GetCandles(ctx, symbol, interval, limit)
}

func (s *marketService) GetLastPrice(ctx context.Context, symbol string) (*dto.LastPrice, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	price, err := s.candleRepo.GetLastPrice(ctx, symbol)
	if err != nil {
		return nil, err
	}

	return &dto.LastPrice{Symbol: symbol, Price: price}, nil
}
