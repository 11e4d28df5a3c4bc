package repository

import (
	"context"
	"fmt"

	"crypto-scanner/config"
	"crypto-scanner/internal/dto"
	"crypto-scanner/pkg/cache"
	"crypto-scanner/pkg/common"
	"crypto-scanner/pkg/logger"
)

// CandleRepository fronts the exchange candle source with a short TTL cache
// and an optional deterministic synthetic fallback.
//
// GetCandles is strict: an upstream failure is returned to the caller.
// GetCandlesWithFallback swaps in a synthetic series flagged as such, so the
// indicator pipeline never sees empty input.
type CandleRepository interface {
	GetCandles(ctx context.Context, symbol, interval string, limit int) (*dto.CandleData, error)
	GetCandlesWithFallback(ctx context.Context, symbol, interval string, limit int) *dto.CandleData
	GetLastPrice(ctx context.Context, symbol string) (float64, error)
}

type candleRepository struct {
	cfg           *config.Config
	log           *logger.Logger
	cache         cache.Cache
	binanceRepo   BinanceRepository
	syntheticRepo SyntheticCandleRepository
}

func NewCandleRepository(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	binanceRepo BinanceRepository,
	syntheticRepo SyntheticCandleRepository,
) CandleRepository {
	return &candleRepository{
		cfg:           cfg,
		log:           log,
		cache:         inmemoryCache,
		binanceRepo:   binanceRepo,
		syntheticRepo: syntheticRepo,
	}
}

func (r *candleRepository) GetCandles(ctx context.Context, symbol, interval string, limit int) (*dto.CandleData, error) {
	cacheKey := fmt.Sprintf(common.KEY_CANDLES, symbol, interval, limit)
	if cached, found := cache.GetTyped[*dto.CandleData](r.cache, cacheKey); found {
		hit := *cached
		hit.Cached = true
		return &hit, nil
	}

	candles, err := r.binanceRepo.GetKlines(ctx, symbol, interval, limit)
	if err != nil {
		return nil, err
	}

	data := &dto.CandleData{
		Symbol:   symbol,
		Interval: interval,
		Source:   common.DATA_SOURCE_LIVE,
		Candles:  candles,
	}
	r.cache.Set(cacheKey, data, r.cfg.Scanner.CandleTTL)

	return data, nil
}

func (r *candleRepository) GetCandlesWithFallback(ctx context.Context, symbol, interval string, limit int) *dto.CandleData {
	data, err := r.GetCandles(ctx, symbol, interval, limit)
	if err == nil {
		return data
	}

	r.log.WarnContext(ctx, "Falling back to synthetic candles",
		logger.StringField("symbol", symbol),
		logger.StringField("interval", interval),
		logger.ErrorField(err))

	return &dto.CandleData{
		Symbol:   symbol,
		Interval: interval,
		Source:   common.DATA_SOURCE_SYNTHETIC,
		Candles:  r.syntheticRepo.Generate(symbol, interval, limit),
	}
}

func (r *candleRepository) GetLastPrice(ctx context.Context, symbol string) (float64, error) {
	cacheKey := fmt.Sprintf(common.KEY_LAST_PRICE, symbol)
	if price, found := cache.GetTyped[float64](r.cache, cacheKey); found {
		return price, nil
	}

	lastPrice, err := r.binanceRepo.GetLastPrice(ctx, symbol)
	if err != nil {
		return 0, err
	}

	r.cache.Set(cacheKey, lastPrice.Price, r.cfg.Scanner.CandleTTL)
	return lastPrice.Price, nil
}
