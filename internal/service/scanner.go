package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"crypto-scanner/config"
	"crypto-scanner/internal/dto"
	"crypto-scanner/internal/repository"
	"crypto-scanner/pkg/cache"
	"crypto-scanner/pkg/common"
	"crypto-scanner/pkg/logger"
	"crypto-scanner/pkg/utils"

	"golang.org/x/sync/errgroup"
)

type ScannerService interface {
	// ComputeScan runs the whole indicator pipeline over an in-memory candle
	// series. Pure: no I/O, no clock, identical input gives identical output.
	ComputeScan(symbol, interval string, candles []dto.Candle, source string) *dto.ScanResult
	GetOrCompute(ctx context.Context, symbol, interval string) (*dto.ScanResult, error)
	BatchScan(ctx context.Context, symbols []string, interval string) *dto.BatchScanResult
}

type scannerService struct {
	cfg          *config.Config
	log          *logger.Logger
	cache        cache.Cache
	candleRepo   repository.CandleRepository
	indicatorSet *IndicatorSet
	scorer       *Scorer
}

func NewScannerService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	candleRepo repository.CandleRepository,
) ScannerService {
	return &scannerService{
		cfg:          cfg,
		log:          log,
		cache:        inmemoryCache,
		candleRepo:   candleRepo,
		indicatorSet: NewIndicatorSet(),
		scorer:       NewScorer(cfg.Scanner.StrongThreshold, cfg.Scanner.ModerateThreshold),
	}
}

func (s *scannerService) ComputeScan(symbol, interval string, candles []dto.Candle, source string) *dto.ScanResult {
	indicators := s.indicatorSet.Evaluate(candles, interval)
	totalScore := s.scorer.Total(indicators)

	price := 0.0
	asOf := int64(0)
	if len(candles) > 0 {
		last := candles[len(candles)-1]
		price = last.Close
		asOf = last.OpenTime
	}

	return &dto.ScanResult{
		Symbol:         symbol,
		Price:          price,
		Indicators:     indicators,
		TotalScore:     totalScore,
		Recommendation: s.scorer.Recommend(totalScore),
		Meta: dto.ScanMeta{
			Interval:    interval,
			CandleCount: len(candles),
			AsOf:        asOf,
			Source:      source,
		},
	}
}

func (s *scannerService) GetOrCompute(ctx context.Context, symbol, interval string) (*dto.ScanResult, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if interval == "" {
		interval = s.cfg.Scanner.DefaultInterval
	}
	if !dto.IsValidInterval(interval) {
		return nil, fmt.Errorf("unsupported interval: %s", interval)
	}

	cacheKey := fmt.Sprintf(common.KEY_SCAN_RESULT, symbol, interval)
	if cached, found := cache.GetTyped[*dto.ScanResult](s.cache, cacheKey); found {
		hit := *cached
		hit.Meta.Cached = true
		return &hit, nil
	}

	data := s.candleRepo.GetCandlesWithFallback(ctx, symbol, interval, s.cfg.Scanner.CandleLimit)
	if len(data.Candles) == 0 {
		return nil, fmt.Errorf("no candle data for %s %s", symbol, interval)
	}
	if data.Source == common.DATA_SOURCE_SYNTHETIC {
		s.log.WarnContext(ctx, "Scan computed from synthetic candles",
			logger.StringField("symbol", symbol),
			logger.StringField("interval", interval))
	}

	result := s.ComputeScan(symbol, interval, data.Candles, data.Source)
	s.cache.Set(cacheKey, result, s.cfg.Scanner.ScanTTL)

	return result, nil
}

// BatchScan fans out over symbols with bounded concurrency. One symbol's
// failure never aborts its siblings; the batch returns partial results with
// per-symbol error strings.
func (s *scannerService) BatchScan(ctx context.Context, symbols []string, interval string) *dto.BatchScanResult {
	if interval == "" {
		interval = s.cfg.Scanner.DefaultInterval
	}

	items := make([]dto.BatchScanItem, len(symbols))
	var failed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Scanner.MaxConcurrency)

	for i, symbol := range symbols {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("Recovered panic in batch scan",
						logger.StringField("symbol", symbol),
						logger.Field("panic", r))
					items[i] = dto.BatchScanItem{Symbol: symbol, Error: fmt.Sprintf("panic: %v", r)}
					failed.Add(1)
				}
			}()

			if !utils.ShouldContinue(ctx) {
				items[i] = dto.BatchScanItem{Symbol: symbol, Error: ctx.Err().Error()}
				failed.Add(1)
				return nil
			}

			result, err := s.GetOrCompute(ctx, symbol, interval)
			if err != nil {
				s.log.WarnContext(ctx, "Batch scan symbol failed",
					logger.StringField("symbol", symbol),
					logger.ErrorField(err))
				items[i] = dto.BatchScanItem{Symbol: symbol, Error: err.Error()}
				failed.Add(1)
				return nil
			}

			items[i] = dto.BatchScanItem{Symbol: symbol, Result: result}
			return nil
		})
	}

	// Workers never return errors; failures are carried per item.
	_ = g.Wait()

	return &dto.BatchScanResult{
		Interval: interval,
		Total:    len(symbols),
		Failed:   int(failed.Load()),
		Items:    items,
	}
}
