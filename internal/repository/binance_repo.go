package repository

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"crypto-scanner/config"
	"crypto-scanner/internal/dto"
	"crypto-scanner/pkg/common"
	"crypto-scanner/pkg/httpclient"
	"crypto-scanner/pkg/logger"

	"golang.org/x/time/rate"
)

type BinanceRepository interface {
	GetKlines(ctx context.Context, symbol string, interval string, limit int) ([]dto.Candle, error)
	GetLastPrice(ctx context.Context, symbol string) (*dto.LastPrice, error)
}

type binanceRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewBinanceRepository(cfg *config.Config, log *logger.Logger) BinanceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Binance.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &binanceRepository{
		httpClient:     httpclient.New(cfg.Binance.BaseURL, cfg.Binance.Timeout),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *binanceRepository) GetKlines(ctx context.Context, symbol string, interval string, limit int) ([]dto.Candle, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := "/api/v3/klines"
	queryParams := map[string]string{
		"symbol":   symbol,
		"interval": interval,
		"limit":    strconv.Itoa(limit),
	}

	var klines [][]interface{}
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, &klines)
	if err != nil {
		return nil, common.NewUpstreamError(0, fmt.Errorf("failed to fetch klines from binance: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Binance API returned Non-OK status for klines",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, common.NewUpstreamError(resp.StatusCode, fmt.Errorf("binance klines request failed"))
	}

	var result []dto.Candle
	for _, k := range klines {
		if len(k) < 6 {
			continue
		}
		openTime, _ := k[0].(float64)
		open := parseKlineField(k[1])
		high := parseKlineField(k[2])
		low := parseKlineField(k[3])
		closePrice := parseKlineField(k[4])
		volume := parseKlineField(k[5])

		result = append(result, dto.Candle{
			OpenTime: int64(openTime),
			Open:     open,
			High:     high,
			Low:      low,
			Close:    closePrice,
			Volume:   volume,
		})
	}

	return result, nil
}

func (r *binanceRepository) GetLastPrice(ctx context.Context, symbol string) (*dto.LastPrice, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := "/api/v3/ticker/price"
	queryParams := map[string]string{
		"symbol": symbol,
	}

	var respData map[string]string
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, &respData)
	if err != nil {
		return nil, common.NewUpstreamError(0, fmt.Errorf("failed to fetch last price from binance: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Binance API returned Non-OK status for price",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, common.NewUpstreamError(resp.StatusCode, fmt.Errorf("binance price request failed"))
	}

	price, err := strconv.ParseFloat(respData["price"], 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price from binance: %w", err)
	}

	return &dto.LastPrice{
		Symbol: symbol,
		Price:  price,
	}, nil
}

// parseKlineField tolerates unparseable numeric fields by mapping them to 0
// so one malformed row never aborts a whole fetch.
func parseKlineField(raw interface{}) float64 {
	s, ok := raw.(string)
	if !ok {
		if f, isFloat := raw.(float64); isFloat {
			return f
		}
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
