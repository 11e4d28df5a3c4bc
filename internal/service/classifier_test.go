package service

import (
	"testing"

	"crypto-scanner/internal/dto"

	"github.com/stretchr/testify/assert"
)

func candlesFromCloses(closes []float64) []dto.Candle {
	candles := make([]dto.Candle, len(closes))
	openTime := int64(1700000000000)
	for i, c := range closes {
		candles[i] = dto.Candle{
			OpenTime: openTime + int64(i)*3600000,
			Open:     c,
			High:     c + 1,
			Low:      c - 1,
			Close:    c,
			Volume:   1000 + float64(i)*10,
		}
	}
	return candles
}

func risingCandles(n int) []dto.Candle {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	return candlesFromCloses(closes)
}

func fallingCandles(n int) []dto.Candle {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}
	return candlesFromCloses(closes)
}

func TestIndicatorSet_EvaluateCoversFullBattery(t *testing.T) {
	results := NewIndicatorSet().Evaluate(risingCandles(60), "1h")

	expected := []string{
		"rsi", "macd", "ema20", "sma50", "bollinger", "stochastic", "adx",
		"mfi", "sar", "cci", "williams_r", "obv", "vwap", "change_24h", "atr",
	}
	for _, name := range expected {
		result, ok := results[name]
		assert.True(t, ok, "missing indicator %s", name)
		assert.Equal(t, name, result.Name)
	}
	assert.Len(t, results, len(expected))
}

func TestIndicatorSet_ScoreMatchesSignalAndTier(t *testing.T) {
	results := NewIndicatorSet().Evaluate(risingCandles(60), "1h")

	for name, result := range results {
		switch result.Signal {
		case dto.SignalBullish:
			assert.Equal(t, result.Tier, result.Score, "indicator %s", name)
		case dto.SignalBearish:
			assert.Equal(t, -result.Tier, result.Score, "indicator %s", name)
		default:
			assert.Zero(t, result.Score, "indicator %s", name)
		}
		if result.Value == nil {
			assert.Equal(t, dto.SignalNeutral, result.Signal, "indicator %s", name)
		}
	}
}

func TestIndicatorSet_TrendSignalsInUptrend(t *testing.T) {
	results := NewIndicatorSet().Evaluate(risingCandles(60), "1h")

	assert.Equal(t, dto.SignalBullish, results["macd"].Signal)
	assert.Equal(t, dto.SignalBullish, results["ema20"].Signal)
	assert.Equal(t, dto.SignalBullish, results["sma50"].Signal)
	assert.Equal(t, dto.SignalBullish, results["adx"].Signal)
	assert.Equal(t, dto.SignalBullish, results["sar"].Signal)
	assert.Equal(t, dto.SignalBullish, results["change_24h"].Signal)

	// Oscillators read overbought against a relentless rise.
	assert.Equal(t, dto.SignalBearish, results["rsi"].Signal)
	assert.Equal(t, dto.SignalBearish, results["mfi"].Signal)

	// ATR never carries direction.
	assert.Equal(t, dto.SignalNeutral, results["atr"].Signal)
	assert.Zero(t, results["atr"].Score)
}

func TestIndicatorSet_TrendSignalsInDowntrend(t *testing.T) {
	results := NewIndicatorSet().Evaluate(fallingCandles(60), "1h")

	assert.Equal(t, dto.SignalBearish, results["macd"].Signal)
	assert.Equal(t, dto.SignalBearish, results["ema20"].Signal)
	assert.Equal(t, dto.SignalBearish, results["adx"].Signal)
	assert.Equal(t, dto.SignalBullish, results["rsi"].Signal)
}

func TestIndicatorSet_InsufficientHistoryIsAllNeutral(t *testing.T) {
	results := NewIndicatorSet().Evaluate(risingCandles(5), "1h")

	for name, result := range results {
		assert.Equal(t, dto.SignalNeutral, result.Signal, "indicator %s", name)
		assert.Zero(t, result.Score, "indicator %s", name)
		// Short history reports null, never a neutral sentinel like RSI 50.
		// OBV is the exception: the cumulative value is real from bar two,
		// only its trend reading needs more bars.
		if name != "obv" {
			assert.Nil(t, result.Value, "indicator %s", name)
		}
	}
}

func TestIndicatorSet_FlatSeriesMACDIsNeutral(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 250
	}
	results := NewIndicatorSet().Evaluate(candlesFromCloses(closes), "1h")

	macd := results["macd"]
	assert.NotNil(t, macd.Value)
	assert.Equal(t, dto.SignalNeutral, macd.Signal)
	assert.Zero(t, macd.Score)
}

func TestIndicatorSet_EmptyCandlesDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		results := NewIndicatorSet().Evaluate(nil, "1h")
		for name, result := range results {
			assert.Zero(t, result.Score, "indicator %s", name)
		}
	})
}

func TestIndicatorSet_Deterministic(t *testing.T) {
	set := NewIndicatorSet()
	candles := risingCandles(60)

	first := set.Evaluate(candles, "1h")
	second := set.Evaluate(candles, "1h")
	assert.Equal(t, first, second)
}
