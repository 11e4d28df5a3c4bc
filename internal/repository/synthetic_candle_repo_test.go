package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntheticCandles_DeterministicForSameSeed(t *testing.T) {
	repo := NewSyntheticCandleRepository()

	first := repo.Generate("BTCUSDT", "1h", 100)
	second := repo.Generate("BTCUSDT", "1h", 100)

	assert.Equal(t, first, second)
}

func TestSyntheticCandles_DifferentSeedsDiffer(t *testing.T) {
	repo := NewSyntheticCandleRepository()

	base := repo.Generate("BTCUSDT", "1h", 50)
	otherSymbol := repo.Generate("ETHUSDT", "1h", 50)
	otherInterval := repo.Generate("BTCUSDT", "4h", 50)

	assert.NotEqual(t, base, otherSymbol)
	assert.NotEqual(t, base[0].Close, otherInterval[0].Close)
}

func TestSyntheticCandles_BarsAreWellFormed(t *testing.T) {
	repo := NewSyntheticCandleRepository()
	candles := repo.Generate("SOLUSDT", "15m", 200)

	assert.Len(t, candles, 200)
	for i, c := range candles {
		assert.GreaterOrEqual(t, c.High, c.Open, "bar %d", i)
		assert.GreaterOrEqual(t, c.High, c.Close, "bar %d", i)
		assert.LessOrEqual(t, c.Low, c.Open, "bar %d", i)
		assert.LessOrEqual(t, c.Low, c.Close, "bar %d", i)
		assert.Greater(t, c.Volume, 0.0, "bar %d", i)
		if i > 0 {
			assert.Greater(t, c.OpenTime, candles[i-1].OpenTime, "bar %d", i)
		}
	}
}

func TestSyntheticCandles_BarSpacingMatchesInterval(t *testing.T) {
	repo := NewSyntheticCandleRepository()
	candles := repo.Generate("BTCUSDT", "15m", 10)

	for i := 1; i < len(candles); i++ {
		assert.Equal(t, int64(15*60*1000), candles[i].OpenTime-candles[i-1].OpenTime)
	}
}

func TestSyntheticCandles_ZeroLimit(t *testing.T) {
	repo := NewSyntheticCandleRepository()
	assert.Empty(t, repo.Generate("BTCUSDT", "1h", 0))
}
