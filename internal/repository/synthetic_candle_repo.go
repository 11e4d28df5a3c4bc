package repository

import (
	"fmt"
	"hash/fnv"

	"crypto-scanner/internal/dto"
)

// SyntheticCandleRepository generates a deterministic fallback candle series
// when the exchange is unreachable. The same (symbol, interval, limit)
// always yields the same series, so callers and tests can rely on identical
// output for identical seeds.
type SyntheticCandleRepository interface {
	Generate(symbol, interval string, limit int) []dto.Candle
}

type syntheticCandleRepository struct{}

func NewSyntheticCandleRepository() SyntheticCandleRepository {
	return &syntheticCandleRepository{}
}

// syntheticEpochMs anchors synthetic series at a fixed point in time so the
// output never depends on the wall clock.
const syntheticEpochMs = int64(1704067200000) // 2024-01-01T00:00:00Z

func (r *syntheticCandleRepository) Generate(symbol, interval string, limit int) []dto.Candle {
	if limit <= 0 {
		return nil
	}

	rng := newXorshift(seedFor(symbol, interval, limit))
	stepMs := dto.IntervalDuration(interval).Milliseconds()

	// Base price between 10 and 1010, fixed per seed.
	price := 10 + rng.float()*1000

	candles := make([]dto.Candle, 0, limit)
	openTime := syntheticEpochMs
	for i := 0; i < limit; i++ {
		open := price

		// Per-bar drift within +-2%.
		drift := (rng.float() - 0.5) * 0.04
		close := open * (1 + drift)

		high := open
		if close > high {
			high = close
		}
		high *= 1 + rng.float()*0.01

		low := open
		if close < low {
			low = close
		}
		low *= 1 - rng.float()*0.01

		volume := 100 + rng.float()*10000

		candles = append(candles, dto.Candle{
			OpenTime: openTime,
			Open:     open,
			High:     high,
			Low:      low,
			Close:    close,
			Volume:   volume,
		})

		price = close
		openTime += stepMs
	}

	return candles
}

func seedFor(symbol, interval string, limit int) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%d", symbol, interval, limit)
	seed := h.Sum64()
	if seed == 0 {
		seed = 1
	}
	return seed
}

// xorshift is a small deterministic PRNG. Not for anything
// security-sensitive; it only has to be stable across runs.
type xorshift struct {
	state uint64
}

func newXorshift(seed uint64) *xorshift {
	return &xorshift{state: seed}
}

func (x *xorshift) next() uint64 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 7
	x.state ^= x.state << 17
	return x.state
}

func (x *xorshift) float() float64 {
	return float64(x.next()%1_000_000) / 1_000_000
}
