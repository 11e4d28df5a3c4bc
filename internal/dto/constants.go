package dto

import "time"

type Signal string

const (
	SignalBullish Signal = "bullish"
	SignalBearish Signal = "bearish"
	SignalNeutral Signal = "neutral"
)

type Recommendation string

const (
	RecommendationStrongBuy  Recommendation = "strong_buy"
	RecommendationBuy        Recommendation = "buy"
	RecommendationHold       Recommendation = "hold"
	RecommendationSell       Recommendation = "sell"
	RecommendationStrongSell Recommendation = "strong_sell"
)

// Rank orders recommendations from strong_sell (0) to strong_buy (4).
func (r Recommendation) Rank() int {
	switch r {
	case RecommendationStrongSell:
		return 0
	case RecommendationSell:
		return 1
	case RecommendationHold:
		return 2
	case RecommendationBuy:
		return 3
	case RecommendationStrongBuy:
		return 4
	}
	return 2
}

var intervalDurations = map[string]time.Duration{
	"1m":  time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"30m": 30 * time.Minute,
	"1h":  time.Hour,
	"4h":  4 * time.Hour,
	"1d":  24 * time.Hour,
}

// IntervalDuration maps a Binance interval string to its bar duration.
// Unknown intervals fall back to one hour.
func IntervalDuration(interval string) time.Duration {
	if d, ok := intervalDurations[interval]; ok {
		return d
	}
	return time.Hour
}

// IsValidInterval reports whether the interval is supported.
func IsValidInterval(interval string) bool {
	_, ok := intervalDurations[interval]
	return ok
}
