package indicator

import "math"

// RSI computes Wilder's smoothed relative strength index. The first period
// average gain/loss is a simple mean of the up/down moves; later values use
// avg = (avg*(period-1) + delta) / period. When avgLoss is zero the series
// is maximally overbought and RSI is exactly 100. With fewer than period+1
// closes the neutral default 50 is returned.
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return 50
	}

	avgGain := 0.0
	avgLoss := 0.0
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// StochasticResult holds the oscillator lines.
type StochasticResult struct {
	K float64
	D float64
}

// Stochastic computes %K over the lookback period and %D as the simple
// average of the last dPeriod rolling %K values. Neutral 50/50 when there is
// not enough history.
func Stochastic(highs, lows, closes []float64, period, dPeriod int) StochasticResult {
	if len(closes) < period+dPeriod-1 {
		return StochasticResult{K: 50, D: 50}
	}

	kValues := make([]float64, 0, dPeriod)
	for offset := dPeriod - 1; offset >= 0; offset-- {
		end := len(closes) - offset
		k := rawStochasticK(highs[:end], lows[:end], closes[:end], period)
		kValues = append(kValues, k)
	}

	dSum := 0.0
	for _, k := range kValues {
		dSum += k
	}

	return StochasticResult{
		K: kValues[len(kValues)-1],
		D: dSum / float64(dPeriod),
	}
}

func rawStochasticK(highs, lows, closes []float64, period int) float64 {
	hh := highestHigh(highs, period)
	ll := lowestLow(lows, period)
	if hh == ll {
		return 50
	}
	return (closes[len(closes)-1] - ll) / (hh - ll) * 100
}

// WilliamsR computes Williams %R over the lookback period, in [-100, 0].
// Neutral -50 when there is not enough history.
func WilliamsR(highs, lows, closes []float64, period int) float64 {
	if len(closes) < period {
		return -50
	}

	hh := highestHigh(highs, period)
	ll := lowestLow(lows, period)
	if hh == ll {
		return -50
	}
	return -100 * (hh - closes[len(closes)-1]) / (hh - ll)
}

// CCI computes the commodity channel index over the typical price.
// Returns NaN when there is not enough history or the deviation is zero.
func CCI(highs, lows, closes []float64, period int) float64 {
	if len(closes) < period {
		return math.NaN()
	}

	tp := typicalPrices(highs, lows, closes)
	mad := meanAbsDeviation(tp, period)
	if mad == 0 || math.IsNaN(mad) {
		return math.NaN()
	}
	return (tp[len(tp)-1] - SMA(tp, period)) / (0.015 * mad)
}

// MFI computes the money flow index over the last period bars. Bars are
// classified as positive or negative flow by comparing the typical price to
// the previous bar's. Zero negative flow yields 100. Neutral 50 when there
// is not enough history.
func MFI(highs, lows, closes, volumes []float64, period int) float64 {
	if len(closes) < period+1 {
		return 50
	}

	tp := typicalPrices(highs, lows, closes)
	positive := 0.0
	negative := 0.0
	for i := len(tp) - period; i < len(tp); i++ {
		flow := tp[i] * volumes[i]
		if tp[i] > tp[i-1] {
			positive += flow
		} else if tp[i] < tp[i-1] {
			negative += flow
		}
	}

	if negative == 0 {
		return 100
	}
	return 100 - 100/(1+positive/negative)
}

// Change returns the percent change of the close over the trailing bar
// count. Returns NaN when there is not enough history or the base is zero.
func Change(closes []float64, bars int) float64 {
	if bars <= 0 || len(closes) < bars+1 {
		return math.NaN()
	}
	base := closes[len(closes)-1-bars]
	if base == 0 {
		return math.NaN()
	}
	return (closes[len(closes)-1] - base) / base * 100
}
