package indicator

import "math"

// SMA returns the simple moving average of the last period values.
// Returns NaN when there are fewer values than the period.
func SMA(values []float64, period int) float64 {
	if period <= 0 || len(values) < period {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range values[len(values)-period:] {
		sum += v
	}
	return sum / float64(period)
}

// EMA returns the full exponentially smoothed series, aligned with the
// input: the first period-1 entries are NaN, the entry at period-1 is the
// SMA seed, and subsequent entries follow ema[i] = v*k + ema[i-1]*(1-k)
// with k = 2/(period+1). Returns nil when there are fewer values than the
// period.
func EMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	out := make([]float64, len(values))
	for i := 0; i < period-1; i++ {
		out[i] = math.NaN()
	}

	seed := 0.0
	for _, v := range values[:period] {
		seed += v
	}
	out[period-1] = seed / float64(period)

	k := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1-k)
	}
	return out
}

// emaAll smooths the whole series with ema[0] = values[0] instead of an SMA
// seed. MACD is built on this form: SMA-seeded EMAs of a linear series sit
// exactly on their steady-state lines, which collapses the MACD line to a
// constant and the histogram to rounding noise.
func emaAll(values []float64, period int) []float64 {
	if period <= 0 || len(values) == 0 {
		return nil
	}

	k := 2.0 / float64(period+1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1-k)
	}
	return out
}

// LastEMA is a convenience wrapper returning only the latest EMA value.
func LastEMA(values []float64, period int) float64 {
	series := EMA(values, period)
	if series == nil {
		return math.NaN()
	}
	return series[len(series)-1]
}

// meanAbsDeviation returns the mean absolute deviation of the last period
// values around their SMA.
func meanAbsDeviation(values []float64, period int) float64 {
	if len(values) < period {
		return math.NaN()
	}

	mean := SMA(values, period)
	sum := 0.0
	for _, v := range values[len(values)-period:] {
		sum += math.Abs(v - mean)
	}
	return sum / float64(period)
}

// typicalPrices returns (high+low+close)/3 per bar.
func typicalPrices(highs, lows, closes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		out[i] = (highs[i] + lows[i] + closes[i]) / 3
	}
	return out
}

func highestHigh(highs []float64, period int) float64 {
	max := math.Inf(-1)
	for _, h := range highs[len(highs)-period:] {
		if h > max {
			max = h
		}
	}
	return max
}

func lowestLow(lows []float64, period int) float64 {
	min := math.Inf(1)
	for _, l := range lows[len(lows)-period:] {
		if l < min {
			min = l
		}
	}
	return min
}
