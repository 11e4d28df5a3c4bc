package indicator

import "math"

// BollingerResult holds the bands plus derived %B and width.
type BollingerResult struct {
	Upper    float64
	Mid      float64
	Lower    float64
	PercentB float64
	Width    float64
	Squeeze  bool
}

// squeezeWidthThreshold marks a narrow-band squeeze.
const squeezeWidthThreshold = 0.1

// Bollinger computes bands around the SMA using the population standard
// deviation of the last period closes. All fields are NaN when there is not
// enough history.
func Bollinger(closes []float64, period int, mult float64) BollingerResult {
	nan := math.NaN()
	if len(closes) < period {
		return BollingerResult{Upper: nan, Mid: nan, Lower: nan, PercentB: nan, Width: nan}
	}

	mid := SMA(closes, period)
	variance := 0.0
	for _, c := range closes[len(closes)-period:] {
		diff := c - mid
		variance += diff * diff
	}
	sd := math.Sqrt(variance / float64(period))

	upper := mid + mult*sd
	lower := mid - mult*sd

	pctB := nan
	if upper != lower {
		pctB = (closes[len(closes)-1] - lower) / (upper - lower)
	}

	width := nan
	if mid != 0 {
		width = (upper - lower) / mid
	}

	return BollingerResult{
		Upper:    upper,
		Mid:      mid,
		Lower:    lower,
		PercentB: pctB,
		Width:    width,
		Squeeze:  !math.IsNaN(width) && width < squeezeWidthThreshold,
	}
}

// ATR computes the average true range as a simple mean of the last period
// true ranges. Wilder smoothing is deliberately not applied. Returns NaN
// when there are fewer than period+1 bars.
func ATR(highs, lows, closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return math.NaN()
	}

	sum := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		tr := math.Max(highs[i]-lows[i],
			math.Max(math.Abs(highs[i]-closes[i-1]), math.Abs(lows[i]-closes[i-1])))
		sum += tr
	}
	return sum / float64(period)
}
