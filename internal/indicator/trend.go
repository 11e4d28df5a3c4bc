package indicator

import "math"

// MACDResult holds the MACD line, signal line and histogram.
type MACDResult struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD computes the moving average convergence divergence from fast and
// slow EMAs plus an EMA of the MACD line as the signal. The EMAs are seeded
// from the first close so the fast line leads during a steady trend.
// Requires at least slow+signal closes, otherwise all fields are NaN.
func MACD(closes []float64, fastPeriod, slowPeriod, signalPeriod int) MACDResult {
	nan := MACDResult{MACD: math.NaN(), Signal: math.NaN(), Histogram: math.NaN()}
	if len(closes) < slowPeriod+signalPeriod {
		return nan
	}

	fastEMA := emaAll(closes, fastPeriod)
	slowEMA := emaAll(closes, slowPeriod)

	macdSeries := make([]float64, len(closes))
	for i := range closes {
		macdSeries[i] = fastEMA[i] - slowEMA[i]
	}

	signalSeries := emaAll(macdSeries, signalPeriod)

	macdLine := macdSeries[len(macdSeries)-1]
	signalLine := signalSeries[len(signalSeries)-1]
	return MACDResult{
		MACD:      macdLine,
		Signal:    signalLine,
		Histogram: macdLine - signalLine,
	}
}

// ADXResult holds the average directional index and both DI lines.
type ADXResult struct {
	ADX     float64
	PlusDI  float64
	MinusDI float64
}

// ADX computes the average directional index using Wilder's running-sum
// smoothing for +DM, -DM and TR, then an EMA of the DX series. All fields
// are NaN when there are fewer than 2*period+1 bars.
func ADX(highs, lows, closes []float64, period int) ADXResult {
	nan := ADXResult{ADX: math.NaN(), PlusDI: math.NaN(), MinusDI: math.NaN()}
	n := len(closes)
	if period <= 0 || n < 2*period+1 {
		return nan
	}

	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	trueRange := make([]float64, n)
	for i := 1; i < n; i++ {
		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]
		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
		trueRange[i] = math.Max(highs[i]-lows[i],
			math.Max(math.Abs(highs[i]-closes[i-1]), math.Abs(lows[i]-closes[i-1])))
	}

	smPlus, smMinus, smTR := 0.0, 0.0, 0.0
	for i := 1; i <= period; i++ {
		smPlus += plusDM[i]
		smMinus += minusDM[i]
		smTR += trueRange[i]
	}

	var dxSeries []float64
	plusDI, minusDI := 0.0, 0.0
	for i := period; i < n; i++ {
		if i > period {
			smPlus = smPlus - smPlus/float64(period) + plusDM[i]
			smMinus = smMinus - smMinus/float64(period) + minusDM[i]
			smTR = smTR - smTR/float64(period) + trueRange[i]
		}
		if smTR == 0 {
			continue
		}
		plusDI = 100 * smPlus / smTR
		minusDI = 100 * smMinus / smTR
		diSum := plusDI + minusDI
		if diSum == 0 {
			continue
		}
		dxSeries = append(dxSeries, 100*math.Abs(plusDI-minusDI)/diSum)
	}

	adxSeries := EMA(dxSeries, period)
	if adxSeries == nil {
		return nan
	}

	return ADXResult{
		ADX:     adxSeries[len(adxSeries)-1],
		PlusDI:  plusDI,
		MinusDI: minusDI,
	}
}

// sarBlendFactor is the acceleration-like blend used by the simplified SAR.
const sarBlendFactor = 0.02

// ParabolicSAR approximates a stop-and-reverse level from the extremes of a
// short trailing window, blended toward the trend extreme by a fixed 0.02
// factor. This is intentionally not the canonical iterative SAR; the
// simplified heuristic is kept for behavioral compatibility with the
// product's existing output.
func ParabolicSAR(highs, lows, closes []float64, window int) float64 {
	if window <= 0 || len(closes) < window+1 {
		return math.NaN()
	}

	hh := highestHigh(highs[:len(highs)-1], window)
	ll := lowestLow(lows[:len(lows)-1], window)
	last := closes[len(closes)-1]
	ref := closes[len(closes)-1-window]

	if last >= ref {
		// Uptrend: SAR trails below price, pulled toward the window high.
		return ll + sarBlendFactor*(hh-ll)
	}
	return hh - sarBlendFactor*(hh-ll)
}
