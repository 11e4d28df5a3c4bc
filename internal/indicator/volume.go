package indicator

import "math"

// OBVSeries returns the running on-balance volume: volume added on up
// closes, subtracted on down closes, unchanged on flat closes. The series
// is never bounded or reset.
func OBVSeries(closes, volumes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			out[i] = out[i-1] + volumes[i]
		case closes[i] < closes[i-1]:
			out[i] = out[i-1] - volumes[i]
		default:
			out[i] = out[i-1]
		}
	}
	return out
}

// OBV returns the latest on-balance volume value.
func OBV(closes, volumes []float64) float64 {
	series := OBVSeries(closes, volumes)
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1]
}

// VWAP computes a rolling volume-weighted average of the typical price over
// the trailing window, not a full-session VWAP. Returns NaN when there is
// not enough history or no volume traded in the window.
func VWAP(highs, lows, closes, volumes []float64, window int) float64 {
	if window <= 0 || len(closes) < window {
		return math.NaN()
	}

	pv := 0.0
	vol := 0.0
	for i := len(closes) - window; i < len(closes); i++ {
		tp := (highs[i] + lows[i] + closes[i]) / 3
		pv += tp * volumes[i]
		vol += volumes[i]
	}

	if vol == 0 {
		return math.NaN()
	}
	return pv / vol
}
