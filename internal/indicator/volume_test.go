package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOBV_AccumulatesBySignOfClose(t *testing.T) {
	closes := []float64{10, 11, 11, 10, 12}
	volumes := []float64{100, 200, 300, 400, 500}

	series := OBVSeries(closes, volumes)
	assert.Equal(t, []float64{0, 200, 200, -200, 300}, series)
	assert.Equal(t, 300.0, OBV(closes, volumes))
}

func TestOBV_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, OBV(nil, nil))
}

func TestVWAP_ConstantPriceEqualsPrice(t *testing.T) {
	n := 25
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	volumes := make([]float64, n)
	for i := 0; i < n; i++ {
		highs[i], lows[i], closes[i] = 80, 80, 80
		volumes[i] = float64(100 + i)
	}

	assert.InDelta(t, 80.0, VWAP(highs, lows, closes, volumes, 20), 1e-9)
}

func TestVWAP_WeightsByVolume(t *testing.T) {
	// Two bars: TP 10 with volume 1, TP 20 with volume 3 -> 17.5.
	highs := []float64{10, 20}
	lows := []float64{10, 20}
	closes := []float64{10, 20}
	volumes := []float64{1, 3}

	assert.InDelta(t, 17.5, VWAP(highs, lows, closes, volumes, 2), 1e-9)
}

func TestVWAP_NoVolumeIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(VWAP([]float64{1, 2}, []float64{1, 2}, []float64{1, 2}, []float64{0, 0}, 2)))
	assert.True(t, math.IsNaN(VWAP([]float64{1}, []float64{1}, []float64{1}, []float64{1}, 2)))
}
