package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBollinger_BandOrdering(t *testing.T) {
	closes := []float64{
		100, 102, 101, 103, 105, 104, 106, 108, 107, 109,
		111, 110, 112, 114, 113, 115, 117, 116, 118, 120,
	}
	b := Bollinger(closes, 20, 2)

	assert.GreaterOrEqual(t, b.Upper, b.Mid)
	assert.GreaterOrEqual(t, b.Mid, b.Lower)
	assert.False(t, math.IsNaN(b.PercentB))
	assert.False(t, b.Squeeze)
}

func TestBollinger_ConstantInputCollapsesBands(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 50
	}
	b := Bollinger(closes, 20, 2)

	assert.InDelta(t, 50, b.Upper, 1e-9)
	assert.InDelta(t, 50, b.Mid, 1e-9)
	assert.InDelta(t, 50, b.Lower, 1e-9)
	assert.InDelta(t, 0, b.Width, 1e-9)
	assert.True(t, b.Squeeze)
	// %B is undefined when the bands collapse.
	assert.True(t, math.IsNaN(b.PercentB))
}

func TestBollinger_InsufficientDataIsNaN(t *testing.T) {
	b := Bollinger([]float64{1, 2, 3}, 20, 2)
	assert.True(t, math.IsNaN(b.Mid))
	assert.True(t, math.IsNaN(b.PercentB))
}

func TestATR_KnownValue(t *testing.T) {
	// Last bar: high 12, low 8, prev close 10 -> TR 4.
	highs := []float64{11, 12}
	lows := []float64{9, 8}
	closes := []float64{10, 11}

	assert.InDelta(t, 4.0, ATR(highs, lows, closes, 1), 1e-9)
}

func TestATR_GapTrueRange(t *testing.T) {
	// Gap up: high-low is 2 but the gap against prev close dominates.
	highs := []float64{11, 21}
	lows := []float64{9, 19}
	closes := []float64{10, 20}

	assert.InDelta(t, 11.0, ATR(highs, lows, closes, 1), 1e-9)
}

func TestATR_InsufficientDataIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(ATR([]float64{1}, []float64{1}, []float64{1}, 14)))
}
