package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMA(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		period int
		want   float64
	}{
		{
			name:   "simple average of last period",
			values: []float64{1, 2, 3, 4, 5},
			period: 3,
			want:   4,
		},
		{
			name:   "full slice",
			values: []float64{2, 4, 6},
			period: 3,
			want:   4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SMA(tt.values, tt.period), 1e-9)
		})
	}
}

func TestSMA_InsufficientData(t *testing.T) {
	assert.True(t, math.IsNaN(SMA([]float64{1, 2}, 3)))
	assert.True(t, math.IsNaN(SMA(nil, 1)))
	assert.True(t, math.IsNaN(SMA([]float64{1, 2, 3}, 0)))
}

func TestEMA_SeedIsSMA(t *testing.T) {
	values := []float64{2, 4, 6, 8, 10}
	series := EMA(values, 3)

	assert.Len(t, series, len(values))
	assert.True(t, math.IsNaN(series[0]))
	assert.True(t, math.IsNaN(series[1]))
	assert.InDelta(t, 4.0, series[2], 1e-9)
}

func TestEMA_ConstantInputConvergesToConstant(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = 42.5
	}

	series := EMA(values, 10)
	for i := 9; i < len(series); i++ {
		assert.InDelta(t, 42.5, series[i], 1e-9, "index %d", i)
	}
	assert.InDelta(t, SMA(values, 10), series[len(series)-1], 1e-9)
}

func TestEMA_Recurrence(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	series := EMA(values, 3)

	// seed 2, k = 0.5
	assert.InDelta(t, 2.0, series[2], 1e-9)
	assert.InDelta(t, 3.0, series[3], 1e-9)
	assert.InDelta(t, 4.0, series[4], 1e-9)
}

func TestEMA_InsufficientData(t *testing.T) {
	assert.Nil(t, EMA([]float64{1, 2}, 3))
	assert.True(t, math.IsNaN(LastEMA([]float64{1, 2}, 3)))
}

func TestMeanAbsDeviation(t *testing.T) {
	// mean 3, deviations 2,1,0,1,2
	got := meanAbsDeviation([]float64{1, 2, 3, 4, 5}, 5)
	assert.InDelta(t, 1.2, got, 1e-9)
}
