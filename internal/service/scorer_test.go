package service

import (
	"testing"

	"crypto-scanner/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestScorer_Total(t *testing.T) {
	indicators := map[string]dto.IndicatorResult{
		"a": {Score: 3},
		"b": {Score: -2},
		"c": {Score: 0},
		"d": {Score: 1},
	}
	assert.Equal(t, 2, NewScorer(12, 6).Total(indicators))
}

func TestScorer_RecommendBoundaries(t *testing.T) {
	scorer := NewScorer(12, 6)

	tests := []struct {
		total int
		want  dto.Recommendation
	}{
		{15, dto.RecommendationStrongBuy},
		{12, dto.RecommendationStrongBuy},
		{11, dto.RecommendationBuy},
		{6, dto.RecommendationBuy},
		{5, dto.RecommendationHold},
		{0, dto.RecommendationHold},
		{-5, dto.RecommendationHold},
		{-6, dto.RecommendationSell},
		{-11, dto.RecommendationSell},
		{-12, dto.RecommendationStrongSell},
		{-20, dto.RecommendationStrongSell},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scorer.Recommend(tt.total), "total %d", tt.total)
	}
}

func TestScorer_RecommendationIsMonotonic(t *testing.T) {
	scorer := NewScorer(12, 6)

	prevRank := -1
	for total := -30; total <= 30; total++ {
		rank := scorer.Recommend(total).Rank()
		assert.GreaterOrEqual(t, rank, prevRank, "total %d", total)
		prevRank = rank
	}
}

func TestScorer_ContiguousNoGaps(t *testing.T) {
	scorer := NewScorer(12, 6)

	// Every integer score maps to exactly one recommendation and adjacent
	// scores never skip a level.
	prev := scorer.Recommend(-30)
	for total := -29; total <= 30; total++ {
		current := scorer.Recommend(total)
		assert.LessOrEqual(t, current.Rank()-prev.Rank(), 1, "total %d", total)
		prev = current
	}
}

func TestScorer_CustomThresholds(t *testing.T) {
	scorer := NewScorer(4, 2)

	assert.Equal(t, dto.RecommendationStrongBuy, scorer.Recommend(4))
	assert.Equal(t, dto.RecommendationBuy, scorer.Recommend(2))
	assert.Equal(t, dto.RecommendationHold, scorer.Recommend(1))
	assert.Equal(t, dto.RecommendationHold, scorer.Recommend(-1))
	assert.Equal(t, dto.RecommendationSell, scorer.Recommend(-2))
	assert.Equal(t, dto.RecommendationStrongSell, scorer.Recommend(-4))
}

func TestScorer_DefaultsOnInvalidThresholds(t *testing.T) {
	scorer := NewScorer(0, 0)
	assert.Equal(t, dto.RecommendationStrongBuy, scorer.Recommend(12))
	assert.Equal(t, dto.RecommendationBuy, scorer.Recommend(6))
}
