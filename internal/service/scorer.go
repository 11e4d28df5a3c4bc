package service

import "crypto-scanner/internal/dto"

// Scorer folds classified indicator signals into one total and maps that
// total to a recommendation. Breakpoints are symmetric and contiguous, and
// parameterizable so tests can run at different score scales.
type Scorer struct {
	strongThreshold   int
	moderateThreshold int
}

func NewScorer(strongThreshold, moderateThreshold int) *Scorer {
	if strongThreshold <= 0 {
		strongThreshold = 12
	}
	if moderateThreshold <= 0 || moderateThreshold >= strongThreshold {
		moderateThreshold = strongThreshold / 2
	}
	return &Scorer{
		strongThreshold:   strongThreshold,
		moderateThreshold: moderateThreshold,
	}
}

// Total sums the signed scores of all indicators.
func (s *Scorer) Total(indicators map[string]dto.IndicatorResult) int {
	total := 0
	for _, result := range indicators {
		total += result.Score
	}
	return total
}

// Recommend maps a total score to the five-level recommendation:
//
//	total >= strong            strong_buy
//	moderate <= total < strong buy
//	-moderate < total          hold
//	-strong < total            sell
//	otherwise                  strong_sell
func (s *Scorer) Recommend(totalScore int) dto.Recommendation {
	switch {
	case totalScore >= s.strongThreshold:
		return dto.RecommendationStrongBuy
	case totalScore >= s.moderateThreshold:
		return dto.RecommendationBuy
	case totalScore > -s.moderateThreshold:
		return dto.RecommendationHold
	case totalScore > -s.strongThreshold:
		return dto.RecommendationSell
	}
	return dto.RecommendationStrongSell
}
